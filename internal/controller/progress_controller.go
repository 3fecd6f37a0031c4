package controller

import (
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type StartProgressRequest struct {
	PathID uint `json:"pathId" binding:"required"`
}

type CompleteNodeRequest struct {
	NodeID uint `json:"nodeId" binding:"required"`
}

// GetUserProgress godoc
// @Summary List the caller's progress records
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.UserProgress}
// @Router /progress [get]
func (c *ProgressController) GetUserProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProgressService.GetUserProgress(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetUserStats godoc
// @Summary Aggregate stats over the caller's progress
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserStats}
// @Router /progress/stats [get]
func (c *ProgressController) GetUserStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ProgressService.GetUserStats(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetPathProgress godoc
// @Summary Progress snapshot for one path
// @Description Percentage is computed against the path's current node count, not a stored total
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param pathId path int true "path id"
// @Success 200 {object} util.Response{data=model.PathProgress}
// @Failure 404 {object} util.Response
// @Router /progress/{pathId} [get]
func (c *ProgressController) GetPathProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshot, err := c.ProgressService.GetPathProgress(claims.UserID, util.MustParseUint(ctx.Param("pathId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, snapshot)
}

// Start godoc
// @Summary Start a learning path
// @Description Idempotent: starting an already started path returns the existing record untouched
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body StartProgressRequest true "path to start"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response
// @Router /progress/start [post]
func (c *ProgressController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.Start(claims.UserID, req.PathID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// CompleteNode godoc
// @Summary Mark a node completed
// @Description Idempotent per node; advances the cursor and sets the completion timestamp when the whole path is done
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param pathId path int true "path id"
// @Param body body CompleteNodeRequest true "completed node"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response
// @Router /progress/{pathId}/complete [post]
func (c *ProgressController) CompleteNode(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteNodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.CompleteNode(claims.UserID, util.MustParseUint(ctx.Param("pathId")), req.NodeID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// Reset godoc
// @Summary Reset progress on a path
// @Description Keeps the record but clears completions, timestamps and the cursor
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param pathId path int true "path id"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response
// @Router /progress/{pathId}/reset [post]
func (c *ProgressController) Reset(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.Reset(claims.UserID, util.MustParseUint(ctx.Param("pathId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// Abandon godoc
// @Summary Abandon a path
// @Description Removes the record entirely so the path can be started fresh later
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param pathId path int true "path id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /progress/{pathId} [delete]
func (c *ProgressController) Abandon(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProgressService.Abandon(claims.UserID, util.MustParseUint(ctx.Param("pathId"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "progress abandoned")
}
