package controller

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PathController struct {
	PathService *service.PathService
}

func NewPathController(pathService *service.PathService) *PathController {
	return &PathController{PathService: pathService}
}

// GetAll godoc
// @Summary List learning paths
// @Description Paginated listing, filterable by category, difficulty and free-text search
// @Tags paths
// @Produce json
// @Param categoryId query int false "category filter"
// @Param difficulty query string false "BEGINNER, INTERMEDIATE or ADVANCED"
// @Param search query string false "matches title or description"
// @Param page query int false "page (default 1)"
// @Param limit query int false "page size (default 10)"
// @Success 200 {object} util.Response{data=[]model.LearningPath}
// @Router /path [get]
func (c *PathController) GetAll(ctx *gin.Context) {
	filter := repository.PathFilter{
		CategoryID: util.MustParseUint(ctx.Query("categoryId")),
		Difficulty: ctx.Query("difficulty"),
		Search:     ctx.Query("search"),
	}
	page, limit := util.ParsePage(ctx.Query("page"), ctx.Query("limit"))

	paths, total, err := c.PathService.GetAll(filter, page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessPage(ctx, paths, util.NewPagination(total, page, limit))
}

// GetByID godoc
// @Summary Get one learning path
// @Tags paths
// @Produce json
// @Param id path int true "path id"
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Failure 404 {object} util.Response
// @Router /path/{id} [get]
func (c *PathController) GetByID(ctx *gin.Context) {
	path, err := c.PathService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, path)
}

// Create godoc
// @Summary Create a learning path
// @Description The new path is appended at the end of the manual ordering
// @Tags paths
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreatePathInput true "path data"
// @Success 201 {object} util.Response{data=model.LearningPath}
// @Failure 400 {object} util.Response
// @Router /path [post]
func (c *PathController) Create(ctx *gin.Context) {
	var input service.CreatePathInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.Create(input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, path)
}

// Update godoc
// @Summary Update a learning path
// @Tags paths
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "path id"
// @Param body body service.UpdatePathInput true "fields to change"
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Failure 404 {object} util.Response
// @Router /path/{id} [put]
func (c *PathController) Update(ctx *gin.Context) {
	var input service.UpdatePathInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.Update(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, path)
}

// swagger:model ReorderRequest
type ReorderRequest struct {
	Updates []model.OrderUpdate `json:"updates" binding:"required,min=1,dive"`
}

// Reorder godoc
// @Summary Reorder learning paths
// @Description Applies all order updates in one atomic transaction
// @Tags paths
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ReorderRequest true "order updates"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /path/reorder [put]
func (c *PathController) Reorder(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PathService.Reorder(req.Updates); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "paths reordered")
}

// Delete godoc
// @Summary Delete a learning path
// @Tags paths
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "path id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "path has dependent progress records"
// @Failure 404 {object} util.Response
// @Router /path/{id} [delete]
func (c *PathController) Delete(ctx *gin.Context) {
	if err := c.PathService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "path deleted")
}
