package controller

import (
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NodeController struct {
	NodeService *service.NodeService
}

func NewNodeController(nodeService *service.NodeService) *NodeController {
	return &NodeController{NodeService: nodeService}
}

// GetAll godoc
// @Summary List a path's nodes flat
// @Tags nodes
// @Produce json
// @Param pathId query int true "path id"
// @Success 200 {object} util.Response{data=[]model.Node}
// @Router /nodes [get]
func (c *NodeController) GetAll(ctx *gin.Context) {
	pathID := util.MustParseUint(ctx.Query("pathId"))
	if pathID == 0 {
		util.BadRequest(ctx, "pathId query parameter is required")
		return
	}

	nodes, err := c.NodeService.GetAll(pathID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nodes)
}

// GetTree godoc
// @Summary Get a path's node tree
// @Description Flat rows reassembled into a forest of root nodes with nested children, each level sorted by order
// @Tags nodes
// @Produce json
// @Param pathId query int true "path id"
// @Success 200 {object} util.Response{data=[]model.Node}
// @Router /nodes/tree [get]
func (c *NodeController) GetTree(ctx *gin.Context) {
	pathID := util.MustParseUint(ctx.Query("pathId"))
	if pathID == 0 {
		util.BadRequest(ctx, "pathId query parameter is required")
		return
	}

	tree, err := c.NodeService.GetTree(pathID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, tree)
}

// GetByID godoc
// @Summary Get one node
// @Tags nodes
// @Produce json
// @Param id path int true "node id"
// @Success 200 {object} util.Response{data=model.Node}
// @Failure 404 {object} util.Response
// @Router /nodes/{id} [get]
func (c *NodeController) GetByID(ctx *gin.Context) {
	node, err := c.NodeService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, node)
}

// Create godoc
// @Summary Create a node
// @Tags nodes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateNodeInput true "node data"
// @Success 201 {object} util.Response{data=model.Node}
// @Failure 400 {object} util.Response
// @Router /nodes [post]
func (c *NodeController) Create(ctx *gin.Context) {
	var input service.CreateNodeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	node, err := c.NodeService.Create(input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, node)
}

// Update godoc
// @Summary Update a node
// @Tags nodes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "node id"
// @Param body body service.UpdateNodeInput true "fields to change"
// @Success 200 {object} util.Response{data=model.Node}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nodes/{id} [put]
func (c *NodeController) Update(ctx *gin.Context) {
	var input service.UpdateNodeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	node, err := c.NodeService.Update(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, node)
}

// Reorder godoc
// @Summary Reorder nodes
// @Description Applies all order updates in one atomic transaction
// @Tags nodes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ReorderRequest true "order updates"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /nodes/reorder [post]
func (c *NodeController) Reorder(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.NodeService.Reorder(req.Updates); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "nodes reordered")
}

// Delete godoc
// @Summary Delete a node
// @Tags nodes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "node id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /nodes/{id} [delete]
func (c *NodeController) Delete(ctx *gin.Context) {
	if err := c.NodeService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "node deleted")
}
