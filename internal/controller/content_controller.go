package controller

import (
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// GetAll godoc
// @Summary List content items
// @Tags content
// @Produce json
// @Param type query string false "filter by type" Enums(VIDEO, ARTICLE, QUIZ)
// @Success 200 {object} util.Response{data=[]model.Content}
// @Router /content [get]
func (c *ContentController) GetAll(ctx *gin.Context) {
	if typ := ctx.Query("type"); typ != "" {
		items, err := c.ContentService.GetByType(typ)
		if err != nil {
			util.HandleError(ctx, err)
			return
		}
		util.Success(ctx, items)
		return
	}

	items, err := c.ContentService.GetAll()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetByID godoc
// @Summary Get one content item with its questions
// @Tags content
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} util.Response{data=model.Content}
// @Failure 404 {object} util.Response
// @Router /content/{id} [get]
func (c *ContentController) GetByID(ctx *gin.Context) {
	content, err := c.ContentService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, content)
}

// Create godoc
// @Summary Create a content item
// @Description Fields irrelevant to the declared type are ignored
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateContentInput true "content data"
// @Success 201 {object} util.Response{data=model.Content}
// @Failure 400 {object} util.Response
// @Router /content [post]
func (c *ContentController) Create(ctx *gin.Context) {
	var input service.CreateContentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.ContentService.Create(input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, content)
}

// Update godoc
// @Summary Replace a content item
// @Description Full replace: typed fields not matching the new type are cleared, and a questions payload replaces all existing questions
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "content id"
// @Param body body service.UpdateContentInput true "content data"
// @Success 200 {object} util.Response{data=model.Content}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /content/{id} [post]
func (c *ContentController) Update(ctx *gin.Context) {
	var input service.UpdateContentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.ContentService.Update(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, content)
}

// Delete godoc
// @Summary Delete a content item and its questions
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "content id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /content/{id} [delete]
func (c *ContentController) Delete(ctx *gin.Context) {
	if err := c.ContentService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "content deleted")
}
