package controller

import (
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// GetAll godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /categories [get]
func (c *CategoryController) GetAll(ctx *gin.Context) {
	categories, err := c.CategoryService.GetAll()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// GetByID godoc
// @Summary Get one category
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "category id"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Router /categories/{id} [get]
func (c *CategoryController) GetByID(ctx *gin.Context) {
	category, err := c.CategoryService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateCategoryInput true "category data"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var input service.CreateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Create(input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "category id"
// @Param body body service.UpdateCategoryInput true "fields to change"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var input service.UpdateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Update(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, category)
}
