package controller

import (
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type CheckAnswerRequest struct {
	Answer *int `json:"answer" binding:"required"`
}

// GetAll godoc
// @Summary List a quiz content's questions
// @Tags questions
// @Produce json
// @Param contentId query int true "content id"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions [get]
func (c *QuestionController) GetAll(ctx *gin.Context) {
	contentID := util.MustParseUint(ctx.Query("contentId"))
	if contentID == 0 {
		util.BadRequest(ctx, "contentId query parameter is required")
		return
	}

	questions, err := c.QuestionService.GetAll(contentID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// GetByID godoc
// @Summary Get one question
// @Tags questions
// @Produce json
// @Param id path int true "question id"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) GetByID(ctx *gin.Context) {
	question, err := c.QuestionService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// Create godoc
// @Summary Add a question to a quiz content
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateQuestionInput true "question data"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var input service.CreateQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// Update godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.UpdateQuestionInput true "fields to change"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [post]
func (c *QuestionController) Update(ctx *gin.Context) {
	var input service.UpdateQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	if err := c.QuestionService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "question deleted")
}

// CheckAnswer godoc
// @Summary Grade an answer to a question
// @Description Stateless: returns correctness, the right option index and the explanation; nothing is stored
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body CheckAnswerRequest true "chosen option index"
// @Success 200 {object} util.Response{data=service.AnswerResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id}/check [post]
func (c *QuestionController) CheckAnswer(ctx *gin.Context) {
	var req CheckAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuestionService.CheckAnswer(util.MustParseUint(ctx.Param("id")), *req.Answer)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
