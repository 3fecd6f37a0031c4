package service

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	ContentRepo  *repository.ContentRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, contentRepo *repository.ContentRepository) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		ContentRepo:  contentRepo,
	}
}

type CreateQuestionInput struct {
	ContentID     uint     `json:"contentId" binding:"required"`
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

type UpdateQuestionInput struct {
	Question      *string  `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

// AnswerResult is the stateless grading response; attempts are not
// recorded.
type AnswerResult struct {
	IsCorrect     bool    `json:"isCorrect"`
	CorrectAnswer int     `json:"correctAnswer"`
	Explanation   *string `json:"explanation"`
}

func (s *QuestionService) GetAll(contentID uint) ([]model.Question, error) {
	return s.QuestionRepo.FindByContent(contentID)
}

func (s *QuestionService) GetByID(id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrQuestionNotFound
	}
	return question, err
}

func (s *QuestionService) Create(input CreateQuestionInput) (*model.Question, error) {
	content, err := s.ContentRepo.FindByID(input.ContentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}
	if content.Type != model.ContentQuiz {
		return nil, util.NewValidationError("questions can only be added to QUIZ content")
	}
	if input.CorrectAnswer < 0 || input.CorrectAnswer >= len(input.Options) {
		return nil, util.NewValidationError("correctAnswer must index into options")
	}

	question := &model.Question{
		ContentID:     input.ContentID,
		Question:      input.Question,
		Options:       input.Options,
		CorrectAnswer: input.CorrectAnswer,
		Explanation:   input.Explanation,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Update(id uint, input UpdateQuestionInput) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if input.Question != nil {
		question.Question = *input.Question
	}
	if input.Options != nil {
		question.Options = input.Options
	}
	if input.CorrectAnswer != nil {
		question.CorrectAnswer = *input.CorrectAnswer
	}
	if input.Explanation != nil {
		question.Explanation = input.Explanation
	}

	if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
		return nil, util.NewValidationError("correctAnswer must index into options")
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.QuestionRepo.Delete(id)
}

// CheckAnswer grades a single answer by index comparison.
func (s *QuestionService) CheckAnswer(id uint, userAnswer int) (*AnswerResult, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	return &AnswerResult{
		IsCorrect:     userAnswer == question.CorrectAnswer,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}, nil
}
