package service

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"gorm.io/gorm"
)

type ContentService struct {
	ContentRepo *repository.ContentRepository
}

func NewContentService(contentRepo *repository.ContentRepository) *ContentService {
	return &ContentService{ContentRepo: contentRepo}
}

type CreateContentInput struct {
	Type        string  `json:"type" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`
	Duration    *int    `json:"duration"`
	ArticleText *string `json:"articleText"`
}

type QuestionInput struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

type UpdateContentInput struct {
	Type        *string         `json:"type"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	VideoURL    *string         `json:"videoUrl"`
	Duration    *int            `json:"duration"`
	ArticleText *string         `json:"articleText"`
	Questions   []QuestionInput `json:"questions"`
}

func (s *ContentService) GetAll() ([]model.Content, error) {
	return s.ContentRepo.FindAll()
}

func (s *ContentService) GetByID(id uint) (*model.Content, error) {
	content, err := s.ContentRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	node, err := s.ContentRepo.FindOwningNode(id)
	if err != nil {
		return nil, err
	}
	content.Node = node
	return content, nil
}

func (s *ContentService) GetByType(contentType string) ([]model.Content, error) {
	if !model.ValidContentType(contentType) {
		return nil, util.NewValidationError("unknown content type: " + contentType)
	}
	return s.ContentRepo.FindByType(model.ContentType(contentType))
}

func (s *ContentService) Create(input CreateContentInput) (*model.Content, error) {
	if !model.ValidContentType(input.Type) {
		return nil, util.NewValidationError("unknown content type: " + input.Type)
	}

	content := &model.Content{
		Type:  model.ContentType(input.Type),
		Title: input.Title,
	}
	applyTypedFields(content, input.Description, input.VideoURL, input.Duration, input.ArticleText)

	if err := s.ContentRepo.Create(content); err != nil {
		return nil, err
	}
	return s.ContentRepo.FindByID(content.ID)
}

// Update is a full replace on the typed payload: fields irrelevant to the
// (possibly new) type are explicitly nulled, even when the caller omitted
// them. A Questions payload is a destructive replace: every existing
// question of the content is deleted and the submitted set inserted;
// callers must always send the full set.
func (s *ContentService) Update(id uint, input UpdateContentInput) (*model.Content, error) {
	content, err := s.ContentRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	contentType := content.Type
	if input.Type != nil {
		if !model.ValidContentType(*input.Type) {
			return nil, util.NewValidationError("unknown content type: " + *input.Type)
		}
		contentType = model.ContentType(*input.Type)
	}

	title := content.Title
	if input.Title != nil {
		title = *input.Title
	}

	staged := &model.Content{Type: contentType, Title: title}
	applyTypedFields(staged, coalesce(input.Description, content.Description),
		coalesce(input.VideoURL, content.VideoURL),
		coalesceInt(input.Duration, content.Duration),
		coalesce(input.ArticleText, content.ArticleText))

	fields := map[string]interface{}{
		"type":         staged.Type,
		"title":        staged.Title,
		"description":  staged.Description,
		"video_url":    staged.VideoURL,
		"duration":     staged.Duration,
		"article_text": staged.ArticleText,
	}
	if err := s.ContentRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}

	if input.Questions != nil {
		questions := make([]model.Question, 0, len(input.Questions))
		for _, q := range input.Questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return nil, util.NewValidationError("correctAnswer must index into options")
			}
			questions = append(questions, model.Question{
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
			})
		}
		if err := s.ContentRepo.ReplaceQuestions(id, questions); err != nil {
			return nil, err
		}
	}

	return s.ContentRepo.FindByID(id)
}

func (s *ContentService) Delete(id uint) error {
	if _, err := s.ContentRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrContentNotFound
		}
		return err
	}
	return s.ContentRepo.Delete(id)
}

// applyTypedFields keeps only the payload fields meaningful for the
// content type and nulls the rest ("clear on type mismatch").
func applyTypedFields(c *model.Content, description, videoURL *string, duration *int, articleText *string) {
	c.Description = description
	c.VideoURL = nil
	c.Duration = nil
	c.ArticleText = nil

	switch c.Type {
	case model.ContentVideo:
		c.VideoURL = videoURL
		c.Duration = duration
	case model.ContentArticle:
		c.ArticleText = articleText
	case model.ContentQuiz, model.ContentExercise:
		// payload lives in questions / external exercise definitions
	}
}

func coalesce(v, fallback *string) *string {
	if v != nil {
		return v
	}
	return fallback
}

func coalesceInt(v, fallback *int) *int {
	if v != nil {
		return v
	}
	return fallback
}
