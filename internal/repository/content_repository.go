package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) FindAll() ([]model.Content, error) {
	var contents []model.Content
	err := r.DB.Preload("Questions").
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *ContentRepository) FindByID(id uint) (*model.Content, error) {
	var content model.Content
	err := r.DB.Preload("Questions").First(&content, id).Error
	return &content, err
}

func (r *ContentRepository) FindByType(contentType model.ContentType) ([]model.Content, error) {
	var contents []model.Content
	query := r.DB.Where("type = ?", contentType).Order("created_at DESC")
	if contentType == model.ContentQuiz {
		query = query.Preload("Questions")
	}
	err := query.Find(&contents).Error
	return contents, err
}

// FindOwningNode returns the node referencing this content, if any.
func (r *ContentRepository) FindOwningNode(contentID uint) (*model.Node, error) {
	var node model.Node
	err := r.DB.Where("content_id = ?", contentID).First(&node).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &node, err
}

func (r *ContentRepository) Create(content *model.Content) error {
	return r.DB.Create(content).Error
}

// UpdateFields writes the full column map in one statement; callers build
// the map so that type-irrelevant fields are explicitly nulled.
func (r *ContentRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.Content{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceQuestions deletes every question of the content and inserts the
// provided set, atomically.
func (r *ContentRepository) ReplaceQuestions(contentID uint, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("content_id = ?", contentID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ContentID = contentID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the content and its questions together.
func (r *ContentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("content_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Content{}, id).Error
	})
}
