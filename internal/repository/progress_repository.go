package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndPath(userID, pathID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND path_id = ?", userID, pathID).
		First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.UserProgress, error) {
	var records []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).
		Preload("Path").
		Preload("Path.Category").
		Order("last_accessed_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) Save(progress *model.UserProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) CountByPath(pathID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("path_id = ?", pathID).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Delete removes the row for good. Hard delete, not soft: the
// (user_id, path_id) unique index must be free for a later re-start.
func (r *ProgressRepository) Delete(userID, pathID uint) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND path_id = ?", userID, pathID).
		Delete(&model.UserProgress{}).Error
}
