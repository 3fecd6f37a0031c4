package repository

import (
	"edupath_backend/internal/model"

	"gorm.io/gorm"
)

type PathRepository struct {
	DB *gorm.DB
}

func NewPathRepository(db *gorm.DB) *PathRepository {
	return &PathRepository{DB: db}
}

// PathFilter narrows the path listing. Zero values mean "no filter".
type PathFilter struct {
	CategoryID uint
	Difficulty string
	Search     string
}

func (r *PathRepository) FindAll(filter PathFilter, page, limit int) ([]model.LearningPath, int64, error) {
	query := r.DB.Model(&model.LearningPath{})

	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var paths []model.LearningPath
	err := query.Preload("Category").
		Order("`order` ASC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&paths).Error
	return paths, total, err
}

func (r *PathRepository) FindByID(id uint) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Preload("Category").First(&path, id).Error
	return &path, err
}

func (r *PathRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

func (r *PathRepository) MaxOrder() (int, error) {
	var max *int
	err := r.DB.Model(&model.LearningPath{}).Select("MAX(`order`)").Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

func (r *PathRepository) Update(path *model.LearningPath) error {
	return r.DB.Save(path).Error
}

// Reorder applies all order updates in one transaction so a concurrent
// reader sees either the old ordering or the new one, never a mix.
func (r *PathRepository) Reorder(updates []model.OrderUpdate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(&model.LearningPath{}).
				Where("id = ?", u.ID).
				Update("order", u.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete hard-deletes the path together with its nodes. A soft delete
// would keep the node rows alive under a path no reader can reach.
func (r *PathRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("path_id = ?", id).Delete(&model.Node{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.LearningPath{}, id).Error
	})
}
