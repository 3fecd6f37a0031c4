package service

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"gorm.io/gorm"
)

// CategoryService manages the flat category reference data. Deletion is
// intentionally not offered.
type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

func (s *CategoryService) GetAll() ([]model.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *CategoryService) GetByID(id uint) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCategoryNotFound
	}
	return category, err
}

func (s *CategoryService) Create(input CreateCategoryInput) (*model.Category, error) {
	if _, err := s.CategoryRepo.FindBySlug(input.Slug); err == nil {
		return nil, util.NewConflictError("slug is already in use")
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	category := &model.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	if input.Slug != nil && *input.Slug != category.Slug {
		if _, err := s.CategoryRepo.FindBySlug(*input.Slug); err == nil {
			return nil, util.NewConflictError("slug is already in use")
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		category.Slug = *input.Slug
	}
	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	category.Paths = nil
	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}
