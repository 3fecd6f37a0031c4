package service

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"gorm.io/gorm"
)

type PathService struct {
	PathRepo     *repository.PathRepository
	CategoryRepo *repository.CategoryRepository
	ProgressRepo *repository.ProgressRepository
}

func NewPathService(pathRepo *repository.PathRepository, categoryRepo *repository.CategoryRepository, progressRepo *repository.ProgressRepository) *PathService {
	return &PathService{
		PathRepo:     pathRepo,
		CategoryRepo: categoryRepo,
		ProgressRepo: progressRepo,
	}
}

type CreatePathInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Difficulty  string `json:"difficulty"`
}

type UpdatePathInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"categoryId"`
	Difficulty  *string `json:"difficulty"`
}

func (s *PathService) GetAll(filter repository.PathFilter, page, limit int) ([]model.LearningPath, int64, error) {
	if filter.Difficulty != "" && !model.ValidDifficulty(filter.Difficulty) {
		return nil, 0, util.NewValidationError("unknown difficulty: " + filter.Difficulty)
	}
	return s.PathRepo.FindAll(filter, page, limit)
}

func (s *PathService) GetByID(id uint) (*model.LearningPath, error) {
	path, err := s.PathRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrPathNotFound
	}
	return path, err
}

// Create appends the new path at the end of the manual ordering.
func (s *PathService) Create(input CreatePathInput) (*model.LearningPath, error) {
	if _, err := s.CategoryRepo.FindByID(input.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	difficulty := model.Beginner
	if input.Difficulty != "" {
		if !model.ValidDifficulty(input.Difficulty) {
			return nil, util.NewValidationError("unknown difficulty: " + input.Difficulty)
		}
		difficulty = model.Difficulty(input.Difficulty)
	}

	maxOrder, err := s.PathRepo.MaxOrder()
	if err != nil {
		return nil, err
	}

	path := &model.LearningPath{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Difficulty:  difficulty,
		Order:       maxOrder + 1,
	}
	if err := s.PathRepo.Create(path); err != nil {
		return nil, err
	}
	return s.PathRepo.FindByID(path.ID)
}

func (s *PathService) Update(id uint, input UpdatePathInput) (*model.LearningPath, error) {
	path, err := s.PathRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPathNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		path.Title = *input.Title
	}
	if input.Description != nil {
		path.Description = *input.Description
	}
	if input.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*input.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrCategoryNotFound
			}
			return nil, err
		}
		path.CategoryID = *input.CategoryID
	}
	if input.Difficulty != nil {
		if !model.ValidDifficulty(*input.Difficulty) {
			return nil, util.NewValidationError("unknown difficulty: " + *input.Difficulty)
		}
		path.Difficulty = model.Difficulty(*input.Difficulty)
	}

	path.Category = nil
	path.Nodes = nil
	if err := s.PathRepo.Update(path); err != nil {
		return nil, err
	}
	return s.PathRepo.FindByID(id)
}

func (s *PathService) Reorder(updates []model.OrderUpdate) error {
	if len(updates) == 0 {
		return util.NewValidationError("no reorder updates provided")
	}
	return s.PathRepo.Reorder(updates)
}

// Delete refuses to remove a path that learners have progress on. The
// check lives here rather than relying on the database foreign key so
// the caller gets the same answer on every dialect.
func (s *PathService) Delete(id uint) error {
	if _, err := s.PathRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrPathNotFound
		}
		return err
	}
	dependents, err := s.ProgressRepo.CountByPath(id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return util.NewConstraintError("path has learner progress records; they must be abandoned before the path can be deleted")
	}
	return s.PathRepo.Delete(id)
}
