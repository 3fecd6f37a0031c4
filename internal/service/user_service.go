package service

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
}

func NewUserService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository) *UserService {
	return &UserService{UserRepo: userRepo, ProgressRepo: progressRepo}
}

type CreateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (s *UserService) GetAll(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.FindAll(page, limit)
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) Create(input CreateUserInput) (*model.User, error) {
	role := model.Student
	if input.Role != "" {
		if !model.ValidRole(input.Role) {
			return nil, util.NewValidationError("invalid role: " + input.Role)
		}
		role = model.UserRole(input.Role)
	}

	if _, err := s.UserRepo.FindByEmail(input.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateRole(id uint, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, util.NewValidationError("invalid role: " + role)
	}
	if _, err := s.UserRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if err := s.UserRepo.UpdateRole(id, model.UserRole(role)); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(id)
}

// UpdatePassword verifies the current password before setting a new
// one.
func (s *UserService) UpdatePassword(id uint, currentPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return util.NewValidationError("current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.UserRepo.Update(user)
}

// Delete refuses self-deletion and refuses users who still own progress
// records, so dependent data never goes dangling.
func (s *UserService) Delete(id, requesterID uint) error {
	if id == requesterID {
		return util.NewValidationError("you cannot delete your own account")
	}
	if _, err := s.UserRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrUserNotFound
		}
		return err
	}
	dependents, err := s.ProgressRepo.CountByUser(id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return util.NewConstraintError("user has learner progress records; they must be abandoned before the user can be deleted")
	}
	return s.UserRepo.Delete(id)
}
