// Package service implements the business rules of the API on top of the
// repository layer.
package service

import (
	"context"

	"taskboard/internal/models"
	"taskboard/internal/observability"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

// UserService owns user CRUD rules: uniqueness of username and email,
// partial-update semantics, and the cascading delete of owned tasks.
type UserService struct {
	userRepo repository.UserRepository
}

// CreateUserInput carries the fields required to create a user.
type CreateUserInput struct {
	Username string
	Email    string
	FullName string
}

// UpdateUserInput carries optional fields for a partial user update.
// Only non-nil fields are applied.
type UpdateUserInput struct {
	Username *string
	Email    *string
	FullName *string
	IsActive *bool
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.FullName == "" {
		return nil, models.NewValidationError("full_name is required")
	}

	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username or email already registered")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username or email already registered")
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.EntityOperations.WithLabelValues("user", "create").Inc()
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies only the fields present in the input. Username and email
// changes are re-checked for uniqueness against other rows.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != user.Username {
		if err := validation.ValidateUsername(*in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, models.NewConflictError("Username already registered")
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, models.NewConflictError("Email already registered")
		}
		user.Email = *in.Email
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, models.NewValidationError("full_name cannot be empty")
		}
		user.FullName = *in.FullName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	observability.EntityOperations.WithLabelValues("user", "update").Inc()
	return user, nil
}

// DeleteUser removes the user and all of its tasks atomically.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.DeleteWithTasks(ctx, id); err != nil {
		return err
	}
	observability.EntityOperations.WithLabelValues("user", "delete").Inc()
	return nil
}
