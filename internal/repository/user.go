// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskboard/internal/cache"
	"taskboard/internal/models"
	"taskboard/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	DeleteWithTasks(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.ObserveQuery("create", "users", time.Now())
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConstraintViolationError(err)
		}
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.StatsKey())
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		defer observability.ObserveQuery("get", "users", time.Now())
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "List", "users")
	defer span.End()

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	defer observability.ObserveQuery("update", "users", time.Now())
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConstraintViolationError(err)
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateUser(ctx, user.ID)
	// Cached task records embed the owner inline, so they go stale too.
	if cache.GetClient() != nil {
		var taskIDs []uint
		if err := r.db.WithContext(ctx).Model(&models.Task{}).
			Where("owner_id = ?", user.ID).
			Pluck("id", &taskIDs).Error; err == nil {
			for _, taskID := range taskIDs {
				cache.InvalidateTask(ctx, taskID)
			}
		}
	}
	return nil
}

// DeleteWithTasks removes the user's tasks and then the user inside a single
// transaction, so concurrent readers never observe tasks with a vanished owner.
func (r *userRepository) DeleteWithTasks(ctx context.Context, id uint) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "DeleteWithTasks", "users")
	defer span.End()

	var taskIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("owner_id = ?", id).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("User", id)
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}

	cache.InvalidateUser(ctx, id)
	for _, taskID := range taskIDs {
		cache.InvalidateTask(ctx, taskID)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// isForeignKeyError checks if a DB error is a foreign key violation.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL foreign key violation SQLSTATE 23503
	return strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "23503")
}
