// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/cache"
	"taskboard/internal/models"
	"taskboard/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskFilter holds the optional equality predicates for task listings and
// counts. Zero values mean "no filter"; supplied predicates combine with AND.
type TaskFilter struct {
	Status   string
	Priority string
	OwnerID  uint
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter, limit, offset int) ([]models.Task, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, filter TaskFilter) (int64, error)
}

// taskRepository implements TaskRepository
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Create", "tasks")
	defer span.End()

	// Omit the Owner association so GORM never upserts user rows from here.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewConstraintViolationError(err)
		}
		return models.NewInternalError(err)
	}

	// Reload with the owner embedded so responses carry the full record.
	if err := r.db.WithContext(ctx).Preload("Owner").First(task, task.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.StatsKey())
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	key := cache.TaskKey(id)

	err := cache.Aside(ctx, key, &task, cache.TaskTTL, func() error {
		defer observability.ObserveQuery("get", "tasks", time.Now())
		if err := r.db.WithContext(ctx).Preload("Owner").First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Task", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, filter TaskFilter, limit, offset int) ([]models.Task, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "List", "tasks")
	defer span.End()

	var tasks []models.Task
	if err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Owner").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&tasks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tasks, nil
}

func (r *taskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	defer observability.ObserveQuery("update", "tasks", time.Now())
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTask(ctx, task.ID)
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Task", id)
	}
	cache.InvalidateTask(ctx, id)
	return nil
}

func (r *taskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx), filter).
		Model(&models.Task{}).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// applyFilter appends the conjunctive equality predicates from the filter.
func (r *taskRepository) applyFilter(db *gorm.DB, filter TaskFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		db = db.Where("priority = ?", filter.Priority)
	}
	if filter.OwnerID != 0 {
		db = db.Where("owner_id = ?", filter.OwnerID)
	}
	return db
}
