package service

import (
	"context"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/observability"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

// TaskService owns task CRUD rules: owner existence, status/priority
// validation with defaults, partial updates, and the updated_at refresh.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// CreateTaskInput carries the fields for task creation. Status and Priority
// default to pending/medium when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	OwnerID     uint
}

// UpdateTaskInput carries optional fields for a partial task update.
// Only non-nil fields are applied; updated_at is refreshed regardless.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, userRepo: userRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("title is required")
	}

	status := in.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if err := validation.ValidateTaskStatus(status); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	priority := in.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if err := validation.ValidateTaskPriority(priority); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// The owner must exist at creation time.
	if _, err := s.userRepo.GetByID(ctx, in.OwnerID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
		OwnerID:     in.OwnerID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	observability.EntityOperations.WithLabelValues("task", "create").Inc()
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter, limit, offset int) ([]models.Task, error) {
	return s.taskRepo.List(ctx, filter, limit, offset)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uint) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// UpdateTask applies only the fields present in the input and refreshes
// updated_at on every successful update, even an empty one.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, in UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("title cannot be empty")
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		if err := validation.ValidateTaskStatus(*in.Status); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		task.Status = *in.Status
	}
	if in.Priority != nil {
		if err := validation.ValidateTaskPriority(*in.Priority); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}

	task.UpdatedAt = time.Now().UTC()
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	observability.EntityOperations.WithLabelValues("task", "update").Inc()
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}
	observability.EntityOperations.WithLabelValues("task", "delete").Inc()
	return nil
}

// ListTasksForUser returns all tasks owned by the user, unpaginated.
// The user must exist.
func (s *TaskService) ListTasksForUser(ctx context.Context, userID uint) ([]models.Task, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByOwner(ctx, userID)
}
