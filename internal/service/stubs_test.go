package service

import (
	"context"

	"taskboard/internal/models"
	"taskboard/internal/repository"
)

type userRepoStub struct {
	createFn          func(context.Context, *models.User) error
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByUsernameFn   func(context.Context, string) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	listFn            func(context.Context, int, int) ([]models.User, error)
	updateFn          func(context.Context, *models.User) error
	deleteWithTasksFn func(context.Context, uint) error
	countFn           func(context.Context) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteWithTasks(ctx context.Context, id uint) error {
	return s.deleteWithTasksFn(ctx, id)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

type taskRepoStub struct {
	createFn      func(context.Context, *models.Task) error
	getByIDFn     func(context.Context, uint) (*models.Task, error)
	listFn        func(context.Context, repository.TaskFilter, int, int) ([]models.Task, error)
	listByOwnerFn func(context.Context, uint) ([]models.Task, error)
	updateFn      func(context.Context, *models.Task) error
	deleteFn      func(context.Context, uint) error
	countFn       func(context.Context, repository.TaskFilter) (int64, error)
}

func (s *taskRepoStub) Create(ctx context.Context, task *models.Task) error {
	return s.createFn(ctx, task)
}
func (s *taskRepoStub) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	return s.getByIDFn(ctx, id)
}
func (s *taskRepoStub) List(ctx context.Context, filter repository.TaskFilter, limit, offset int) ([]models.Task, error) {
	return s.listFn(ctx, filter, limit, offset)
}
func (s *taskRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Task, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *taskRepoStub) Update(ctx context.Context, task *models.Task) error {
	return s.updateFn(ctx, task)
}
func (s *taskRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *taskRepoStub) Count(ctx context.Context, filter repository.TaskFilter) (int64, error) {
	return s.countFn(ctx, filter)
}
