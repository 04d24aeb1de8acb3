package service

import (
	"context"

	"taskboard/internal/cache"
	"taskboard/internal/models"
	"taskboard/internal/repository"
)

// Stats aggregates entity counts over the current store state. Each count is
// individually consistent; no cross-count snapshot is guaranteed.
type Stats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalTasks     int64 `json:"total_tasks"`
	PendingTasks   int64 `json:"pending_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`
}

// StatsService computes dashboard counts from the user and task repositories.
type StatsService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

func NewStatsService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *StatsService {
	return &StatsService{userRepo: userRepo, taskRepo: taskRepo}
}

func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := cache.Aside(ctx, cache.StatsKey(), &stats, cache.StatsTTL, func() error {
		var err error
		if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
			return err
		}
		if stats.TotalTasks, err = s.taskRepo.Count(ctx, repository.TaskFilter{}); err != nil {
			return err
		}
		if stats.PendingTasks, err = s.taskRepo.Count(ctx, repository.TaskFilter{Status: models.TaskStatusPending}); err != nil {
			return err
		}
		stats.CompletedTasks, err = s.taskRepo.Count(ctx, repository.TaskFilter{Status: models.TaskStatusCompleted})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
