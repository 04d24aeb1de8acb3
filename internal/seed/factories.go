// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"taskboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var (
	taskStatuses = []string{
		models.TaskStatusPending,
		models.TaskStatusInProgress,
		models.TaskStatusCompleted,
	}
	taskPriorities = []string{
		models.TaskPriorityLow,
		models.TaskPriorityMedium,
		models.TaskPriorityHigh,
	}
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
		IsActive: true,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildTask constructs a task struct for the given owner but does not
// persist it. Useful for batching.
func (f *Factory) BuildTask(owner *models.User, overrides ...func(*models.Task)) *models.Task {
	task := &models.Task{
		Title:       gofakeit.Sentence(5),
		Description: gofakeit.Paragraph(1, 2, 6, "\n"),
		Status:      taskStatuses[f.rng.Intn(len(taskStatuses))],
		Priority:    taskPriorities[f.rng.Intn(len(taskPriorities))],
		OwnerID:     owner.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	task.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
	task.UpdatedAt = task.CreatedAt

	// roughly half of tasks carry a due date, spread over the next 30 days
	if f.rng.Intn(2) == 0 {
		due := time.Now().Add(time.Duration(1+f.rng.Intn(30)) * 24 * time.Hour)
		task.DueDate = &due
	}

	for _, override := range overrides {
		override(task)
	}
	return task
}

// CreateTask constructs and persists a sample `models.Task` for the given owner.
func (f *Factory) CreateTask(owner *models.User, overrides ...func(*models.Task)) (*models.Task, error) {
	task := f.BuildTask(owner, overrides...)
	if err := f.db.Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// CreateTasksBatch persists multiple tasks in a single DB call when possible.
func (f *Factory) CreateTasksBatch(tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return f.db.Create(&tasks).Error
}
