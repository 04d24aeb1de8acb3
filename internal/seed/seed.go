package seed

import (
	"fmt"
	"log"

	"taskboard/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	TasksPerUser int
	ShouldClean  bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and ~%d tasks each...", opts.NumUsers, opts.TasksPerUser)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d users created", len(users))

	total := 0
	for _, user := range users {
		// vary per-user task counts around the requested average
		count := opts.TasksPerUser
		if count > 1 {
			count = 1 + factory.rng.Intn(2*opts.TasksPerUser-1)
		}
		tasks := make([]*models.Task, 0, count)
		for i := 0; i < count; i++ {
			tasks = append(tasks, factory.BuildTask(user))
		}
		if err := factory.CreateTasksBatch(tasks); err != nil {
			return fmt.Errorf("failed to create tasks for user %d: %w", user.ID, err)
		}
		total += len(tasks)
	}
	log.Printf("%d tasks created", total)

	log.Println("Database seeding complete")
	return nil
}

// clearData removes existing rows so repeated seeding does not collide on
// unique usernames and emails. Tasks go first to satisfy the FK.
func clearData(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error
}
