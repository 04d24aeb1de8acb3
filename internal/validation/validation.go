// Package validation contains input validation rules for the API surface.
package validation

import (
	"fmt"
	"regexp"

	"taskboard/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var taskStatuses = map[string]struct{}{
	models.TaskStatusPending:    {},
	models.TaskStatusInProgress: {},
	models.TaskStatusCompleted:  {},
}

var taskPriorities = map[string]struct{}{
	models.TaskPriorityLow:    {},
	models.TaskPriorityMedium: {},
	models.TaskPriorityHigh:   {},
}

// ValidateEmail checks basic email address shape.
func ValidateEmail(email string) error {
	if len(email) > 100 {
		return fmt.Errorf("email must be at most 100 characters")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateUsername checks username length constraints.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return fmt.Errorf("username must be at most 50 characters")
	}
	return nil
}

// ValidateTaskStatus checks the status against the enumerated set.
func ValidateTaskStatus(status string) error {
	if _, ok := taskStatuses[status]; !ok {
		return fmt.Errorf("status must be one of: pending, in_progress, completed")
	}
	return nil
}

// ValidateTaskPriority checks the priority against the enumerated set.
func ValidateTaskPriority(priority string) error {
	if _, ok := taskPriorities[priority]; !ok {
		return fmt.Errorf("priority must be one of: low, medium, high")
	}
	return nil
}
