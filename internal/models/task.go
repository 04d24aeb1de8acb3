package models

import (
	"time"
)

// Task status values. Transitions between them are unconstrained.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task priority values.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task represents a unit of work owned by a user.
// UpdatedAt is refreshed by the service layer on every successful mutation,
// not by the store.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:20;default:pending;index" json:"status"`
	Priority    string     `gorm:"size:10;default:medium;index" json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
	Owner       User       `gorm:"foreignKey:OwnerID" json:"owner"`
}
