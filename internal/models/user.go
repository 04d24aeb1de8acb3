// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account that can own tasks.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Tasks     []Task    `gorm:"foreignKey:OwnerID" json:"-"`
}
