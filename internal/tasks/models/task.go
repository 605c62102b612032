// Package models defines the tasks node's data model.
package models

import "time"

// Task is a single to-do item owned by a user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}
