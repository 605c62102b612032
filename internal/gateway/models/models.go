// Package models holds the gateway's view of upstream records.
package models

// PublicUser is a user as returned by the identity node. Token is set only
// on register/login responses.
type PublicUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

// Task is a to-do item as returned by the tasks node.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
