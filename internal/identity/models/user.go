// Package models defines the identity node's data model.
package models

import "time"

// User is a credential-store record. PasswordHash never leaves the
// identity node.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the outward projection of a User: sensitive fields are
// stripped and a bearer token may be attached (register/login responses).
type PublicUser struct {
	ID       string
	Username string
	Email    string
	Token    string
}

// Public strips the sensitive fields from u.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
