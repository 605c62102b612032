// Package common defines shared constants and the error taxonomy used across
// taskmesh nodes. The taxonomy is a closed set: services raise these values
// (matched with errors.Is / errors.As) and never format wire responses
// themselves; the gateway translates them into HTTP shapes at the edge.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal = errors.New("internal error")

	// Login failure. Deliberately identical for "no such email" and
	// "wrong password" so account existence does not leak; the two causes
	// are distinguished only in server-side logs.
	ErrInvalidCredentials = errors.New("email or password is invalid")

	// Auth errors raised by the gate and the token codec.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// FieldViolation names a single offending input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError reports malformed client input, one violation per field.
// Multiple fields may be reported together.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ConflictError reports a uniqueness violation on Field ("username" or "email").
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + " already exists"
}
