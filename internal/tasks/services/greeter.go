package services

import (
	"context"
	"fmt"
)

// GreeterService produces the welcome message for an authenticated caller.
type GreeterService struct{}

// NewGreeterService constructs a GreeterService.
func NewGreeterService() *GreeterService {
	return &GreeterService{}
}

// Welcome greets the caller by username.
func (s *GreeterService) Welcome(ctx context.Context, username string) (string, error) {
	return fmt.Sprintf("Welcome, %s", username), nil
}
