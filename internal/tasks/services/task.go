// Package services contains tasks-side business logic.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
	"github.com/dmitrijs2005/taskmesh/internal/tasks/models"
	"github.com/dmitrijs2005/taskmesh/internal/tasks/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskService provides per-user task CRUD. Every operation is scoped by the
// authenticated user id; a task belonging to someone else behaves exactly
// like a missing task.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *TaskService {
	return &TaskService{db: db, repomanager: m, logger: logger}
}

// List returns the user's tasks in creation order.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	result, err := s.repomanager.Tasks(s.db).ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "listing tasks", "error", err)
		return nil, common.ErrInternal
	}
	return result, nil
}

// Add validates the title and stores a new task for the user.
func (s *TaskService) Add(ctx context.Context, userID, title, description string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &common.ValidationError{Violations: []common.FieldViolation{
			{Field: "title", Message: "must not be empty"},
		}}
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	task, err := s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		s.logger.Error(ctx, "creating task", "error", err)
		return nil, common.ErrInternal
	}

	return task, nil
}

// Complete marks the user's task as done and returns the updated record.
func (s *TaskService) Complete(ctx context.Context, userID, id string) (*models.Task, error) {
	task, err := s.repomanager.Tasks(s.db).CompleteByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "completing task", "error", err)
		return nil, common.ErrInternal
	}
	return task, nil
}

// Remove deletes the user's task.
func (s *TaskService) Remove(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Tasks(s.db).DeleteByID(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		s.logger.Error(ctx, "removing task", "error", err)
		return common.ErrInternal
	}
	return nil
}
