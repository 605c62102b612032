package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskmesh/internal/tasks/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	CompleteByID(ctx context.Context, id, userID string) (*models.Task, error)
	DeleteByID(ctx context.Context, id, userID string) error
}
