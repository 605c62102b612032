// Package taskclient is the gateway's gRPC client for the tasks node.
package taskclient

import (
	"context"

	"github.com/dmitrijs2005/taskmesh/internal/gateway/models"
)

// Client is the contract the gateway programs against. Every call carries
// the caller's bearer token; the tasks node does its own verification.
type Client interface {
	List(ctx context.Context, token string) ([]*models.Task, error)
	Add(ctx context.Context, token, title, description string) (*models.Task, error)
	Complete(ctx context.Context, token, id string) (*models.Task, error)
	Remove(ctx context.Context, token, id string) error
	Welcome(ctx context.Context, token string) (string, error)
	Close() error
}
