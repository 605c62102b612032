// Package identityclient is the gateway's gRPC client for the identity node.
package identityclient

import (
	"context"

	"github.com/dmitrijs2005/taskmesh/internal/gateway/models"
)

// Client is the contract the gateway programs against; grpcclient.go holds
// the wire implementation.
type Client interface {
	Register(ctx context.Context, username, password, email string) (*models.PublicUser, error)
	Login(ctx context.Context, email, password string) (*models.PublicUser, error)
	ResolveToken(ctx context.Context, token string) (*models.PublicUser, error)
	Me(ctx context.Context, token string) (*models.PublicUser, error)
	Close() error
}
