// Package grpc exposes the identity operations over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/taskmesh/internal/identity/models"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
	pb "github.com/dmitrijs2005/taskmesh/internal/proto"
	"google.golang.org/grpc"
)

// userSvc is the transport-facing contract of the user service.
type userSvc interface {
	Register(ctx context.Context, username, password, email string) (*models.PublicUser, error)
	Login(ctx context.Context, email, password string) (*models.PublicUser, error)
	ResolveToken(ctx context.Context, token string) (*models.PublicUser, error)
	Me(ctx context.Context, userID string) (*models.PublicUser, error)
}

type GRPCServer struct {
	pb.UnimplementedIdentityServiceServer
	address   string
	users     userSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterIdentityServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
