// Package grpc exposes the task and greeter operations over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/taskmesh/internal/logging"
	pb "github.com/dmitrijs2005/taskmesh/internal/proto"
	"github.com/dmitrijs2005/taskmesh/internal/tasks/models"
	"google.golang.org/grpc"
)

// taskSvc is the transport-facing contract of the task service.
type taskSvc interface {
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Add(ctx context.Context, userID, title, description string) (*models.Task, error)
	Complete(ctx context.Context, userID, id string) (*models.Task, error)
	Remove(ctx context.Context, userID, id string) error
}

// greeterSvc is the transport-facing contract of the greeter service.
type greeterSvc interface {
	Welcome(ctx context.Context, username string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedTaskServiceServer
	pb.UnimplementedGreeterServiceServer
	address   string
	tasks     taskSvc
	greeter   greeterSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, ts taskSvc, gs greeterSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		tasks:     ts,
		greeter:   gs,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterTaskServiceServer(srv, s)
	pb.RegisterGreeterServiceServer(srv, s)

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
