package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/grpcerr"
	"github.com/dmitrijs2005/taskmesh/internal/identity/models"
	pb "github.com/dmitrijs2005/taskmesh/internal/proto"
)

func toProtoUser(u *models.PublicUser) *pb.User {
	return &pb.User{
		Id:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Token:    u.Token,
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.UserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		s.logger.Info(ctx, "Registration failed", "error", err.Error())
		return nil, grpcerr.ToStatus(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.UserResponse, error) {

	user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) ResolveToken(ctx context.Context, req *pb.ResolveTokenRequest) (*pb.UserResponse, error) {

	user, err := s.users.ResolveToken(ctx, req.Token)
	if err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) Me(ctx context.Context, req *pb.MeRequest) (*pb.UserResponse, error) {

	userID := userIDFromContext(ctx)
	if userID == "" {
		return nil, grpcerr.ToStatus(common.ErrMissingToken)
	}

	user, err := s.users.Me(ctx, userID)
	if err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	return &pb.UserResponse{User: toProtoUser(user)}, nil
}
