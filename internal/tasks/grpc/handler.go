package grpc

import (
	"context"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/grpcerr"
	pb "github.com/dmitrijs2005/taskmesh/internal/proto"
	"github.com/dmitrijs2005/taskmesh/internal/tasks/models"
)

func toProtoTask(t *models.Task) *pb.Task {
	return &pb.Task{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

func (s *GRPCServer) ListTasks(ctx context.Context, req *pb.ListTasksRequest) (*pb.ListTasksResponse, error) {

	userID := userIDFromContext(ctx)
	if userID == "" {
		return nil, grpcerr.ToStatus(common.ErrMissingToken)
	}

	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	resp := &pb.ListTasksResponse{}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toProtoTask(t))
	}
	return resp, nil
}

func (s *GRPCServer) AddTask(ctx context.Context, req *pb.AddTaskRequest) (*pb.TaskResponse, error) {

	userID := userIDFromContext(ctx)
	if userID == "" {
		return nil, grpcerr.ToStatus(common.ErrMissingToken)
	}

	task, err := s.tasks.Add(ctx, userID, req.Title, req.Description)
	if err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	s.logger.Info(ctx, "Task added", "task_id", task.ID)
	return &pb.TaskResponse{Task: toProtoTask(task)}, nil
}

func (s *GRPCServer) CompleteTask(ctx context.Context, req *pb.CompleteTaskRequest) (*pb.TaskResponse, error) {

	userID := userIDFromContext(ctx)
	if userID == "" {
		return nil, grpcerr.ToStatus(common.ErrMissingToken)
	}

	task, err := s.tasks.Complete(ctx, userID, req.Id)
	if err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	return &pb.TaskResponse{Task: toProtoTask(task)}, nil
}

func (s *GRPCServer) RemoveTask(ctx context.Context, req *pb.RemoveTaskRequest) (*pb.RemoveTaskResponse, error) {

	userID := userIDFromContext(ctx)
	if userID == "" {
		return nil, grpcerr.ToStatus(common.ErrMissingToken)
	}

	if err := s.tasks.Remove(ctx, userID, req.Id); err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	return &pb.RemoveTaskResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Welcome(ctx context.Context, req *pb.WelcomeRequest) (*pb.WelcomeResponse, error) {

	username := usernameFromContext(ctx)
	if username == "" {
		return nil, grpcerr.ToStatus(common.ErrMissingToken)
	}

	msg, err := s.greeter.Welcome(ctx, username)
	if err != nil {
		return nil, grpcerr.ToStatus(err)
	}

	return &pb.WelcomeResponse{Message: msg}, nil
}
