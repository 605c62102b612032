package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
	pb "github.com/dmitrijs2005/taskmesh/internal/proto"
	"github.com/dmitrijs2005/taskmesh/internal/tasks/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeTaskSvc struct {
	listOut []*models.Task
	listErr error

	addOut *models.Task
	addErr error

	completeOut *models.Task
	completeErr error

	removeErr error

	gotUserID string
}

func (f *fakeTaskSvc) List(ctx context.Context, userID string) ([]*models.Task, error) {
	f.gotUserID = userID
	return f.listOut, f.listErr
}
func (f *fakeTaskSvc) Add(ctx context.Context, userID, title, description string) (*models.Task, error) {
	f.gotUserID = userID
	return f.addOut, f.addErr
}
func (f *fakeTaskSvc) Complete(ctx context.Context, userID, id string) (*models.Task, error) {
	f.gotUserID = userID
	return f.completeOut, f.completeErr
}
func (f *fakeTaskSvc) Remove(ctx context.Context, userID, id string) error {
	f.gotUserID = userID
	return f.removeErr
}

type fakeGreeterSvc struct {
	msg string
	err error
}

func (f *fakeGreeterSvc) Welcome(ctx context.Context, username string) (string, error) {
	return f.msg, f.err
}

func newServer(ts taskSvc, gs greeterSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		tasks:     ts,
		greeter:   gs,
		logger:    &logging.NopLogger{},
		jwtSecret: []byte("k"),
	}
}

func authedCtx(userID, username string) context.Context {
	ctx := context.WithValue(context.Background(), userIDKey, userID)
	return context.WithValue(ctx, usernameKey, username)
}

// ---- tests ----

func TestListTasks_OK(t *testing.T) {
	ts := &fakeTaskSvc{listOut: []*models.Task{
		{ID: "t-1", Title: "buy milk"},
		{ID: "t-2", Title: "walk dog", Completed: true},
	}}
	s := newServer(ts, &fakeGreeterSvc{})

	resp, err := s.ListTasks(authedCtx("u-1", "alice"), &pb.ListTasksRequest{})
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if ts.gotUserID != "u-1" {
		t.Fatalf("service saw user id %q", ts.gotUserID)
	}
	if len(resp.GetTasks()) != 2 || resp.GetTasks()[1].GetCompleted() != true {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestListTasks_NoIdentity(t *testing.T) {
	s := newServer(&fakeTaskSvc{}, &fakeGreeterSvc{})

	_, err := s.ListTasks(context.Background(), &pb.ListTasksRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestAddTask_OK(t *testing.T) {
	ts := &fakeTaskSvc{addOut: &models.Task{ID: "t-1", Title: "buy milk", Description: "2 liters"}}
	s := newServer(ts, &fakeGreeterSvc{})

	resp, err := s.AddTask(authedCtx("u-1", "alice"), &pb.AddTaskRequest{Title: "buy milk", Description: "2 liters"})
	if err != nil {
		t.Fatalf("AddTask error: %v", err)
	}
	if resp.GetTask().GetId() != "t-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAddTask_ValidationBecomesInvalidArgument(t *testing.T) {
	ts := &fakeTaskSvc{addErr: &common.ValidationError{Violations: []common.FieldViolation{
		{Field: "title", Message: "must not be empty"},
	}}}
	s := newServer(ts, &fakeGreeterSvc{})

	_, err := s.AddTask(authedCtx("u-1", "alice"), &pb.AddTaskRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestCompleteTask_NotFound(t *testing.T) {
	ts := &fakeTaskSvc{completeErr: common.ErrNotFound}
	s := newServer(ts, &fakeGreeterSvc{})

	_, err := s.CompleteTask(authedCtx("u-1", "alice"), &pb.CompleteTaskRequest{Id: "t-ghost"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestRemoveTask_OK(t *testing.T) {
	s := newServer(&fakeTaskSvc{}, &fakeGreeterSvc{})

	resp, err := s.RemoveTask(authedCtx("u-1", "alice"), &pb.RemoveTaskRequest{Id: "t-1"})
	if err != nil {
		t.Fatalf("RemoveTask error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestWelcome_OK(t *testing.T) {
	s := newServer(&fakeTaskSvc{}, &fakeGreeterSvc{msg: "Welcome, alice"})

	resp, err := s.Welcome(authedCtx("u-1", "alice"), &pb.WelcomeRequest{})
	if err != nil {
		t.Fatalf("Welcome error: %v", err)
	}
	if resp.GetMessage() != "Welcome, alice" {
		t.Fatalf("unexpected message: %q", resp.GetMessage())
	}
}

func TestWelcome_NoIdentity(t *testing.T) {
	s := newServer(&fakeTaskSvc{}, &fakeGreeterSvc{})

	_, err := s.Welcome(context.Background(), &pb.WelcomeRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}
