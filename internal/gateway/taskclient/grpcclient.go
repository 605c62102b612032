package taskclient

import (
	"context"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/models"
	"github.com/dmitrijs2005/taskmesh/internal/grpcerr"
	pb "github.com/dmitrijs2005/taskmesh/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	tasks       pb.TaskServiceClient
	greeter     pb.GreeterServiceClient
}

// NewGRPCClient dials the tasks node.
func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		tasks:       pb.NewTaskServiceClient(conn),
		greeter:     pb.NewGreeterServiceClient(conn),
	}, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func toModelTask(t *pb.Task) *models.Task {
	return &models.Task{
		ID:          t.GetId(),
		Title:       t.GetTitle(),
		Description: t.GetDescription(),
		Completed:   t.GetCompleted(),
	}
}

func (c *GRPCClient) List(ctx context.Context, token string) ([]*models.Task, error) {
	resp, err := c.tasks.ListTasks(withAccessToken(ctx, token), &pb.ListTasksRequest{})
	if err != nil {
		return nil, grpcerr.FromStatus(err)
	}
	result := make([]*models.Task, 0, len(resp.GetTasks()))
	for _, t := range resp.GetTasks() {
		result = append(result, toModelTask(t))
	}
	return result, nil
}

func (c *GRPCClient) Add(ctx context.Context, token, title, description string) (*models.Task, error) {
	resp, err := c.tasks.AddTask(withAccessToken(ctx, token), &pb.AddTaskRequest{Title: title, Description: description})
	if err != nil {
		return nil, grpcerr.FromStatus(err)
	}
	return toModelTask(resp.GetTask()), nil
}

func (c *GRPCClient) Complete(ctx context.Context, token, id string) (*models.Task, error) {
	resp, err := c.tasks.CompleteTask(withAccessToken(ctx, token), &pb.CompleteTaskRequest{Id: id})
	if err != nil {
		return nil, grpcerr.FromStatus(err)
	}
	return toModelTask(resp.GetTask()), nil
}

func (c *GRPCClient) Remove(ctx context.Context, token, id string) error {
	_, err := c.tasks.RemoveTask(withAccessToken(ctx, token), &pb.RemoveTaskRequest{Id: id})
	if err != nil {
		return grpcerr.FromStatus(err)
	}
	return nil
}

func (c *GRPCClient) Welcome(ctx context.Context, token string) (string, error) {
	resp, err := c.greeter.Welcome(withAccessToken(ctx, token), &pb.WelcomeRequest{})
	if err != nil {
		return "", grpcerr.FromStatus(err)
	}
	return resp.GetMessage(), nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
