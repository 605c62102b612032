package identityclient

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
	client      pb.IdentityServiceClient
}

// NewGRPCClient dials the identity node. The connection is lazy; a dead
// peer surfaces on the first call, not here.
func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      pb.NewIdentityServiceClient(conn),
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

func toModelUser(u *pb.User) *models.PublicUser {
	return &models.PublicUser{
		ID:       u.GetId(),
		Username: u.GetUsername(),
		Email:    u.GetEmail(),
		Token:    u.GetToken(),
	}
}

func (c *GRPCClient) Register(ctx context.Context, username, password, email string) (*models.PublicUser, error) {
	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password, Email: email})
	if err != nil {
		return nil, grpcerr.FromStatus(err)
	}
	return toModelUser(resp.GetUser()), nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, grpcerr.FromStatus(err)
	}
	return toModelUser(resp.GetUser()), nil
}

func (c *GRPCClient) ResolveToken(ctx context.Context, token string) (*models.PublicUser, error) {
	resp, err := c.client.ResolveToken(ctx, &pb.ResolveTokenRequest{Token: token})
	if err != nil {
		return nil, grpcerr.FromStatus(err)
	}
	return toModelUser(resp.GetUser()), nil
}

func (c *GRPCClient) Me(ctx context.Context, token string) (*models.PublicUser, error) {
	resp, err := c.client.Me(withAccessToken(ctx, token), &pb.MeRequest{})
	if err != nil {
		return nil, grpcerr.FromStatus(err)
	}
	return toModelUser(resp.GetUser()), nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
