package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/identity/models"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
	pb "github.com/dmitrijs2005/taskmesh/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUserSvc struct {
	registerOut *models.PublicUser
	registerErr error

	loginOut *models.PublicUser
	loginErr error

	resolveOut *models.PublicUser
	resolveErr error

	meOut *models.PublicUser
	meErr error

	gotMeUserID string
}

func (f *fakeUserSvc) Register(ctx context.Context, username, password, email string) (*models.PublicUser, error) {
	return f.registerOut, f.registerErr
}
func (f *fakeUserSvc) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	return f.loginOut, f.loginErr
}
func (f *fakeUserSvc) ResolveToken(ctx context.Context, token string) (*models.PublicUser, error) {
	return f.resolveOut, f.resolveErr
}
func (f *fakeUserSvc) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	f.gotMeUserID = userID
	return f.meOut, f.meErr
}

func newServer(u userSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		logger:    &logging.NopLogger{},
		jwtSecret: []byte("k"),
	}
}

// ---- tests ----

func TestRegister_OK(t *testing.T) {
	u := &fakeUserSvc{
		registerOut: &models.PublicUser{ID: "u-1", Username: "alice", Email: "alice@example.com", Token: "tok"},
	}
	s := newServer(u)

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{
		Username: "alice", Password: "secret1", Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetUser().GetId() != "u-1" || resp.GetUser().GetToken() != "tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegister_ValidationBecomesInvalidArgument(t *testing.T) {
	u := &fakeUserSvc{
		registerErr: &common.ValidationError{Violations: []common.FieldViolation{
			{Field: "password", Message: "must be at least 6 characters"},
		}},
	}
	s := newServer(u)

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestRegister_ConflictBecomesAlreadyExists(t *testing.T) {
	u := &fakeUserSvc{registerErr: &common.ConflictError{Field: "username"}}
	s := newServer(u)

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUserSvc{
		loginOut: &models.PublicUser{ID: "u-1", Username: "alice", Token: "tok"},
	}
	s := newServer(u)

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetUser().GetToken() != "tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLogin_BadCredentialsBecomeUnauthenticated(t *testing.T) {
	u := &fakeUserSvc{loginErr: common.ErrInvalidCredentials}
	s := newServer(u)

	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "x@example.com", Password: "nope"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestResolveToken_OK(t *testing.T) {
	u := &fakeUserSvc{
		resolveOut: &models.PublicUser{ID: "u-1", Username: "alice", Email: "alice@example.com"},
	}
	s := newServer(u)

	resp, err := s.ResolveToken(context.Background(), &pb.ResolveTokenRequest{Token: "tok"})
	if err != nil {
		t.Fatalf("ResolveToken error: %v", err)
	}
	if resp.GetUser().GetId() != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.GetUser().GetToken() != "" {
		t.Fatal("resolve must not return a token")
	}
}

func TestResolveToken_InvalidToken(t *testing.T) {
	u := &fakeUserSvc{resolveErr: common.ErrInvalidToken}
	s := newServer(u)

	_, err := s.ResolveToken(context.Background(), &pb.ResolveTokenRequest{Token: "garbage"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestMe_UsesUserIDFromContext(t *testing.T) {
	u := &fakeUserSvc{
		meOut: &models.PublicUser{ID: "u-1", Username: "alice"},
	}
	s := newServer(u)

	ctx := context.WithValue(context.Background(), userIDKey, "u-1")
	resp, err := s.Me(ctx, &pb.MeRequest{})
	if err != nil {
		t.Fatalf("Me error: %v", err)
	}
	if u.gotMeUserID != "u-1" {
		t.Fatalf("service saw user id %q", u.gotMeUserID)
	}
	if resp.GetUser().GetId() != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestMe_NoIdentityInContext(t *testing.T) {
	s := newServer(&fakeUserSvc{})

	_, err := s.Me(context.Background(), &pb.MeRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}
