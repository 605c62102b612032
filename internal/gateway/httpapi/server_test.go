package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/common"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/models"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
)

// ---- fakes ----

type fakeIdentity struct {
	registerOut *models.PublicUser
	registerErr error

	loginOut *models.PublicUser
	loginErr error

	resolveOut   *models.PublicUser
	resolveErr   error
	resolveCalls int

	meOut *models.PublicUser
	meErr error
}

func (f *fakeIdentity) Register(ctx context.Context, username, password, email string) (*models.PublicUser, error) {
	return f.registerOut, f.registerErr
}
func (f *fakeIdentity) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	return f.loginOut, f.loginErr
}
func (f *fakeIdentity) ResolveToken(ctx context.Context, token string) (*models.PublicUser, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	u := *f.resolveOut
	return &u, nil
}
func (f *fakeIdentity) Me(ctx context.Context, token string) (*models.PublicUser, error) {
	return f.meOut, f.meErr
}
func (f *fakeIdentity) Close() error { return nil }

type fakeTasks struct {
	listOut []*models.Task
	listErr error

	addOut *models.Task
	addErr error

	completeOut *models.Task
	completeErr error

	removeErr error

	welcomeOut string
	welcomeErr error

	gotToken string
	gotID    string
}

func (f *fakeTasks) List(ctx context.Context, token string) ([]*models.Task, error) {
	f.gotToken = token
	return f.listOut, f.listErr
}
func (f *fakeTasks) Add(ctx context.Context, token, title, description string) (*models.Task, error) {
	f.gotToken = token
	return f.addOut, f.addErr
}
func (f *fakeTasks) Complete(ctx context.Context, token, id string) (*models.Task, error) {
	f.gotToken, f.gotID = token, id
	return f.completeOut, f.completeErr
}
func (f *fakeTasks) Remove(ctx context.Context, token, id string) error {
	f.gotToken, f.gotID = token, id
	return f.removeErr
}
func (f *fakeTasks) Welcome(ctx context.Context, token string) (string, error) {
	f.gotToken = token
	return f.welcomeOut, f.welcomeErr
}
func (f *fakeTasks) Close() error { return nil }

func newTestServer(identity *fakeIdentity, tasks *fakeTasks) *Server {
	return NewServer(":0", &logging.NopLogger{}, identity, tasks, 30*time.Minute)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", common.BearerScheme+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return out
}

// ---- signup / login ----

func TestSignup_OK(t *testing.T) {
	identity := &fakeIdentity{
		registerOut: &models.PublicUser{ID: "u-1", Username: "alice", Email: "alice@example.com", Token: "tok"},
	}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/signup", "", signupRequest{
		Username: "alice", Password: "secret1", Email: "alice@example.com",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[userBody](t, rec)
	if body.User == nil || body.User.ID != "u-1" || body.User.Token != "tok" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSignup_ValidationErrorsMap(t *testing.T) {
	identity := &fakeIdentity{
		registerErr: &common.ValidationError{Violations: []common.FieldViolation{
			{Field: "username", Message: "must be at least 2 characters"},
			{Field: "email", Message: "must be a valid email address"},
		}},
	}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/signup", "", signupRequest{})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[validationBody](t, rec)
	if body.Errors["username"] == "" || body.Errors["email"] == "" {
		t.Fatalf("unexpected errors map: %+v", body.Errors)
	}
}

func TestSignup_Conflict(t *testing.T) {
	identity := &fakeIdentity{registerErr: &common.ConflictError{Field: "username"}}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/signup", "", signupRequest{Username: "alice"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody[validationBody](t, rec)
	if body.Errors["username"] != "already exists" {
		t.Fatalf("unexpected errors map: %+v", body.Errors)
	}
}

func TestSignup_MalformedJSON(t *testing.T) {
	h := newTestServer(&fakeIdentity{}, &fakeTasks{}).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestLogin_OK(t *testing.T) {
	identity := &fakeIdentity{
		loginOut: &models.PublicUser{ID: "u-1", Username: "alice", Token: "tok"},
	}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/login", "", loginRequest{Email: "alice@example.com", Password: "secret1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[userBody](t, rec)
	if body.User.Token != "tok" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	identity := &fakeIdentity{loginErr: common.ErrInvalidCredentials}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/login", "", loginRequest{Email: "x@example.com", Password: "nope"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody[errorEnvelope](t, rec)
	if body.Message != common.ErrInvalidCredentials.Error() || body.Type != "LOGIN_FAILED" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

// ---- /api/user ----

func TestUser_OK(t *testing.T) {
	identity := &fakeIdentity{
		resolveOut: &models.PublicUser{ID: "u-1", Username: "alice"},
		meOut:      &models.PublicUser{ID: "u-1", Username: "alice", Email: "alice@example.com"},
	}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/user", "tok", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[userBody](t, rec)
	if body.User.Email != "alice@example.com" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestUser_NoToken(t *testing.T) {
	h := newTestServer(&fakeIdentity{}, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/user", "", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody[errorEnvelope](t, rec)
	if body.Type != "NO_TOKEN" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestUser_BadTokenTreatedAsMissing(t *testing.T) {
	// the soft gate swallows the resolve failure; the handler then rejects
	// the request for having no identity
	identity := &fakeIdentity{resolveErr: common.ErrInvalidToken}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/user", "garbage", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
}

// ---- protected routes ----

func TestProtectedRoutes_RejectWithoutToken(t *testing.T) {
	h := newTestServer(&fakeIdentity{}, &fakeTasks{}).Handler()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/greet"},
		{http.MethodGet, "/todos"},
		{http.MethodPost, "/todos"},
		{http.MethodPut, "/todos/t-1"},
		{http.MethodDelete, "/todos/t-1"},
	} {
		rec := doJSON(t, h, tc.method, tc.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestProtectedRoute_InvalidToken(t *testing.T) {
	identity := &fakeIdentity{resolveErr: common.ErrInvalidToken}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodGet, "/todos", "garbage", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody[errorEnvelope](t, rec)
	if body.Type != "INVALID_TOKEN" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestProtectedRoute_DeletedUserGets401(t *testing.T) {
	// a valid token whose user no longer exists must read as an auth
	// failure at the edge, not as a 404
	identity := &fakeIdentity{resolveErr: common.ErrNotFound}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodGet, "/todos", "tok", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody[errorEnvelope](t, rec)
	if body.Type != "INVALID_TOKEN" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestGreet_OK(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1", Username: "alice"}}
	tasks := &fakeTasks{welcomeOut: "Welcome, alice"}
	h := newTestServer(identity, tasks).Handler()

	rec := doJSON(t, h, http.MethodGet, "/greet", "tok", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[map[string]string](t, rec)
	if body["message"] != "Welcome, alice" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if tasks.gotToken != "tok" {
		t.Fatalf("upstream saw token %q", tasks.gotToken)
	}
}

func TestListTasks_EmptyIsJSONArray(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1"}}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodGet, "/todos", "tok", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("want empty JSON array, got %q", got)
	}
}

func TestAddTask_OK(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1"}}
	tasks := &fakeTasks{addOut: &models.Task{ID: "t-1", Title: "buy milk"}}
	h := newTestServer(identity, tasks).Handler()

	rec := doJSON(t, h, http.MethodPost, "/todos", "tok", addTaskRequest{Title: "buy milk"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[models.Task](t, rec)
	if body.ID != "t-1" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCompleteTask_PathID(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1"}}
	tasks := &fakeTasks{completeOut: &models.Task{ID: "t-1", Completed: true}}
	h := newTestServer(identity, tasks).Handler()

	rec := doJSON(t, h, http.MethodPut, "/todos/t-1", "tok", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if tasks.gotID != "t-1" {
		t.Fatalf("upstream saw id %q", tasks.gotID)
	}
}

func TestCompleteTask_NotFound(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1"}}
	tasks := &fakeTasks{completeErr: common.ErrNotFound}
	h := newTestServer(identity, tasks).Handler()

	rec := doJSON(t, h, http.MethodPut, "/todos/t-ghost", "tok", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestRemoveTask_OK(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1"}}
	h := newTestServer(identity, &fakeTasks{}).Handler()

	rec := doJSON(t, h, http.MethodDelete, "/todos/t-1", "tok", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody[map[string]string](t, rec)
	if body["status"] != "OK" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestUpstreamInternalBecomes500(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1"}}
	tasks := &fakeTasks{listErr: common.ErrInternal}
	h := newTestServer(identity, tasks).Handler()

	rec := doJSON(t, h, http.MethodGet, "/todos", "tok", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	body := decodeBody[errorEnvelope](t, rec)
	if body.Message != common.ErrInternal.Error() {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

// ---- resolve cache wiring ----

func TestResolveCache_SecondRequestServedFromCache(t *testing.T) {
	identity := &fakeIdentity{resolveOut: &models.PublicUser{ID: "u-1", Username: "alice"}}
	tasks := &fakeTasks{welcomeOut: "Welcome, alice"}
	h := newTestServer(identity, tasks).Handler()

	for i := 0; i < 3; i++ {
		rec := doJSON(t, h, http.MethodGet, "/greet", "tok", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}

	if identity.resolveCalls != 1 {
		t.Fatalf("identity resolved %d times, want 1", identity.resolveCalls)
	}
}
