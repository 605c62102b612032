package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestSignup_StoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/signup" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"_id":"u-1","username":"alice","email":"a@example.com","token":"tok"}}`))
	})

	user, err := c.Signup(context.Background(), "alice", "secret1", "a@example.com")
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if user.ID != "u-1" || c.Token() != "tok" {
		t.Fatalf("unexpected user %+v token %q", user, c.Token())
	}
}

func TestLogin_SendsCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"_id":"u-1","token":"tok2"}}`))
	})

	if _, err := c.Login(context.Background(), "a@example.com", "secret1"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if c.Token() != "tok2" {
		t.Fatalf("token %q", c.Token())
	}
}

func TestAuthenticatedCall_SendsBearer(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	c.token = "tok"

	if _, err := c.ListTasks(context.Background()); err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("Authorization header %q", gotAuth)
	}
}

func TestDecodeError_FieldMap(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":{"password":"must be at least 6 characters"}}`))
	})

	_, err := c.Signup(context.Background(), "alice", "x", "a@example.com")
	if err == nil || err.Error() != "password must be at least 6 characters" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeError_Envelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"name":"UnAuthorizedError","message":"missing token","code":401,"type":"NO_TOKEN"}`))
	})

	_, err := c.Me(context.Background())
	if err == nil || err.Error() != "missing token" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeError_Garbage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := c.Greet(context.Background())
	if err == nil || err.Error() != "gateway returned status 502" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRemoveTask_NoBodyExpected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/todos/t-1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})
	c.token = "tok"

	if err := c.RemoveTask(context.Background(), "t-1"); err != nil {
		t.Fatalf("RemoveTask error: %v", err)
	}
}
