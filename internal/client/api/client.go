// Package api is the CLI's HTTP client for the gateway.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/common"
)

// User mirrors the gateway's user wire shape.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

// Task mirrors the gateway's task wire shape.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Client is a thin wrapper over the gateway's REST surface. It keeps the
// bearer token from the last successful signup/login and sends it on
// authenticated calls.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient builds a Client against the given gateway base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the currently stored bearer token, "" when logged out.
func (c *Client) Token() string { return c.token }

// Logout drops the stored token.
func (c *Client) Logout() { c.token = "" }

type userBody struct {
	User *User `json:"user"`
}

// apiError is a decoded gateway error response.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

// decodeError turns a non-2xx gateway response into an error. Both wire
// shapes are handled: the field errors map and the generic envelope.
func decodeError(status int, body []byte) error {
	var fields struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &fields); err == nil && len(fields.Errors) > 0 {
		parts := make([]string, 0, len(fields.Errors))
		for field, msg := range fields.Errors {
			parts = append(parts, field+" "+msg)
		}
		sort.Strings(parts)
		return &apiError{status: status, message: strings.Join(parts, ", ")}
	}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &apiError{status: status, message: envelope.Message}
	}

	return &apiError{status: status, message: fmt.Sprintf("gateway returned status %d", status)}
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var buf io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", common.BearerScheme+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if respBody != nil {
		return json.Unmarshal(data, respBody)
	}
	return nil
}

// Signup registers a new account and stores the returned token.
func (c *Client) Signup(ctx context.Context, username, password, email string) (*User, error) {
	var out userBody
	err := c.do(ctx, http.MethodPost, "/api/signup", map[string]string{
		"username": username, "password": password, "email": email,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.User.Token
	return out.User, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out userBody
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.token = out.User.Token
	return out.User, nil
}

// Me fetches the current profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out userBody
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Greet fetches the welcome message.
func (c *Client) Greet(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/greet", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListTasks fetches the caller's tasks.
func (c *Client) ListTasks(ctx context.Context) ([]*Task, error) {
	var out []*Task
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddTask creates a task.
func (c *Client) AddTask(ctx context.Context, title, description string) (*Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPost, "/todos", map[string]string{
		"title": title, "description": description,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteTask marks a task as done.
func (c *Client) CompleteTask(ctx context.Context, id string) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPut, "/todos/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveTask deletes a task.
func (c *Client) RemoveTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+id, nil, nil)
}
