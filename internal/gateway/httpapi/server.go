// Package httpapi is the gateway's public HTTP surface: it gates requests,
// resolves bearer tokens through the cache, forwards to the backing nodes,
// and translates taxonomy errors into HTTP shapes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskmesh/internal/gateway/identityclient"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/resolvecache"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/taskclient"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
)

type Server struct {
	address  string
	logger   logging.Logger
	identity identityclient.Client
	tasks    taskclient.Client
	cache    *resolvecache.Cache
}

func NewServer(address string, l logging.Logger, identity identityclient.Client, tasks taskclient.Client, cacheTTL time.Duration) *Server {
	s := &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		identity: identity,
		tasks:    tasks,
	}
	s.cache = resolvecache.New(cacheTTL, identity.ResolveToken)
	return s
}

// Handler builds the route table.
//
// /api/signup and /api/login are public. /api/user only soft-gates at the
// route so that a missing token reaches the handler, which then rejects it
// itself. Everything under /greet and /todos is hard-gated.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("GET /api/user", s.attachAuth(s.handleUser))

	mux.HandleFunc("GET /greet", s.requireAuth(s.handleGreet))
	mux.HandleFunc("GET /todos", s.requireAuth(s.handleListTasks))
	mux.HandleFunc("POST /todos", s.requireAuth(s.handleAddTask))
	mux.HandleFunc("PUT /todos/{id}", s.requireAuth(s.handleCompleteTask))
	mux.HandleFunc("DELETE /todos/{id}", s.requireAuth(s.handleRemoveTask))

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
