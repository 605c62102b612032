// Package gateway initializes and runs the edge gateway: the public HTTP
// surface backed by the identity and tasks nodes over gRPC.
package gateway

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/taskmesh/internal/gateway/config"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/httpapi"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/identityclient"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/taskclient"
	"github.com/dmitrijs2005/taskmesh/internal/logging"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	identity identityclient.Client
	tasks    taskclient.Client
	server   *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger().With("node", "gateway")

	identity, err := identityclient.NewGRPCClient(c.IdentityEndpoint)
	if err != nil {
		return nil, fmt.Errorf("identity client init error: %w", err)
	}

	tasks, err := taskclient.NewGRPCClient(c.TasksEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tasks client init error: %w", err)
	}

	server := httpapi.NewServer(c.EndpointAddrHTTP, logger, identity, tasks, c.ResolveCacheTTL)

	return &App{config: c, logger: logger, identity: identity, tasks: tasks, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run() {

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	app.logger.Info(ctx, "Starting gateway node...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.identity.Close(); err != nil {
		app.logger.Error(ctx, "closing identity client", "error", err)
	}
	if err := app.tasks.Close(); err != nil {
		app.logger.Error(ctx, "closing tasks client", "error", err)
	}
}
