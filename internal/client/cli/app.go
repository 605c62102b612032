// Package cli implements the interactive taskmesh client.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/taskmesh/internal/client/api"
	"github.com/dmitrijs2005/taskmesh/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	client := api.NewClient(c.GatewayEndpointAddr, c.RequestTimeout)
	return &App{config: c, client: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.Token() != ""
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	printlnFn("Logged out")
	return nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("taskmesh CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "anonymous"
}
