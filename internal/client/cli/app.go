// Package cli implements the interactive ordertrack client: a small REPL
// over the server's HTTP API with online/offline awareness.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/client/api"
	"github.com/dmitrijs2005/ordertrack/internal/client/config"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// apiClient is the command surface the CLI needs from the HTTP client.
// The real api.Client satisfies it; tests can provide a stub.
type apiClient interface {
	IsAuthenticated() bool
	Logout()
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, userName string, password []byte) error
	CreateOrder(ctx context.Context, productName string, quantity int32, price float64) (*api.Order, error)
	ListOrders(ctx context.Context) ([]api.Order, error)
	UpdateOrder(ctx context.Context, id string, patch *api.OrderPatch) (*api.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type App struct {
	config   *config.Config
	client   apiClient
	userName string
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	client := api.NewClient(c.ServerEndpointAddr, c.RequestTimeout)
	return &App{config: c, client: client, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.client.IsAuthenticated()
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
