// Package cli implements the interactive sportactive REPL: session commands
// (login, register, logout, profile), activity browsing and management,
// enrollment, orders, and comments.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/akarpovs/sportactive/internal/client/api"
	"github.com/akarpovs/sportactive/internal/client/config"
	"github.com/akarpovs/sportactive/internal/client/localdb"
	"github.com/akarpovs/sportactive/internal/client/repositories/activities"
	"github.com/akarpovs/sportactive/internal/client/services"
	"github.com/akarpovs/sportactive/internal/client/session"
	"github.com/akarpovs/sportactive/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config *config.Config
	logger logging.Logger

	api           api.Client
	store         *session.Store
	activities    *services.ActivityService
	registrations *services.RegistrationService
	orders        *services.OrderService
	comments      *services.CommentService

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
	Mode   Mode
}

// NewApp builds the full object graph: local DB, HTTP client, session store,
// and services. The store is both the client's token source and its 401
// handler, so durable storage and in-memory state always move together.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	httpClient := api.NewHTTPClient(cfg.ServerBaseURL, logger, api.WithTimeout(cfg.RequestTimeout))
	store := session.NewStore(httpClient, db, logger)
	httpClient.SetTokenSource(store)
	httpClient.SetOnUnauthorized(store.Invalidate)

	cache := activities.NewSQLiteRepository(db)

	return &App{
		config:        cfg,
		logger:        logger,
		api:           httpClient,
		store:         store,
		activities:    services.NewActivityService(httpClient, cache, logger),
		registrations: services.NewRegistrationService(httpClient),
		orders:        services.NewOrderService(httpClient),
		comments:      services.NewCommentService(httpClient),
		db:            db,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		Mode:          ModeOnline,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.store.Restore(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) Close() {
	if err := a.api.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to close api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to close client db", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Authenticated
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher periodically probes the server and flips the
// online/offline mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
