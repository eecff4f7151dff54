// Package server wires configuration, store clients, coordinators and
// transports into a runnable imagevault process.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"github.com/dmitrijs2005/imagevault/internal/server/catalog"
	"github.com/dmitrijs2005/imagevault/internal/server/config"
	"github.com/dmitrijs2005/imagevault/internal/server/httpapi"
	"github.com/dmitrijs2005/imagevault/internal/server/idgen"
	"github.com/dmitrijs2005/imagevault/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/imagevault/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	backends *backends
	api      *api.Server
	handler  *httpapi.Handler
}

// NewApp opens the configured backends and builds the transports over them.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	b, err := openBackends(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(b.catalog,
		catalog.WithPageSizes(c.DefaultPageSize, c.MaxPageSize),
		catalog.WithCursorSecret([]byte(c.CursorSecret)),
		catalog.WithLogger(logger),
	)
	if err != nil {
		_ = b.close()
		return nil, err
	}

	coords := services.NewCoordinators(cat, b.store, idgen.UUID{}, services.LimitsFromConfig(c), logger)
	srv := api.NewServer(coords)

	h := httpapi.New(srv, logger)
	if b.memory != nil {
		h.Mount("/objects/", b.memory)
	}

	return &App{config: c, logger: logger, backends: b, api: srv, handler: h}, nil
}

// Handler is the HTTP API, also served by the Lambda entry point.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Migrate prepares the catalog backend's schema.
func (app *App) Migrate(ctx context.Context) error {
	return app.backends.migrate(ctx)
}

func (app *App) Close() error {
	return app.backends.close()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) runHTTPServer(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.config.HTTPAddr,
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves HTTP and, when an address is configured, gRPC until a signal
// arrives, ctx is cancelled or either server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.runHTTPServer(ctx) })
	if app.config.GRPCAddr != "" {
		g.Go(func() error {
			return gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.api).Run(ctx)
		})
	}

	err := g.Wait()
	if cerr := app.Close(); err == nil {
		err = cerr
	}
	return err
}
