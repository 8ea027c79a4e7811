// Package server wires configuration, storage, services and both network
// APIs into a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/passkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passkeeper/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/passkeeper/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        repomanager.RepositoryManager
	authService  *services.AuthService
	vaultService *services.VaultService
	registry     *prometheus.Registry
	metrics      *metrics.Metrics
}

// NewApp opens storage and builds the services. Logs go to logOut.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewLogger(c.LogLevel, logOut)

	repos, err := repomanager.New(ctx, c, logger.With("module", "storage"))
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	authService, err := services.NewAuthService(
		repos.Users(),
		auth.NewBcryptHasher(c.BcryptCost),
		auth.NewTokenIssuer(c.SecretKey, c.TokenValidityDuration),
	)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		config:       c,
		logger:       logger,
		repos:        repos,
		authService:  authService,
		vaultService: services.NewVaultService(repos.Entries()),
		registry:     reg,
		metrics:      metrics.New(reg),
	}, nil
}

func (app *App) newHTTPServer() *http.Server {
	router := httpapi.NewRouter(httpapi.Options{
		Auth:     app.authService,
		Vault:    app.vaultService,
		Logger:   app.logger.With("module", "http_server"),
		Metrics:  app.metrics,
		Gatherer: app.registry,
		Ready:    app.repos.Ping,
		Debug:    logging.ParseLevel(app.config.LogLevel) == slog.LevelDebug,
	})
	return &http.Server{
		Addr:              app.config.EndpointAddrHTTP,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (app *App) runHTTPServer(ctx context.Context, srv *http.Server) error {
	lis, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	app.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves both APIs until SIGINT/SIGTERM/SIGQUIT, ctx cancellation, or
// the first server failure, then shuts everything down and closes storage.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageDriver)

	httpSrv := app.newHTTPServer()
	grpcSrv := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.vaultService,
		gs.WithMetrics(app.metrics),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.runHTTPServer(gctx, httpSrv)
	})
	g.Go(func() error {
		return grpcSrv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	if cerr := app.repos.Close(); cerr != nil {
		app.logger.Error(ctx, "closing storage", "err", cerr)
	}
	app.logger.Info(ctx, "App stopped")

	return err
}
