package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/bartab-teams/internal/teams/http"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/service"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store/drivers/sqlstore"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/telemetry"
	"github.com/aussiebroadwan/bartab-teams/pkg/jwtx"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	serviceName = "teams-service"
)

// Application wires the teams service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       *sqlstore.Store
	verifier *jwtx.HS256
	metrics  *metrics.Metrics

	shutdownTracing func(context.Context) error

	userService       *service.UserService
	membershipService *service.MembershipService
	inviteService     *service.InviteService
	statsCollector    *service.StatsCollector

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application with all dependencies initialized.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	verifier, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.verifier = verifier

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initTelemetry(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.statsCollector.Start()

	app.logger.Info("teams service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", string(app.db.Dialect()),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains HTTP requests, stops background work, flushes spans and
// closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down teams service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.statsCollector.Stop()

	if err := app.shutdownTracing(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("teams service stopped")
	return nil
}

// Handler exposes the router, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initDatabase(ctx context.Context) error {
	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := sqlstore.Open(openCtx, app.cfg.Dialect(), app.cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "dialect", string(db.Dialect()))
	return nil
}

func (app *Application) initTelemetry(ctx context.Context) error {
	shutdown, err := telemetry.Setup(ctx, serviceName, BuildVersion, app.cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.shutdownTracing = shutdown
	if app.cfg.OTLPEndpoint != "" {
		app.logger.Info("tracing enabled", "endpoint", app.cfg.OTLPEndpoint)
	}

	if app.cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics = metrics.New(reg)
	}
	return nil
}

func (app *Application) initServices() {
	app.userService = &service.UserService{
		Store:   app.db,
		Metrics: app.metrics,
	}
	app.membershipService = &service.MembershipService{
		Store:   app.db,
		Metrics: app.metrics,
	}
	app.inviteService = &service.InviteService{
		Store:   app.db,
		Metrics: app.metrics,
		BaseURL: app.cfg.InviteBaseURL,
	}
	app.statsCollector = service.NewStatsCollector(
		app.db,
		app.metrics,
		app.logger,
		app.cfg.StatsInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.UserService = app.userService
	router.MembershipService = app.membershipService
	router.InviteService = app.inviteService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
