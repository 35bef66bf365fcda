package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	httpapi "github.com/aussiebroadwan/artistportal/internal/portal/http"
	"github.com/aussiebroadwan/artistportal/internal/portal/observability"
	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/internal/portal/store/drivers/sqlite"
	"github.com/aussiebroadwan/artistportal/pkg/cryptox"
	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application encapsulates the portal with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         *sqlite.Store
	keyManager *jwtx.KeyManager
	metrics    *observability.Metrics

	// Services
	authService    *service.AuthService
	sessionService *service.SessionService
	profileService *service.ProfileService
	catalogService *service.CatalogService
	seedService    *service.SeedService
	pruner         *service.RevocationPruner

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "artist-portal",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application instance with all dependencies initialized.
// The database is migrated and, when enabled, seeded before New returns.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg:     cfg,
		logger:  NewLogger(cfg),
		metrics: observability.NewMetrics(),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	db, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("database migrations applied successfully", "database", cfg.DatabaseFile)

	keyManager, err := InitSessionKeys(app.cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices()

	if cfg.SeedUsers {
		if _, err := app.seedService.Seed(ctx, domain.DefaultSeedUsers()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to seed users: %w", err)
		}
	}

	app.initHTTP()

	return app, nil
}

// OpenStore opens the configured database and applies migrations.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return db, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run serves HTTP and prunes expired revocations until ctx is cancelled or
// the server fails, then shuts down gracefully.
func (app *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		_ = app.close()
		return fmt.Errorf("failed to listen: %w", err)
	}
	app.logger.Info("artist portal starting", "addr", ln.Addr().String(), "version", BuildVersion)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := app.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return app.pruner.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			app.logger.Info("shutdown requested", "reason", context.Cause(ctx))
		}
		return app.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully shuts down a running application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down artist portal...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.close(); err != nil {
		return err
	}

	app.logger.Info("artist portal stopped")
	return nil
}

func (app *Application) close() error {
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db}
	app.sessionService = &service.SessionService{
		KeyManager: app.keyManager,
		Store:      app.db,
		Issuer:     app.cfg.Issuer,
		TTL:        app.cfg.SessionTTL,
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.catalogService = service.NewCatalogService()
	app.seedService = &service.SeedService{Store: app.db, Logger: app.logger}

	app.pruner = &service.RevocationPruner{
		Store:    app.db,
		Logger:   app.logger,
		Interval: app.cfg.HousekeepingInterval,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
		app.metrics,
	)

	router.Cookie = httpx.SessionCookie{Name: httpapi.SessionCookieName, Secure: app.cfg.CookieSecure}
	router.StaticDir = app.cfg.StaticDir

	// Wire services to router
	router.AuthService = app.authService
	router.SessionService = app.sessionService
	router.ProfileService = app.profileService
	router.CatalogService = app.catalogService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
