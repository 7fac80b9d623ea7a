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

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	httpapi "github.com/aussiebroadwan/doorman/internal/auth/http"
	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/doorman/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/doorman/pkg/cryptox"
	"github.com/aussiebroadwan/doorman/pkg/idx"
	"github.com/aussiebroadwan/doorman/pkg/jwtx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags -X.
var BuildVersion = "v0.1.0"

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db          store.Store
	credentials *service.CredentialHelper
	verifier    jwtx.Verifier

	// Services
	authService *service.AuthService
	userService *service.UserService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("auth service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase opens the configured store, applies migrations and makes
// sure the default role exists.
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.Open(ctx, app.cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)

	if err := app.ensureDefaultRole(ctx); err != nil {
		_ = db.Close()
		return err
	}
	return nil
}

func (app *Application) ensureDefaultRole(ctx context.Context) error {
	_, err := app.db.Roles().GetRoleByName(ctx, app.cfg.DefaultRole)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to look up default role: %w", err)
	}

	role := domain.Role{
		ID:        idx.New(),
		Name:      app.cfg.DefaultRole,
		CreatedAt: time.Now().UTC(),
	}
	if err := app.db.Roles().CreateRole(ctx, role); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Another instance seeded it first.
			return nil
		}
		return fmt.Errorf("failed to create default role: %w", err)
	}
	app.logger.Info("created default role", "role", role.Name, "role_id", role.ID.String())
	return nil
}

// initServices builds the credential helper and the business logic services
func (app *Application) initServices() error {
	secret := []byte(app.cfg.JWTSecret)
	if len(secret) == 0 {
		s, err := cryptox.GenerateSecret(cryptox.SecretSize256)
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = []byte(s)
		app.logger.Warn("AUTH_JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}

	creds, err := service.NewCredentialHelper(service.CredentialsConfig{
		BcryptCost: app.cfg.BcryptCost,
		Secret:     secret,
		TokenTTL:   app.cfg.TokenTTL,
		Issuer:     app.cfg.Issuer,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize credentials: %w", err)
	}
	app.credentials = creds
	app.verifier = jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{
		Issuer: app.cfg.Issuer,
		Leeway: 30 * time.Second,
	})

	app.authService = &service.AuthService{
		Store:       app.db,
		Credentials: creds,
		DefaultRole: app.cfg.DefaultRole,
	}
	app.userService = &service.UserService{Store: app.db}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.credentials.Signer(),
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSOrigins,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
