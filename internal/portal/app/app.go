// Package app assembles the portal: config, storage, services, transports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/psicoconecta/portal/internal/portal/chat"
	httpapi "github.com/psicoconecta/portal/internal/portal/http"
	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/internal/portal/store/drivers/sqlite"
	"github.com/psicoconecta/portal/internal/portal/ws"
	"github.com/psicoconecta/portal/pkg/jwtx"
	"github.com/psicoconecta/portal/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	registry chat.Registry

	sessionService     *service.SessionService
	chatTokenService   *service.ChatTokenService
	chatService        *service.ChatService
	userService        *service.UserService
	appointmentService *service.AppointmentService
	testimonialService *service.TestimonialService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.registry = chat.NewMemoryRegistry()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("portal starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portal stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:  app.db,
		Signer: jwtx.NewSignerHS256([]byte(app.cfg.SessionSecret)),
		Issuer: app.cfg.SessionIssuer,
		TTL:    jwtx.DefaultSessionTokenTTL,
	}

	app.chatTokenService = &service.ChatTokenService{
		Store:    app.db,
		Signer:   jwtx.NewSignerHS256([]byte(app.cfg.ChatSecret)),
		Verifier: jwtx.NewVerifierHS256([]byte(app.cfg.ChatSecret), app.cfg.ChatIssuer),
		Issuer:   app.cfg.ChatIssuer,
		TTL:      jwtx.DefaultChatTokenTTL,
	}

	app.chatService = &service.ChatService{
		Store:    app.db,
		Registry: app.registry,
	}

	app.userService = &service.UserService{Store: app.db}
	app.appointmentService = &service.AppointmentService{Store: app.db}
	app.testimonialService = &service.TestimonialService{Store: app.db}
}

func (app *Application) initHTTP() {
	sessionVerifier := jwtx.NewVerifierHS256([]byte(app.cfg.SessionSecret), app.cfg.SessionIssuer)

	router := httpapi.NewRouter(sessionVerifier, BuildVersion, app.db, app.logger)
	router.SessionService = app.sessionService
	router.ChatTokenService = app.chatTokenService
	router.ChatService = app.chatService
	router.UserService = app.userService
	router.AppointmentService = app.appointmentService
	router.TestimonialService = app.testimonialService
	router.WSHandler = ws.NewHandler(app.chatTokenService, app.chatService, app.registry)
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
