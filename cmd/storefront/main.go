// Command storefront runs the storefront HTTP API.
//
// @title        Storefront API
// @version      1.0
// @description  Session-based storefront: accounts, product catalog and checkout.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/storefront-system/internal/api"
	"github.com/99minutos/storefront-system/internal/api/handler"
	"github.com/99minutos/storefront-system/internal/app"
	"github.com/99minutos/storefront-system/internal/core/service"
	"github.com/99minutos/storefront-system/internal/infrastructure/http/handlers"
	"github.com/99minutos/storefront-system/internal/pkg/config"
	"github.com/99minutos/storefront-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("application terminated with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	storage, err := app.OpenStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer storage.Close()

	sessions, err := app.OpenSessions(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer sessions.Close()

	services := app.NewServices(storage, log)
	sessionService := service.NewSessionService(sessions.Store, cfg.Session.Secret, cfg.Session.TTL)

	if cfg.Admin.Username != "" {
		if err := services.Auth.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		log.Info().Str("username", cfg.Admin.Username).Msg("admin account ready")
	}

	router := api.NewRouter(api.Dependencies{
		Auth:      services.Auth,
		Sessions:  sessionService,
		Catalog:   services.Catalog,
		Checkout:  services.Checkout,
		Cookie:    handler.CookieConfig{Secure: cfg.Session.CookieSecure, TTL: sessionService.TTL()},
		Health:    []handlers.Dependency{storage.Health, sessions.Health},
		StaticDir: cfg.StaticDir,
		Log:       logger.Component(log, "http"),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().
			Str("addr", server.Addr).
			Str("store", cfg.Store.Backend).
			Str("sessions", cfg.Session.Backend).
			Msg("starting storefront server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown on signal or when the server goroutine fails.
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		log.Info().Msg("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
