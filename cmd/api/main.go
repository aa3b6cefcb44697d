// The api command wires the whole service together: config, loggers,
// the application container, routes, and the HTTP listener, then runs
// until a shutdown signal arrives.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/logger"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/router"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

// run contains the startup logic and returns an error instead of
// exiting, so main stays a one-liner and everything is testable.
func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(middlewares, handlers)
	s.SetupHTTPServer(e)

	// Start serving in the background; the main goroutine waits for a
	// shutdown signal.
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info().Msg("server stopped")

	return nil
}
