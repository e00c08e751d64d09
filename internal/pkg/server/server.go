package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/triptrack/internal/pkg/logger"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown.
// An empty host listens on every interface.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT or SIGTERM is received, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down within the configured timeout
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down HTTP server", logger.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager closes registered components in registration order
type ShutdownManager struct {
	logger     *logger.ZapLogger
	components []component
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	if fn == nil {
		return
	}
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown runs every registered cleanup function, continuing past failures,
// and returns the joined errors
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.components)))

	var errs []error
	for _, c := range sm.components {
		sm.logger.Info("Closing component", logger.String("component", c.name))
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
