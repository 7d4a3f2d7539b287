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
	"github.com/piresc/wellnest/internal/pkg/logger"
)

// GracefulServer wraps an HTTP server with graceful shutdown capabilities
type GracefulServer struct {
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	start           func(addr string) error
	shutdown        func(ctx context.Context) error
}

// NewGracefulServer creates a graceful wrapper around an echo router
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		logger:          zapLogger,
		addr:            fmt.Sprintf(":%d", port),
		shutdownTimeout: 30 * time.Second,
		start:           e.Start,
		shutdown:        e.Shutdown,
	}
}

// NewGracefulHTTPServer creates a graceful wrapper around a plain http.Server (used for gin)
func NewGracefulHTTPServer(srv *http.Server, zapLogger *logger.ZapLogger) *GracefulServer {
	return &GracefulServer{
		logger:          zapLogger,
		addr:            srv.Addr,
		shutdownTimeout: 30 * time.Second,
		start: func(addr string) error {
			srv.Addr = addr
			return srv.ListenAndServe()
		},
		shutdown: srv.Shutdown,
	}
}

// WithShutdownTimeout overrides the default 30s drain window
func (s *GracefulServer) WithShutdownTimeout(d time.Duration) *GracefulServer {
	if d > 0 {
		s.shutdownTimeout = d
	}
	return s
}

// Start serves until SIGINT/SIGTERM and then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down. A listen failure is returned immediately.
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("Failed to start server", logger.Err(err))
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanup functions in reverse registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []namedShutdown
}

type namedShutdown struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.functions = append(sm.functions, namedShutdown{name: name, fn: fn})
}

// Shutdown executes all registered cleanup functions, continuing past failures.
// It returns the joined errors.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	var errs []error
	for i := len(sm.functions) - 1; i >= 0; i-- {
		component := sm.functions[i]
		if err := component.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", component.name),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", component.name, err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
