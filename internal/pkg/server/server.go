package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adhiwira/kapten/internal/pkg/logger"
)

// defaultDrainTimeout bounds how long in-flight captain sessions get to
// finish before the listener is torn down.
const defaultDrainTimeout = 30 * time.Second

// GracefulServer runs the captain session server and drains it on
// SIGINT/SIGTERM.
type GracefulServer struct {
	echo         *echo.Echo
	logger       *logger.ZapLogger
	port         int
	drainTimeout time.Duration
}

// NewGracefulServer creates a server that shuts down cleanly on signals
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:         e,
		logger:       zapLogger,
		port:         port,
		drainTimeout: defaultDrainTimeout,
	}
}

// WithDrainTimeout overrides how long shutdown waits for open sessions
func (s *GracefulServer) WithDrainTimeout(d time.Duration) *GracefulServer {
	s.drainTimeout = d
	return s
}

// Start serves until an interrupt or termination signal arrives, then
// drains the listener
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Captain session server listening", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the server within the configured timeout
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Draining captain sessions",
		logger.Duration("timeout", s.drainTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager closes infrastructure clients after the listener drains
type ShutdownManager struct {
	logger   *logger.ZapLogger
	cleanups []cleanup
}

type cleanup struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates an empty shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named cleanup to run during shutdown, in registration
// order
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.cleanups = append(sm.cleanups, cleanup{name: name, fn: fn})
}

// Shutdown runs every registered cleanup. A failing cleanup is logged and
// does not stop the rest.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Closing infrastructure clients",
		logger.Int("count", len(sm.cleanups)))

	for _, c := range sm.cleanups {
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Cleanup failed",
				logger.String("component", c.name),
				logger.Err(err))
		}
	}

	sm.logger.Info("All infrastructure clients closed")
	return nil
}
