package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

// GracefulServer serves an echo or gin handler and shuts it down cleanly on SIGINT/SIGTERM
type GracefulServer struct {
	server   *http.Server
	timeout  time.Duration
	shutdown *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(handler http.Handler, config models.ServerConfig, shutdown *ShutdownManager) *GracefulServer {
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if shutdown == nil {
		shutdown = NewShutdownManager()
	}

	return &GracefulServer{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler:      handler,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
		},
		timeout:  timeout,
		shutdown: shutdown,
	}
}

// Start blocks until the process receives a shutdown signal
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled, then shuts down
func (s *GracefulServer) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", listener.Addr().String()))
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and then runs registered cleanup
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}
	s.shutdown.Shutdown(ctx)

	logger.Info("Server shutdown completed")
	return err
}

// ShutdownManager collects cleanup functions run after the HTTP server stops
type ShutdownManager struct {
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	if fn == nil {
		return
	}
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes registered cleanup functions in registration order and
// returns the number that failed
func (sm *ShutdownManager) Shutdown(ctx context.Context) int {
	failed := 0
	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			failed++
			logger.Error("Error during component shutdown", logger.Int("component", i), logger.Err(err))
		}
	}
	return failed
}
