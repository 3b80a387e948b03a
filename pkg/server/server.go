// Package server provides the small HTTP sidecar served beside an
// interactive menu session, exposing metrics and health endpoints.
// It never invokes menu items; the interactive loop is the only driver
// of menu behavior.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/gomenu/pkg/logger"
)

const (
	// DefaultPort is the default sidecar port.
	DefaultPort = 9876

	// DefaultReadTimeout bounds reading an entire request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds writing a response; set higher than the
	// read timeout to account for handler execution time.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout bounds keep-alive waits for the next request.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown once the menu
	// session ends.
	DefaultShutdownTimeout = 5 * time.Second
)

// Server is an HTTP sidecar with graceful shutdown via context cancellation.
type Server interface {
	// Serve starts the sidecar and blocks until the context is canceled.
	// Returns nil on successful graceful shutdown.
	Serve(ctx context.Context) error

	// IsRunning reports whether the sidecar is accepting connections.
	// True only after the socket has been bound. Safe for concurrent use.
	IsRunning() bool
}

type server struct {
	mux             *http.ServeMux
	port            int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration

	mu      sync.RWMutex
	running bool
}

// Option is a functional option for configuring the Server.
type Option func(*server)

// WithPort sets the port to listen on. If not specified, DefaultPort is used.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

// WithReadTimeout sets the maximum duration for reading a request.
func WithReadTimeout(d time.Duration) Option {
	return func(s *server) { s.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration for writing a response.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *server) { s.writeTimeout = d }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *server) { s.idleTimeout = d }
}

// WithShutdownTimeout sets the grace period for shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithHandler registers an HTTP handler for the given pattern.
// Repeat the option to register multiple handlers.
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) { s.mux.Handle(pattern, handler) }
}

// WithSimpleHealth adds a /healthz endpoint that always returns 200 OK.
func WithSimpleHealth() Option {
	return func(s *server) {
		s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	}
}

// New creates a sidecar server with the provided options.
func New(opts ...Option) Server {
	s := &server{
		port:            DefaultPort,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		mux:             http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsRunning reports whether the sidecar is currently accepting connections.
func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

// Serve starts the sidecar and blocks until the context is canceled or an
// error occurs. One goroutine runs the HTTP server, another waits for
// cancellation and performs a graceful shutdown within the grace period.
// http.ErrServerClosed is expected during shutdown and not treated as an
// error.
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.mux,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.idleTimeout,
		ErrorLog:     logger.NewLogLogger(slog.LevelError, false),
	}

	// Bind first so running=true is only set once the socket exists.
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	slog.Info("starting sidecar", "addr", srv.Addr)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.mu.Lock()
		s.running = true
		s.mu.Unlock()

		defer func() {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
		}()

		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("sidecar error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Info("shutting down sidecar", "grace_period", s.shutdownTimeout)

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("sidecar shutdown error", "error", err)
		}

		return nil
	})

	return g.Wait()
}
