// Package server exposes the transpiler over HTTP: a derender endpoint
// for one-shot conversion and a WebSocket for live conversion, with
// Prometheus metrics and OpenTelemetry tracing on the request path.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Config configures the transpile server.
type Config struct {
	// Addr is the listen address (default ":8000").
	Addr string

	// Logger is the structured logger (default slog.Default()).
	Logger *slog.Logger

	// MaxBodyBytes limits request body size (default 1 MiB).
	MaxBodyBytes int64

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// Registry is the Prometheus registry to use. A private registry
	// is created when nil.
	Registry *prometheus.Registry

	// CheckOrigin controls WebSocket origin checks. All origins are
	// allowed when nil; the live socket is a development tool.
	CheckOrigin func(r *http.Request) bool
}

// Server is the HTTP/WebSocket front end for the transpiler.
type Server struct {
	config   Config
	logger   *slog.Logger
	router   chi.Router
	metrics  *metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader

	httpServer *http.Server
}

// New creates a Server with the given configuration.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8000"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.MaxBodyBytes == 0 {
		config.MaxBodyBytes = 1 << 20
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	if config.CheckOrigin == nil {
		config.CheckOrigin = func(*http.Request) bool { return true }
	}

	s := &Server{
		config:  config,
		logger:  config.Logger,
		metrics: newMetrics(config.Registry),
		tracer:  otel.Tracer("golia"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     config.CheckOrigin,
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.withMetrics)
	r.Use(s.withTracing)

	r.Post("/derender", s.handleDerender)
	r.Get("/ws", s.handleSocket)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))

	return r
}

// Handler returns the server's HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server and blocks until SIGINT/SIGTERM or
// a listener error, then shuts down gracefully.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.config.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Shutdown stops the server without waiting for a signal.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
