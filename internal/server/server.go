// Package server wires the chi router, global middleware and route
// handlers, and runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/churchconnect/edge/pkg/health"
	"github.com/churchconnect/edge/pkg/logger"
)

// Server is the HTTP front of the edge. It is immutable after New.
type Server struct {
	router        chi.Router
	logger        *slog.Logger
	errorHandler  ErrorHandler
	notFound      HandlerFunc
	health        *healthConfig
	metrics       http.Handler
	middlewares   []func(http.Handler) http.Handler
	handlers      []Handler
	startupHooks  []func(context.Context) error
	shutdownHooks []func(context.Context) error
	cfg           Config
}

// New builds the router from cfg and opts.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
		cfg:    cfg.withDefaults(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.errorHandler == nil {
		s.errorHandler = DefaultErrorHandler(s.logger)
	}

	s.setupRoutes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	// middleware must be registered before any route on a chi mux
	s.router.Use(s.middlewares...)

	r := &routerAdapter{router: s.router, onError: s.errorHandler}

	if s.notFound != nil {
		s.router.NotFound(r.adapt(s.notFound))
	}

	if s.health != nil {
		s.router.Get(s.health.livenessPath, health.LivenessHandler())
		s.router.Get(s.health.readinessPath, health.ReadinessHandler(s.health.checks, health.WithLogger(s.logger)))
	}

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics)
	}

	for _, h := range s.handlers {
		h.Routes(r)
	}
}

// Run listens on the configured address and serves until ctx is cancelled
// or the process receives SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. Serve takes ownership of ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    s.cfg.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	for _, hook := range s.startupHooks {
		if err := hook(ctx); err != nil {
			_ = ln.Close()
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer shutdownCancel()

	var errs []error

	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	for _, hook := range s.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			s.logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		s.logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	s.logger.Info("shutdown completed")
	return nil
}
