package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// TimeoutConfig configures the timeout middleware.
type TimeoutConfig struct {
	Logger    *slog.Logger
	Responder ErrorResponder
	Timeout   time.Duration
}

// TimeoutOption configures TimeoutConfig.
type TimeoutOption func(*TimeoutConfig)

// WithTimeoutLogger logs exceeded deadlines at warn level.
func WithTimeoutLogger(l *slog.Logger) TimeoutOption {
	return func(cfg *TimeoutConfig) {
		cfg.Logger = l
	}
}

// WithTimeoutResponder overrides how the 504 response is written.
func WithTimeoutResponder(fn ErrorResponder) TimeoutOption {
	return func(cfg *TimeoutConfig) {
		if fn != nil {
			cfg.Responder = fn
		}
	}
}

// Timeout returns middleware that bounds the request context by timeout.
//
// The handler runs on the calling goroutine, so it must honour ctx.Done()
// to stop early. When the deadline has passed and the handler returned
// without writing anything, a TimeoutError response is written.
func Timeout(timeout time.Duration, opts ...TimeoutOption) func(http.Handler) http.Handler {
	cfg := &TimeoutConfig{
		Timeout:   timeout,
		Responder: DefaultErrorResponder,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), cfg.Timeout)
			defer cancel()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}
			if cfg.Logger != nil {
				cfg.Logger.WarnContext(ctx, "request timeout", slog.String("timeout", cfg.Timeout.String()))
			}
			if !rw.Written() {
				cfg.Responder(rw, r, &TimeoutError{Duration: cfg.Timeout})
			}
		})
	}
}
