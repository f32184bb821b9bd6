package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/churchconnect/edge/pkg/hostrouter"
	"github.com/churchconnect/edge/pkg/tenant"
)

// TenantRouter makes the per-request routing decision.
type TenantRouter interface {
	Route(ctx context.Context, host, path string) tenant.Decision
}

// DecisionObserver is notified of every routing decision.
type DecisionObserver interface {
	ObserveDecision(action, reason string)
}

// TenancyConfig configures the tenancy middleware.
type TenancyConfig struct {
	Logger         *slog.Logger
	Observer       DecisionObserver
	Exclusions     tenant.Exclusions
	RedirectStatus int
}

// TenancyOption configures TenancyConfig.
type TenancyOption func(*TenancyConfig)

// WithTenancyLogger sets the logger used for redirects and lookup failures.
func WithTenancyLogger(l *slog.Logger) TenancyOption {
	return func(cfg *TenancyConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithExclusions replaces the default excluded paths.
func WithExclusions(e tenant.Exclusions) TenancyOption {
	return func(cfg *TenancyConfig) {
		cfg.Exclusions = e
	}
}

// WithDecisionObserver records every decision, e.g. as metrics.
func WithDecisionObserver(o DecisionObserver) TenancyOption {
	return func(cfg *TenancyConfig) {
		cfg.Observer = o
	}
}

// WithRedirectStatus overrides the redirect status code.
// Only 3xx codes are accepted.
func WithRedirectStatus(code int) TenancyOption {
	return func(cfg *TenancyConfig) {
		if code >= 300 && code < 400 {
			cfg.RedirectStatus = code
		}
	}
}

// Tenancy returns middleware that applies the tenant routing decision.
//
// Excluded paths skip resolution entirely. A pass-through decision serves
// the request unchanged. A rewrite decision serves the tenant-scoped path
// with the tenant stored in the request context, leaving the client-visible
// URL untouched. A redirect decision answers with 307 to the canonical
// main-site URL.
func Tenancy(router TenantRouter, opts ...TenancyOption) func(http.Handler) http.Handler {
	cfg := &TenancyConfig{
		Exclusions:     tenant.DefaultExclusions(),
		RedirectStatus: http.StatusTemporaryRedirect,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Exclusions.Match(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			d := router.Route(r.Context(), r.Host, r.URL.Path)
			if cfg.Observer != nil {
				cfg.Observer.ObserveDecision(d.Action.String(), string(d.Reason))
			}

			switch d.Action {
			case tenant.ActionRewrite:
				next.ServeHTTP(w, rewrite(r, d))

			case tenant.ActionRedirect:
				if cfg.Logger != nil {
					attrs := []any{
						slog.String("host", hostrouter.GetDomain(r)),
						slog.String("slug", d.Slug),
						slog.String("reason", string(d.Reason)),
					}
					if d.Reason == tenant.ReasonLookupFailed {
						cfg.Logger.WarnContext(r.Context(), "tenant lookup failed, redirecting to main domain",
							append(attrs, slog.Any("error", d.Err))...)
					} else {
						cfg.Logger.DebugContext(r.Context(), "unknown tenant, redirecting to main domain", attrs...)
					}
				}
				http.Redirect(w, r, d.URL, cfg.RedirectStatus)

			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// rewrite clones r with the tenant-scoped path and the tenant in context.
func rewrite(r *http.Request, d tenant.Decision) *http.Request {
	r2 := r.Clone(tenant.WithContext(r.Context(), d.Tenant))
	r2.URL.Path = d.Path
	r2.URL.RawPath = ""
	r2.RequestURI = r2.URL.RequestURI()
	return r2
}
