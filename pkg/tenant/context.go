package tenant

import (
	"context"
	"log/slog"

	"github.com/churchconnect/edge/pkg/logger"
)

type contextKey struct{}

// WithContext stores the resolved tenant in ctx.
func WithContext(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the tenant stored by WithContext, or nil.
func FromContext(ctx context.Context) *Tenant {
	t, _ := ctx.Value(contextKey{}).(*Tenant)
	return t
}

// SlugExtractor returns a ContextExtractor that adds "tenant" to log entries
// of tenant-scoped requests.
func SlugExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if t := FromContext(ctx); t != nil {
			return slog.String("tenant", t.Slug), true
		}
		return slog.Attr{}, false
	}
}
