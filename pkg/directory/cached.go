package directory

import (
	"context"
	"time"

	"github.com/churchconnect/edge/pkg/cache"
	"github.com/churchconnect/edge/pkg/tenant"
)

// Cached is a read-through cache in front of another directory.
// Only active tenants are cached; misses and errors always reach next.
type Cached struct {
	next   tenant.Directory
	loader *cache.Loader[tenant.Tenant]
	ttl    time.Duration
}

// NewCached caches hits from next in c for ttl. Loader options bound the
// shared lookup that concurrent misses for one slug wait on.
func NewCached(next tenant.Directory, c cache.Cache[tenant.Tenant], ttl time.Duration, opts ...cache.LoaderOption) *Cached {
	return &Cached{next: next, loader: cache.NewLoader(c, opts...), ttl: ttl}
}

// FindActiveBySlug implements tenant.Directory.
func (c *Cached) FindActiveBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	t, err := c.loader.Load(ctx, slug, func(ctx context.Context) (tenant.Tenant, time.Duration, error) {
		t, err := c.next.FindActiveBySlug(ctx, slug)
		if err != nil {
			return tenant.Tenant{}, 0, err
		}
		if t == nil {
			return tenant.Tenant{}, 0, tenant.ErrNotFound
		}
		return *t, c.ttl, nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, tenant.ErrNotFound
	}
	return &t, nil
}

// Invalidate drops slug from the cache, e.g. after a church is suspended.
func (c *Cached) Invalidate(ctx context.Context, slug string) error {
	return c.loader.Cache().Delete(ctx, slug)
}

var _ tenant.Directory = (*Cached)(nil)
