package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a key-value cache with TTL support.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Marshaler converts values for byte-oriented backends.
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

type jsonMarshaler[V any] struct{}

func (jsonMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// LoadFunc computes a value on a cache miss together with its TTL.
type LoadFunc[V any] func(ctx context.Context) (V, time.Duration, error)

// DefaultLoadTimeout bounds a shared load when no LoaderOption overrides it.
const DefaultLoadTimeout = 5 * time.Second

// LoaderOption configures a Loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	loadTimeout time.Duration
}

// WithLoadTimeout bounds each shared load. Non-positive values are ignored.
func WithLoadTimeout(d time.Duration) LoaderOption {
	return func(o *loaderOptions) {
		if d > 0 {
			o.loadTimeout = d
		}
	}
}

// Loader reads through a Cache, deduplicating concurrent misses per key.
type Loader[V any] struct {
	cache Cache[V]
	group singleflight.Group
	opts  loaderOptions
}

// NewLoader wraps c.
func NewLoader[V any](c Cache[V], opts ...LoaderOption) *Loader[V] {
	o := loaderOptions{loadTimeout: DefaultLoadTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader[V]{cache: c, opts: o}
}

// Cache returns the underlying cache.
func (l *Loader[V]) Cache() Cache[V] {
	return l.cache
}

// Load returns the cached value for key or calls fn on a miss.
//
// Concurrent misses for the same key share one call to fn. That call runs on
// a context detached from every caller's cancellation and bounded by the load
// timeout, so a caller that gives up never fails the others. Each caller
// still returns as soon as its own ctx is done.
//
// Errors from fn are returned as-is and nothing is cached. A cache backend
// failure on read is treated as a miss; a failure on write is ignored.
func (l *Loader[V]) Load(ctx context.Context, key string, fn LoadFunc[V]) (V, error) {
	var zero V
	if v, err := l.cache.Get(ctx, key); err == nil {
		return v, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(shared, l.opts.loadTimeout)
		defer cancel()

		val, ttl, err := fn(loadCtx)
		if err != nil {
			return nil, err
		}
		_ = l.cache.Set(loadCtx, key, val, ttl)
		return val, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	}
}
