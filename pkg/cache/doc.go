// Package cache provides generic TTL caches used in front of slow lookups.
//
// Two backends implement [Cache]:
//
//   - [Memory]: per-process map with TTL expiry and optional LRU bound.
//   - [Redis]: shared across instances, values serialized by a [Marshaler]
//     (JSON by default), keys namespaced by a prefix.
//
// [Loader] combines a Cache with singleflight so concurrent misses for the
// same key trigger one load. The shared load runs detached from the
// callers' cancellation and is bounded by [WithLoadTimeout]:
//
//	l := cache.NewLoader[tenant.Tenant](cache.NewMemory[tenant.Tenant]())
//	t, err := l.Load(ctx, slug, func(ctx context.Context) (tenant.Tenant, time.Duration, error) {
//	    return fetch(ctx, slug)
//	})
//
// TTL semantics for Set: positive expires after the duration, zero uses the
// backend default, negative never expires.
package cache
