package directory_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/pkg/cache"
	"github.com/churchconnect/edge/pkg/directory"
	"github.com/churchconnect/edge/pkg/tenant"
)

type countingDirectory struct {
	calls atomic.Int32
	find  func(slug string) (*tenant.Tenant, error)
}

func (d *countingDirectory) FindActiveBySlug(_ context.Context, slug string) (*tenant.Tenant, error) {
	d.calls.Add(1)
	return d.find(slug)
}

type missCountingCache struct {
	cache.Cache[tenant.Tenant]
	misses atomic.Int32
}

func (c *missCountingCache) Get(ctx context.Context, key string) (tenant.Tenant, error) {
	v, err := c.Cache.Get(ctx, key)
	if err != nil {
		c.misses.Add(1)
	}
	return v, err
}

func TestCached(t *testing.T) {
	t.Parallel()

	t.Run("hits are served from cache", func(t *testing.T) {
		t.Parallel()

		next := &countingDirectory{find: func(slug string) (*tenant.Tenant, error) {
			return &tenant.Tenant{Slug: slug, Name: "Grace", Active: true}, nil
		}}
		mem := cache.NewMemory[tenant.Tenant]()
		t.Cleanup(func() { _ = mem.Close() })
		dir := directory.NewCached(next, mem, time.Minute)

		for range 3 {
			got, err := dir.FindActiveBySlug(context.Background(), "grace")
			require.NoError(t, err)
			require.Equal(t, "Grace", got.Name)
		}
		require.Equal(t, int32(1), next.calls.Load())
	})

	t.Run("not found is never cached", func(t *testing.T) {
		t.Parallel()

		next := &countingDirectory{find: func(string) (*tenant.Tenant, error) {
			return nil, tenant.ErrNotFound
		}}
		mem := cache.NewMemory[tenant.Tenant]()
		t.Cleanup(func() { _ = mem.Close() })
		dir := directory.NewCached(next, mem, time.Minute)

		for range 3 {
			_, err := dir.FindActiveBySlug(context.Background(), "ghost")
			require.ErrorIs(t, err, tenant.ErrNotFound)
		}
		require.Equal(t, int32(3), next.calls.Load())
	})

	t.Run("errors are never cached", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection refused")
		var fail atomic.Bool
		fail.Store(true)
		next := &countingDirectory{find: func(slug string) (*tenant.Tenant, error) {
			if fail.Load() {
				return nil, boom
			}
			return &tenant.Tenant{Slug: slug, Active: true}, nil
		}}
		mem := cache.NewMemory[tenant.Tenant]()
		t.Cleanup(func() { _ = mem.Close() })
		dir := directory.NewCached(next, mem, time.Minute)

		_, err := dir.FindActiveBySlug(context.Background(), "grace")
		require.ErrorIs(t, err, boom)

		fail.Store(false)
		got, err := dir.FindActiveBySlug(context.Background(), "grace")
		require.NoError(t, err)
		require.Equal(t, "grace", got.Slug)
		require.Equal(t, int32(2), next.calls.Load())
	})

	t.Run("invalidate forces a reload", func(t *testing.T) {
		t.Parallel()

		var active atomic.Bool
		active.Store(true)
		next := &countingDirectory{find: func(slug string) (*tenant.Tenant, error) {
			if !active.Load() {
				return nil, tenant.ErrNotFound
			}
			return &tenant.Tenant{Slug: slug, Active: true}, nil
		}}
		mem := cache.NewMemory[tenant.Tenant]()
		t.Cleanup(func() { _ = mem.Close() })
		dir := directory.NewCached(next, mem, time.Minute)

		_, err := dir.FindActiveBySlug(context.Background(), "grace")
		require.NoError(t, err)

		active.Store(false)
		require.NoError(t, dir.Invalidate(context.Background(), "grace"))

		_, err = dir.FindActiveBySlug(context.Background(), "grace")
		require.ErrorIs(t, err, tenant.ErrNotFound)
	})

	t.Run("inactive cached record is not returned", func(t *testing.T) {
		t.Parallel()

		next := &countingDirectory{find: func(string) (*tenant.Tenant, error) {
			t.Fatal("directory must not be called on a cache hit")
			return nil, nil
		}}
		mem := cache.NewMemory[tenant.Tenant]()
		t.Cleanup(func() { _ = mem.Close() })
		require.NoError(t, mem.Set(context.Background(), "stale", tenant.Tenant{Slug: "stale"}, time.Minute))
		dir := directory.NewCached(next, mem, time.Minute)

		_, err := dir.FindActiveBySlug(context.Background(), "stale")
		require.ErrorIs(t, err, tenant.ErrNotFound)
	})

	t.Run("concurrent misses are coalesced", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		next := &countingDirectory{find: func(slug string) (*tenant.Tenant, error) {
			<-release
			return &tenant.Tenant{Slug: slug, Active: true}, nil
		}}
		mem := &missCountingCache{Cache: cache.NewMemory[tenant.Tenant]()}
		t.Cleanup(func() { _ = mem.Close() })
		dir := directory.NewCached(next, mem, time.Minute)

		const n = 10
		errs := make([]error, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = dir.FindActiveBySlug(context.Background(), "grace")
			}()
		}

		require.Eventually(t, func() bool { return mem.misses.Load() == n }, time.Second, time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		for _, err := range errs {
			require.NoError(t, err)
		}
		require.Equal(t, int32(1), next.calls.Load())
	})

	t.Run("cancelled request does not fail concurrent lookups", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		started := make(chan struct{})
		release := make(chan struct{})
		next := tenant.DirectoryFunc(func(ctx context.Context, slug string) (*tenant.Tenant, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			select {
			case <-release:
				return &tenant.Tenant{Slug: slug, Name: "St Mary's", Active: true}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
		mem := cache.NewMemory[tenant.Tenant]()
		t.Cleanup(func() { _ = mem.Close() })
		dir := directory.NewCached(next, mem, time.Minute)

		abandoned, cancel := context.WithCancel(context.Background())
		abandonedErr := make(chan error, 1)
		go func() {
			_, err := dir.FindActiveBySlug(abandoned, "stmarys")
			abandonedErr <- err
		}()
		<-started

		type result struct {
			tenant *tenant.Tenant
			err    error
		}
		live := make(chan result, 1)
		go func() {
			got, err := dir.FindActiveBySlug(context.Background(), "stmarys")
			live <- result{tenant: got, err: err}
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()
		require.ErrorIs(t, <-abandonedErr, context.Canceled)

		close(release)
		res := <-live
		require.NoError(t, res.err)
		require.Equal(t, "St Mary's", res.tenant.Name)
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("nil result from next is not found", func(t *testing.T) {
		t.Parallel()

		next := tenant.DirectoryFunc(func(context.Context, string) (*tenant.Tenant, error) {
			return nil, nil
		})
		mem := cache.NewMemory[tenant.Tenant]()
		t.Cleanup(func() { _ = mem.Close() })
		dir := directory.NewCached(next, mem, time.Minute)

		got, err := dir.FindActiveBySlug(context.Background(), "ghost")
		require.ErrorIs(t, err, tenant.ErrNotFound)
		require.Nil(t, got)

		_, err = mem.Get(context.Background(), "ghost")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})
}
