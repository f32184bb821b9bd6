package tenant_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/pkg/canonical"
	"github.com/churchconnect/edge/pkg/tenant"
)

// fakeDirectory serves a fixed set of records and counts lookups.
type fakeDirectory struct {
	tenants map[string]tenant.Tenant
	err     error
	calls   atomic.Int32
}

func (d *fakeDirectory) FindActiveBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	d.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.err != nil {
		return nil, d.err
	}
	t, ok := d.tenants[slug]
	if !ok || !t.Active {
		return nil, tenant.ErrNotFound
	}
	return &t, nil
}

func newDirectory() *fakeDirectory {
	return &fakeDirectory{tenants: map[string]tenant.Tenant{
		"stmarys": {ID: "1", Slug: "stmarys", Name: "St Mary's", Active: true},
		"closed":  {ID: "2", Slug: "closed", Name: "Closed Chapel", Active: false},
	}}
}

func newRouter(t *testing.T, dir tenant.Directory, env canonical.Environment) *tenant.Router {
	t.Helper()

	scheme := "https"
	if env == canonical.Development {
		scheme = "http"
	}
	gen, err := canonical.New(scheme+"://example.com", "example.com", env)
	require.NoError(t, err)

	return tenant.NewRouter("example.com", dir, gen)
}

func TestRouter_Route(t *testing.T) {
	t.Parallel()

	t.Run("main domain passes through", func(t *testing.T) {
		t.Parallel()

		dir := newDirectory()
		d := newRouter(t, dir, canonical.Production).Route(context.Background(), "example.com", "/")

		require.Equal(t, tenant.ActionPassThrough, d.Action)
		require.Equal(t, tenant.ReasonMainDomain, d.Reason)
		require.Zero(t, dir.calls.Load(), "main domain must not hit the directory")
	})

	t.Run("localhost passes through", func(t *testing.T) {
		t.Parallel()

		dir := newDirectory()
		d := newRouter(t, dir, canonical.Development).Route(context.Background(), "localhost:3000", "/dashboard")

		require.Equal(t, tenant.ActionPassThrough, d.Action)
		require.Zero(t, dir.calls.Load())
	})

	t.Run("malformed host passes through", func(t *testing.T) {
		t.Parallel()

		dir := newDirectory()
		d := newRouter(t, dir, canonical.Production).Route(context.Background(), "", "/")

		require.Equal(t, tenant.ActionPassThrough, d.Action)
		require.Zero(t, dir.calls.Load())
	})

	t.Run("active tenant rewrites", func(t *testing.T) {
		t.Parallel()

		dir := newDirectory()
		d := newRouter(t, dir, canonical.Production).Route(context.Background(), "stmarys.example.com", "/members")

		require.Equal(t, tenant.ActionRewrite, d.Action)
		require.Equal(t, tenant.ReasonTenantFound, d.Reason)
		require.Equal(t, "/tenant/stmarys/members", d.Path)
		require.Equal(t, "stmarys", d.Slug)
		require.NotNil(t, d.Tenant)
		require.Equal(t, "St Mary's", d.Tenant.Name)
		require.EqualValues(t, 1, dir.calls.Load())
	})

	t.Run("rewrite preserves path bytes", func(t *testing.T) {
		t.Parallel()

		router := newRouter(t, newDirectory(), canonical.Production)
		for _, path := range []string{"/", "/members/42", "/a%2Fb", "/with space", "/trailing/", "/x;y=z"} {
			d := router.Route(context.Background(), "stmarys.example.com", path)
			require.Equal(t, tenant.ActionRewrite, d.Action)
			require.Equal(t, "/tenant/stmarys"+path, d.Path)
		}
	})

	t.Run("unknown tenant redirects in production", func(t *testing.T) {
		t.Parallel()

		dir := newDirectory()
		d := newRouter(t, dir, canonical.Production).Route(context.Background(), "ghost.example.com", "/")

		require.Equal(t, tenant.ActionRedirect, d.Action)
		require.Equal(t, tenant.ReasonTenantNotFound, d.Reason)
		require.Equal(t, "https://example.com", d.URL)
		require.Equal(t, "ghost", d.Slug)
		require.NoError(t, d.Err)
		require.EqualValues(t, 1, dir.calls.Load())
	})

	t.Run("unknown tenant redirects in development", func(t *testing.T) {
		t.Parallel()

		d := newRouter(t, newDirectory(), canonical.Development).Route(context.Background(), "ghost.example.com", "/")

		require.Equal(t, tenant.ActionRedirect, d.Action)
		require.Equal(t, "http://example.com", d.URL)
	})

	t.Run("inactive tenant redirects", func(t *testing.T) {
		t.Parallel()

		d := newRouter(t, newDirectory(), canonical.Production).Route(context.Background(), "closed.example.com", "/members")

		require.Equal(t, tenant.ActionRedirect, d.Action)
		require.Equal(t, tenant.ReasonTenantNotFound, d.Reason)
		require.Equal(t, "https://example.com", d.URL)
	})

	t.Run("redirect ignores requested path", func(t *testing.T) {
		t.Parallel()

		router := newRouter(t, newDirectory(), canonical.Production)
		for _, path := range []string{"/", "/members", "/deep/nested/path?x=1"} {
			d := router.Route(context.Background(), "ghost.example.com", path)
			require.Equal(t, "https://example.com", d.URL)
		}
	})

	t.Run("lookup error redirects with lookup_failed", func(t *testing.T) {
		t.Parallel()

		lookupErr := errors.New("connection refused")
		dir := newDirectory()
		dir.err = lookupErr

		d := newRouter(t, dir, canonical.Production).Route(context.Background(), "stmarys.example.com", "/members")

		require.Equal(t, tenant.ActionRedirect, d.Action)
		require.Equal(t, tenant.ReasonLookupFailed, d.Reason)
		require.Equal(t, "https://example.com", d.URL)
		require.ErrorIs(t, d.Err, lookupErr)
		require.EqualValues(t, 1, dir.calls.Load(), "lookup errors are not retried")
	})

	t.Run("cancelled context redirects", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := newRouter(t, newDirectory(), canonical.Production).Route(ctx, "stmarys.example.com", "/")

		require.Equal(t, tenant.ActionRedirect, d.Action)
		require.ErrorIs(t, d.Err, context.Canceled)
	})

	t.Run("directory returning inactive record is not trusted", func(t *testing.T) {
		t.Parallel()

		dir := tenant.DirectoryFunc(func(context.Context, string) (*tenant.Tenant, error) {
			return &tenant.Tenant{Slug: "stmarys", Active: false}, nil
		})

		d := newRouter(t, dir, canonical.Production).Route(context.Background(), "stmarys.example.com", "/")
		require.Equal(t, tenant.ActionRedirect, d.Action)
		require.Equal(t, tenant.ReasonTenantNotFound, d.Reason)
	})
}

func TestRouter_Resolve(t *testing.T) {
	t.Parallel()

	router := newRouter(t, newDirectory(), canonical.Production)

	res := router.Resolve(context.Background(), "example.com")
	require.Equal(t, tenant.ResolutionNoSubdomain, res.Kind)
	require.False(t, res.IsValid())

	res = router.Resolve(context.Background(), "stmarys.example.com")
	require.Equal(t, tenant.ResolutionValid, res.Kind)
	require.True(t, res.IsValid())
	require.Equal(t, "stmarys", res.Slug)
	require.NotNil(t, res.Tenant)

	res = router.Resolve(context.Background(), "ghost.example.com")
	require.Equal(t, tenant.ResolutionInvalid, res.Kind)
	require.Equal(t, "ghost", res.Slug)
	require.Nil(t, res.Tenant)
}

func TestRouter_Concurrent(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	router := newRouter(t, dir, canonical.Production)

	const n = 50
	decisions := make([]tenant.Decision, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			host := "ghost.example.com"
			if i%2 == 0 {
				host = "stmarys.example.com"
			}
			decisions[i] = router.Route(context.Background(), host, "/members")
		}(i)
	}
	wg.Wait()

	for i, d := range decisions {
		if i%2 == 0 {
			require.Equal(t, tenant.ActionRewrite, d.Action)
			require.Equal(t, "/tenant/stmarys/members", d.Path)
			continue
		}
		require.Equal(t, tenant.ActionRedirect, d.Action)
	}
	require.EqualValues(t, n, dir.calls.Load())
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pass_through", tenant.ActionPassThrough.String())
	require.Equal(t, "rewrite", tenant.ActionRewrite.String())
	require.Equal(t, "redirect", tenant.ActionRedirect.String())
	require.Equal(t, "unknown", tenant.Action(99).String())
}
