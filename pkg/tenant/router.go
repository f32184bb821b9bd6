package tenant

import (
	"context"
	"errors"

	"github.com/churchconnect/edge/pkg/hostrouter"
)

// URLGenerator provides the canonical main-site URL redirects point to.
type URLGenerator interface {
	CanonicalURL() string
}

// Router makes the per-request routing decision.
type Router struct {
	directory  Directory
	urls       URLGenerator
	mainDomain string
}

// NewRouter creates a Router for mainDomain (host[:port]).
func NewRouter(mainDomain string, directory Directory, urls URLGenerator) *Router {
	return &Router{
		mainDomain: mainDomain,
		directory:  directory,
		urls:       urls,
	}
}

// MainDomain returns the configured main domain.
func (r *Router) MainDomain() string {
	return r.mainDomain
}

// Route decides how a request for host and path is served.
// It never fails: every outcome is one of the three decision actions.
func (r *Router) Route(ctx context.Context, host, path string) Decision {
	res := r.Resolve(ctx, host)

	switch res.Kind {
	case ResolutionNoSubdomain:
		return PassThrough()
	case ResolutionValid:
		return Rewrite(res.Tenant, path)
	default:
		reason := ReasonTenantNotFound
		if res.Err != nil {
			reason = ReasonLookupFailed
		}
		return Redirect(r.urls.CanonicalURL(), res.Slug, reason, res.Err)
	}
}

// Resolve determines which tenant, if any, host belongs to.
// At most one directory read is made, and only when host carries a
// tenant candidate.
func (r *Router) Resolve(ctx context.Context, host string) Resolution {
	slug, ok := hostrouter.Parse(host, r.mainDomain)
	if !ok {
		return Resolution{Kind: ResolutionNoSubdomain}
	}

	t, err := r.directory.FindActiveBySlug(ctx, slug)
	switch {
	case err == nil && t != nil && t.Active:
		return Resolution{Kind: ResolutionValid, Slug: slug, Tenant: t}
	case err == nil, errors.Is(err, ErrNotFound):
		return Resolution{Kind: ResolutionInvalid, Slug: slug}
	default:
		return Resolution{Kind: ResolutionInvalid, Slug: slug, Err: err}
	}
}
