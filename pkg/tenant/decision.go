package tenant

// PathPrefix is the first segment of every tenant-scoped path.
const PathPrefix = "/tenant/"

// Action is the routing action the hosting layer must take.
type Action int

const (
	ActionPassThrough Action = iota
	ActionRewrite
	ActionRedirect
)

func (a Action) String() string {
	switch a {
	case ActionPassThrough:
		return "pass_through"
	case ActionRewrite:
		return "rewrite"
	case ActionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Reason explains why a decision was made.
type Reason string

const (
	ReasonMainDomain     Reason = "main_domain"
	ReasonTenantFound    Reason = "tenant_found"
	ReasonTenantNotFound Reason = "tenant_not_found"
	ReasonLookupFailed   Reason = "lookup_failed"
)

// Decision is the outcome of routing a single request.
type Decision struct {
	Action Action
	Reason Reason
	// Path is the rewritten path, set for ActionRewrite.
	Path string
	// URL is the redirect target, set for ActionRedirect.
	URL string
	// Slug is the parsed tenant candidate, empty for ActionPassThrough.
	Slug string
	// Tenant is the resolved record, set for ActionRewrite.
	Tenant *Tenant
	// Err is the directory error behind ReasonLookupFailed.
	Err error
}

// PassThrough serves the request unchanged against main-site content.
func PassThrough() Decision {
	return Decision{Action: ActionPassThrough, Reason: ReasonMainDomain}
}

// Rewrite serves a tenant-scoped path without changing the visible URL.
func Rewrite(t *Tenant, path string) Decision {
	return Decision{
		Action: ActionRewrite,
		Reason: ReasonTenantFound,
		Path:   ScopedPath(t.Slug, path),
		Slug:   t.Slug,
		Tenant: t,
	}
}

// Redirect sends the client to url.
func Redirect(url, slug string, reason Reason, err error) Decision {
	return Decision{Action: ActionRedirect, Reason: reason, URL: url, Slug: slug, Err: err}
}

// ScopedPath prefixes path with the tenant scope segment.
// The original path is appended byte for byte.
func ScopedPath(slug, path string) string {
	return PathPrefix + slug + path
}
