package tenant

// ResolutionKind enumerates the variants of a Resolution.
type ResolutionKind int

const (
	// ResolutionNoSubdomain means the host is the main site.
	ResolutionNoSubdomain ResolutionKind = iota
	// ResolutionValid means the slug names an active tenant.
	ResolutionValid
	// ResolutionInvalid means a slug was present but no active tenant matched.
	ResolutionInvalid
)

// Resolution is the tenant context of a single request.
// It is computed fresh per request and never cached by the router.
type Resolution struct {
	Tenant *Tenant
	Err    error
	Slug   string
	Kind   ResolutionKind
}

// IsValid reports whether the resolution names an active tenant.
func (r Resolution) IsValid() bool {
	return r.Kind == ResolutionValid
}
