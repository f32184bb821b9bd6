package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/churchconnect/edge/internal/server"
	"github.com/churchconnect/edge/pkg/tenant"
)

var errTenantMismatch = errors.New("handlers: tenant scope does not match request tenant")

// Tenant serves tenant-scoped paths. These are only reachable through a
// rewrite, which stores the tenant in the request context; a direct request
// for /tenant/... on the main domain has no tenant and gets 404.
type Tenant struct{}

// NewTenant creates the tenant-scoped handler.
func NewTenant() *Tenant {
	return &Tenant{}
}

// Routes implements server.Handler.
func (h *Tenant) Routes(r server.Router) {
	r.Route(strings.TrimSuffix(tenant.PathPrefix, "/")+"/{slug}", func(r server.Router) {
		r.GET("/", h.show)
		r.GET("/*", h.show)
	})
}

func (h *Tenant) show(w http.ResponseWriter, r *http.Request) error {
	t := tenant.FromContext(r.Context())
	slug := chi.URLParam(r, "slug")
	if t == nil || t.Slug != slug {
		return server.ErrNotFound(errTenantMismatch)
	}

	path := "/" + chi.URLParam(r, "*")
	return render(w, r, http.StatusOK, tenantPage(t, path))
}
