// Package handlers serves the main site, the tenant-scoped pages reached
// through rewrites, and the JSON API.
package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/churchconnect/edge/internal/server"
)

// URLs builds public URLs for the main site and for tenants.
type URLs interface {
	CanonicalURL() string
	TenantURL(slug string) string
}

// Landing serves the marketing site on the main domain.
type Landing struct {
	urls URLs
}

// NewLanding creates the main-site handler.
func NewLanding(urls URLs) *Landing {
	return &Landing{urls: urls}
}

// Routes implements server.Handler.
func (h *Landing) Routes(r server.Router) {
	r.GET("/", h.home)
	r.GET("/register-church", h.register)
	r.GET("/auth/login", h.login)
}

func (h *Landing) home(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, http.StatusOK, landingPage())
}

func (h *Landing) register(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, http.StatusOK, registerPage(h.urls.TenantURL("your-church")))
}

func (h *Landing) login(w http.ResponseWriter, r *http.Request) error {
	return render(w, r, http.StatusOK, loginPage())
}

func render(w http.ResponseWriter, r *http.Request, code int, c templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	return c.Render(r.Context(), w)
}
