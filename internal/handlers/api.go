package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/churchconnect/edge/internal/server"
	"github.com/churchconnect/edge/middlewares"
	"github.com/churchconnect/edge/pkg/slug"
)

// API serves the JSON endpoints under /api.
type API struct {
	urls       URLs
	mainDomain string
}

// NewAPI creates the API handler. mainDomain scopes CORS to the main site
// and its tenant subdomains.
func NewAPI(urls URLs, mainDomain string) *API {
	return &API{urls: urls, mainDomain: mainDomain}
}

// Routes implements server.Handler.
func (h *API) Routes(r server.Router) {
	r.Route("/api", func(r server.Router) {
		r.Use(middlewares.CORS(
			middlewares.WithAllowOriginFunc(middlewares.TenantOrigins(h.mainDomain)),
			middlewares.WithAllowMethods(http.MethodGet, http.MethodOptions),
		))
		r.GET("/health", h.health)
		r.GET("/tenants/{slug}/url", h.tenantURL)
		r.GET("/slug", h.suggestSlug)
	})
}

func (h *API) health(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type tenantURLResponse struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

func (h *API) tenantURL(w http.ResponseWriter, r *http.Request) error {
	s := chi.URLParam(r, "slug")
	if !slug.Valid(s) {
		return server.ErrBadRequest("invalid slug")
	}
	return writeJSON(w, http.StatusOK, tenantURLResponse{Slug: s, URL: h.urls.TenantURL(s)})
}

type slugResponse struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

func (h *API) suggestSlug(w http.ResponseWriter, r *http.Request) error {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		return server.ErrBadRequest("name is required")
	}
	s := slug.Make(name)
	if s == "" {
		return server.ErrBadRequest("name has no usable characters")
	}
	return writeJSON(w, http.StatusOK, slugResponse{Slug: s, URL: h.urls.TenantURL(s)})
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}
