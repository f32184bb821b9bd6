package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the server's ErrorHandler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler declares routes on a router.
//
//	type LandingHandler struct{}
//
//	func (h *LandingHandler) Routes(r server.Router) {
//	    r.GET("/", h.home)
//	}
type Handler interface {
	Routes(r Router)
}

// Router is the interface handlers use to declare routes.
type Router interface {
	GET(path string, h HandlerFunc)
	POST(path string, h HandlerFunc)
	HEAD(path string, h HandlerFunc)

	// Route creates a route group sharing the pattern prefix.
	Route(pattern string, fn func(r Router))

	// Group creates an inline route group, usually to scope middleware.
	Group(fn func(r Router))

	// Use appends middleware to the current group.
	Use(mw ...func(http.Handler) http.Handler)

	// Mount attaches an http.Handler at the given pattern.
	Mount(pattern string, h http.Handler)
}

// routerAdapter wraps chi.Router to implement the Router interface.
type routerAdapter struct {
	router  chi.Router
	onError ErrorHandler
}

func (r *routerAdapter) GET(path string, h HandlerFunc) {
	r.router.Get(path, r.adapt(h))
}

func (r *routerAdapter) POST(path string, h HandlerFunc) {
	r.router.Post(path, r.adapt(h))
}

func (r *routerAdapter) HEAD(path string, h HandlerFunc) {
	r.router.Head(path, r.adapt(h))
}

func (r *routerAdapter) Route(pattern string, fn func(Router)) {
	r.router.Route(pattern, func(cr chi.Router) {
		fn(&routerAdapter{router: cr, onError: r.onError})
	})
}

func (r *routerAdapter) Group(fn func(Router)) {
	r.router.Group(func(cr chi.Router) {
		fn(&routerAdapter{router: cr, onError: r.onError})
	})
}

func (r *routerAdapter) Use(mw ...func(http.Handler) http.Handler) {
	r.router.Use(mw...)
}

func (r *routerAdapter) Mount(pattern string, h http.Handler) {
	r.router.Mount(pattern, h)
}

func (r *routerAdapter) adapt(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			r.onError(w, req, err)
		}
	}
}
