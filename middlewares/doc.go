// Package middlewares provides net/http middleware for the edge server.
//
// # Request ID
//
// RequestID assigns a unique ID to each request. Incoming X-Request-ID style
// headers are honoured so upstream tracing IDs survive. Use
// RequestIDExtractor with the logger so every entry carries request_id:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor(), tenant.SlugExtractor())
//
// # Recover
//
// Recover turns a panic into a 500 response and logs the panic value with
// the stack trace.
//
// # Timeout
//
// Timeout bounds the request context. Work that honours ctx, such as the
// tenant directory lookup, is abandoned once the deadline passes and the
// client receives 504 if nothing was written yet.
//
// # CORS
//
// CORS handles Cross-Origin Resource Sharing headers for the API namespace.
// TenantOrigins allows the main domain and any of its subdomains:
//
//	r.Use(middlewares.CORS(middlewares.WithAllowOriginFunc(middlewares.TenantOrigins("churchconnect.app"))))
//
// # Tenancy
//
// Tenancy resolves the tenant for each request from its Host header and
// applies the routing decision: pass through, rewrite to the tenant-scoped
// path, or redirect to the canonical main domain.
//
// # Recommended Middleware Order
//
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Recover(log),
//	    middlewares.Timeout(10*time.Second),
//	    middlewares.Tenancy(router, middlewares.WithTenancyLogger(log)),
//	)
package middlewares
