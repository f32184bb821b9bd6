// Package tenant decides, per request, which church (tenant) context applies.
//
// The [Router] turns a request host and path into one of three decisions:
//
//   - PassThrough: the host is the main site; serve the path unchanged.
//   - Rewrite: the host names an active tenant; serve "/tenant/<slug>" + path
//     without changing the URL the client sees.
//   - Redirect: the host names no active tenant; send the client to the
//     canonical main-domain URL.
//
// Tenant candidates are extracted by [hostrouter.Parse]. Existence is decided
// by a single [Directory] read per request. Directory failures and inactive
// tenants are indistinguishable from missing ones at the decision level; the
// [Reason] attached to every decision lets the hosting layer tell them apart
// in logs and metrics.
//
// # Usage
//
//	router := tenant.NewRouter("example.com", directory, generator)
//	d := router.Route(ctx, r.Host, r.URL.Path)
//	switch d.Action {
//	case tenant.ActionRewrite:
//	    // serve d.Path
//	case tenant.ActionRedirect:
//	    http.Redirect(w, r, d.URL, http.StatusTemporaryRedirect)
//	}
//
// The Router holds no mutable state and is safe for concurrent use.
package tenant
