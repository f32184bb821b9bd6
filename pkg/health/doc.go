// Package health serves liveness and readiness probes.
//
// Liveness always answers OK while the process runs. Readiness runs every
// registered check in parallel under a shared timeout and answers 503 when
// any check fails. Both endpoints reply in plain text unless the client asks
// for JSON via "Accept: application/json" or "?format=json":
//
//	{"status":"unhealthy","checks":{"postgres":{"status":"healthy"},"redis":{"status":"unhealthy","error":"..."}}}
//
// Checks are plain func(context.Context) error closures, such as those
// returned by db.Healthcheck and redis.Healthcheck.
package health
