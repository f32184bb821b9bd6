// Package directory provides tenant.Directory implementations.
//
//   - [Postgres]: the churches table, one indexed point read per lookup.
//   - [Memory]: a fixed set of records, usually loaded from a YAML seed file.
//   - [Cached]: read-through cache in front of another directory. Only hits
//     are cached so a newly registered church is visible immediately and a
//     failing backend is retried on the next request.
//   - [Instrumented]: records lookup latency and outcome.
//
// Every implementation reports absent and inactive churches as
// tenant.ErrNotFound.
package directory
