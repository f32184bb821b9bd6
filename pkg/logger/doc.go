// Package logger builds the service's structured logger.
//
// Logs are JSON (or text, for local development) records written to stdout
// through log/slog. Two additions sit on top of the standard library:
//
//   - Context extractors inject request-scoped attributes (request ID,
//     tenant slug) into every record logged with a context.
//   - Optional Sentry fan-out: warnings are stored as Sentry logs and errors
//     become Sentry issues. Without a DSN the logger silently stays
//     stdout-only, so development and production share one code path.
//
// # Usage
//
//	log := logger.New(logger.Config{Level: "info", Format: "json"},
//	    middlewares.RequestIDExtractor(),
//	    tenant.SlugExtractor(),
//	)
//	log.InfoContext(ctx, "tenant resolved", slog.String("path", p))
//
// With Sentry:
//
//	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, extractors...)
package logger
