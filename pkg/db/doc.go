// Package db manages the PostgreSQL connection pool backing the tenant
// directory.
//
// It provides [Connect] (pgxpool with startup retry), [Migrate] (goose
// migrations from an embedded filesystem), and [Healthcheck] / [Shutdown]
// closures for the server's readiness probe and shutdown hooks.
//
//	pool, err := db.Connect(ctx, cfg.DB)
//	if err != nil {
//	    return err
//	}
//	if err := db.Migrate(ctx, pool, migrations.FS, cfg.DB.MigrationsTable, log); err != nil {
//	    return err
//	}
package db
