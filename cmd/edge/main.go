// Command edge serves the ChurchConnect main site and routes tenant
// subdomains to their church portals.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/churchconnect/edge/internal/config"
	"github.com/churchconnect/edge/internal/db/migrations"
	"github.com/churchconnect/edge/internal/handlers"
	"github.com/churchconnect/edge/internal/server"
	"github.com/churchconnect/edge/middlewares"
	"github.com/churchconnect/edge/pkg/cache"
	"github.com/churchconnect/edge/pkg/canonical"
	"github.com/churchconnect/edge/pkg/db"
	"github.com/churchconnect/edge/pkg/directory"
	"github.com/churchconnect/edge/pkg/logger"
	"github.com/churchconnect/edge/pkg/metrics"
	"github.com/churchconnect/edge/pkg/redis"
	"github.com/churchconnect/edge/pkg/tenant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor(), tenant.SlugExtractor())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	urls, err := canonical.New(cfg.AppURL, cfg.MainDomain, cfg.Environment)
	if err != nil {
		return err
	}

	opts := []server.Option{
		server.WithLogger(log),
		server.WithShutdownHook(logger.FlushSentry()),
	}
	checks := []server.HealthOption{}

	dir, dirOpts, dirChecks, err := openDirectory(ctx, cfg, log)
	if err != nil {
		return err
	}
	opts = append(opts, dirOpts...)
	checks = append(checks, dirChecks...)

	// the memory directory is already in process
	if cfg.CacheTTL > 0 && cfg.DB.ConnectionString != "" {
		c, cacheOpts, cacheChecks, err := openCache(ctx, cfg)
		if err != nil {
			return err
		}
		opts = append(opts, cacheOpts...)
		checks = append(checks, cacheChecks...)
		dir = directory.NewCached(dir, c, cfg.CacheTTL, cache.WithLoadTimeout(cfg.Server.RequestTimeout))
	}

	var rec *metrics.Recorder
	if cfg.MetricsEnabled {
		rec = metrics.New()
		dir = directory.NewInstrumented(dir, rec)
		opts = append(opts, server.WithMetricsHandler(rec.Handler()))
	}

	router := tenant.NewRouter(cfg.MainDomain, dir, urls)

	tenancyOpts := []middlewares.TenancyOption{
		middlewares.WithTenancyLogger(log),
		middlewares.WithExclusions(cfg.Exclusions),
	}
	if rec != nil {
		tenancyOpts = append(tenancyOpts, middlewares.WithDecisionObserver(rec))
	}

	opts = append(opts,
		server.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(log),
			middlewares.Timeout(cfg.Server.RequestTimeout, middlewares.WithTimeoutLogger(log)),
			middlewares.Tenancy(router, tenancyOpts...),
		),
		server.WithHandlers(
			handlers.NewLanding(urls),
			handlers.NewTenant(),
			handlers.NewAPI(urls, cfg.MainDomain),
		),
		server.WithHealthChecks(checks...),
	)

	log.Info("tenant routing configured",
		slog.String("main_domain", cfg.MainDomain),
		slog.String("canonical_url", urls.CanonicalURL()),
		slog.String("environment", string(cfg.Environment)),
	)

	return server.New(cfg.Server, opts...).Run(ctx)
}

// openDirectory returns the Postgres directory when a database is
// configured and the seeded memory directory otherwise.
func openDirectory(ctx context.Context, cfg *config.Config, log *slog.Logger) (tenant.Directory, []server.Option, []server.HealthOption, error) {
	var seed []tenant.Tenant
	if cfg.SeedFile != "" {
		var err error
		if seed, err = directory.LoadSeedFile(cfg.SeedFile); err != nil {
			return nil, nil, nil, err
		}
	}

	if cfg.DB.ConnectionString == "" {
		if !cfg.IsDevelopment() {
			return nil, nil, nil, errors.New("DATABASE_CONN_URL is required in production")
		}
		log.Warn("no database configured, using in-memory tenant directory", slog.Int("tenants", len(seed)))
		return directory.NewMemory(seed...), nil, nil, nil
	}

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(ctx, pool, migrations.FS, cfg.DB.MigrationsTable, log); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
	}
	if len(seed) > 0 {
		if err := directory.Seed(ctx, pool, seed); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		log.Info("tenant seed applied", slog.Int("tenants", len(seed)))
	}

	return directory.NewPostgres(pool),
		[]server.Option{server.WithShutdownHook(db.Shutdown(pool))},
		[]server.HealthOption{server.WithReadinessCheck("postgres", db.Healthcheck(pool))},
		nil
}

// openCache returns a Redis-backed tenant cache shared across instances
// when REDIS_URL is set and a per-process memory cache otherwise.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache[tenant.Tenant], []server.Option, []server.HealthOption, error) {
	if cfg.RedisURL == "" {
		c := cache.NewMemory[tenant.Tenant](
			cache.WithDefaultTTL(cfg.CacheTTL),
			cache.WithMaxEntries(cfg.CacheMaxEntries),
		)
		return c, []server.Option{server.WithShutdownHook(closeHook(c))}, nil, nil
	}

	client, err := redis.Open(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}

	c := cache.NewRedis[tenant.Tenant](client, nil,
		cache.WithPrefix("churchconnect:tenant"),
		cache.WithRedisDefaultTTL(cfg.CacheTTL),
	)
	return c,
		[]server.Option{server.WithShutdownHook(redis.Shutdown(client))},
		[]server.HealthOption{server.WithReadinessCheck("redis", redis.Healthcheck(client))},
		nil
}

func closeHook(c interface{ Close() error }) func(context.Context) error {
	return func(context.Context) error {
		return c.Close()
	}
}
