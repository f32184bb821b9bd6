// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/churchconnect/edge/internal/server"
	"github.com/churchconnect/edge/pkg/canonical"
	"github.com/churchconnect/edge/pkg/db"
	"github.com/churchconnect/edge/pkg/logger"
	"github.com/churchconnect/edge/pkg/tenant"
)

// Development fallbacks for MAIN_DOMAIN and APP_URL.
const (
	DevMainDomain = "localhost:3000"
	DevAppURL     = "http://localhost:3000"
)

// Config is the complete process configuration.
type Config struct {
	AppEnv     string `env:"APP_ENV,required"`
	MainDomain string `env:"MAIN_DOMAIN"`
	AppURL     string `env:"APP_URL"`

	Server server.Config
	Log    logger.Config
	Sentry logger.SentryConfig
	DB     db.Config

	// Empty keeps the tenant cache in process memory.
	RedisURL        string        `env:"REDIS_URL"`
	CacheTTL        time.Duration `env:"TENANT_CACHE_TTL" envDefault:"1m"`
	CacheMaxEntries int           `env:"TENANT_CACHE_MAX_ENTRIES" envDefault:"10000"`

	// YAML seed, loaded into the memory directory or upserted into Postgres.
	SeedFile string `env:"TENANT_SEED_FILE"`

	Exclusions tenant.Exclusions `envPrefix:"TENANCY_EXCLUDE_"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// Environment is APP_ENV parsed by Validate.
	Environment canonical.Environment
}

// Load reads .env files (all optional; defaults to ".env") and then the
// process environment, and validates the result.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrLoadDotenv, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse builds a Config from an explicit environment instead of the
// process one.
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.Join(ErrParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate parses APP_ENV, applies development fallbacks and checks that
// the canonical URL configuration is usable.
func (c *Config) Validate() error {
	e, err := canonical.ParseEnvironment(c.AppEnv)
	if err != nil {
		return errors.Join(ErrInvalid, err)
	}
	c.Environment = e

	if c.MainDomain == "" {
		if e != canonical.Development {
			return ErrMissingMainDomain
		}
		c.MainDomain = DevMainDomain
	}
	if c.AppURL == "" {
		if e != canonical.Development {
			return ErrMissingAppURL
		}
		c.AppURL = DevAppURL
	}

	if _, err := canonical.New(c.AppURL, c.MainDomain, e); err != nil {
		return errors.Join(ErrInvalid, err)
	}
	if c.CacheTTL < 0 {
		return errors.Join(ErrInvalid, errors.New("TENANT_CACHE_TTL must not be negative"))
	}
	return nil
}

// IsDevelopment reports whether APP_ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == canonical.Development
}
