package directory

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/churchconnect/edge/pkg/tenant"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var churchColumns = []string{
	"id::text",
	"slug",
	"name",
	"COALESCE(description, '')",
	"email",
	"COALESCE(phone, '')",
	"COALESCE(address, '')",
	"COALESCE(website, '')",
	"COALESCE(logo_url, '')",
	"COALESCE(primary_color, '')",
	"COALESCE(secondary_color, '')",
	"subscription_status",
	"is_active",
	"created_at",
	"updated_at",
}

// Postgres reads tenants from the churches table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a directory backed by pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// FindActiveBySlug implements tenant.Directory.
func (p *Postgres) FindActiveBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	query, args, err := psql.Select(churchColumns...).
		From("churches").
		Where(sq.Eq{"slug": slug, "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}

	var t tenant.Tenant
	var status string
	err = p.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Slug, &t.Name, &t.Description, &t.Email, &t.Phone, &t.Address,
		&t.Website, &t.LogoURL, &t.PrimaryColor, &t.SecondaryColor, &status,
		&t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenant.ErrNotFound
		}
		return nil, errors.Join(ErrLookupFailed, err)
	}
	t.SubscriptionStatus = tenant.SubscriptionStatus(status)

	return &t, nil
}

// Seed upserts tenants by slug in a single transaction.
func Seed(ctx context.Context, pool *pgxpool.Pool, tenants []tenant.Tenant) error {
	if len(tenants) == 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return errors.Join(ErrSeedFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, t := range tenants {
		query, args, err := psql.Insert("churches").
			Columns("slug", "name", "description", "email", "phone", "address", "website",
				"logo_url", "primary_color", "secondary_color", "subscription_status", "is_active").
			Values(t.Slug, t.Name, t.Description, t.Email, t.Phone, t.Address, t.Website,
				t.LogoURL, t.PrimaryColor, t.SecondaryColor, string(t.SubscriptionStatus), t.Active).
			Suffix(`ON CONFLICT (slug) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				email = EXCLUDED.email,
				phone = EXCLUDED.phone,
				address = EXCLUDED.address,
				website = EXCLUDED.website,
				logo_url = EXCLUDED.logo_url,
				primary_color = EXCLUDED.primary_color,
				secondary_color = EXCLUDED.secondary_color,
				subscription_status = EXCLUDED.subscription_status,
				is_active = EXCLUDED.is_active,
				updated_at = now()`).
			ToSql()
		if err != nil {
			return errors.Join(ErrSeedFailed, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return errors.Join(ErrSeedFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Join(ErrSeedFailed, err)
	}
	return nil
}

var _ tenant.Directory = (*Postgres)(nil)
