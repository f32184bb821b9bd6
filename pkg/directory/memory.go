package directory

import (
	"context"

	"github.com/churchconnect/edge/pkg/tenant"
)

// Memory is a read-only directory over a fixed set of records.
type Memory struct {
	bySlug map[string]tenant.Tenant
}

// NewMemory indexes tenants by slug. Later duplicates win.
func NewMemory(tenants ...tenant.Tenant) *Memory {
	m := &Memory{bySlug: make(map[string]tenant.Tenant, len(tenants))}
	for _, t := range tenants {
		m.bySlug[t.Slug] = t
	}
	return m
}

// FindActiveBySlug implements tenant.Directory.
func (m *Memory) FindActiveBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, ok := m.bySlug[slug]
	if !ok || !t.Active {
		return nil, tenant.ErrNotFound
	}
	return &t, nil
}

// Len returns the number of records, inactive ones included.
func (m *Memory) Len() int {
	return len(m.bySlug)
}

var _ tenant.Directory = (*Memory)(nil)
