package directory

import (
	"context"
	"errors"
	"time"

	"github.com/churchconnect/edge/pkg/tenant"
)

// LookupObserver receives the latency and outcome of each lookup.
type LookupObserver interface {
	ObserveLookup(d time.Duration, outcome string)
}

// Lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Instrumented reports every lookup of next to an observer.
type Instrumented struct {
	next     tenant.Directory
	observer LookupObserver
}

// NewInstrumented wraps next.
func NewInstrumented(next tenant.Directory, observer LookupObserver) *Instrumented {
	return &Instrumented{next: next, observer: observer}
}

// FindActiveBySlug implements tenant.Directory.
func (d *Instrumented) FindActiveBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	start := time.Now()
	t, err := d.next.FindActiveBySlug(ctx, slug)

	outcome := OutcomeFound
	switch {
	case errors.Is(err, tenant.ErrNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	}
	d.observer.ObserveLookup(time.Since(start), outcome)

	return t, err
}

var _ tenant.Directory = (*Instrumented)(nil)
