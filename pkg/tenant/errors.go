package tenant

import "errors"

// ErrNotFound is returned by a Directory when no active tenant matches a slug.
var ErrNotFound = errors.New("tenant: not found")
