package directory

import "errors"

var (
	ErrLookupFailed  = errors.New("directory: lookup failed")
	ErrReadSeed      = errors.New("directory: failed to read seed file")
	ErrInvalidSeed   = errors.New("directory: invalid seed")
	ErrSeedFailed    = errors.New("directory: failed to seed tenants")
	ErrDuplicateSlug = errors.New("directory: duplicate slug")
)
