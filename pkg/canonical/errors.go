package canonical

import "errors"

var (
	ErrEmptyBaseURL       = errors.New("canonical: empty base URL")
	ErrInvalidBaseURL     = errors.New("canonical: invalid base URL")
	ErrEmptyMainDomain    = errors.New("canonical: empty main domain")
	ErrUnknownEnvironment = errors.New("canonical: unknown environment")
)
