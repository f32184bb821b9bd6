package config

import "errors"

var (
	ErrLoadDotenv        = errors.New("config: failed to load .env file")
	ErrParseEnv          = errors.New("config: failed to parse environment")
	ErrMissingMainDomain = errors.New("config: MAIN_DOMAIN is required in production")
	ErrMissingAppURL     = errors.New("config: APP_URL is required in production")
	ErrInvalid           = errors.New("config: invalid configuration")
)
