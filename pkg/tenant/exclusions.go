package tenant

import "strings"

// Exclusions lists request paths that bypass tenant resolution and are
// served as-is regardless of host.
type Exclusions struct {
	// Prefixes match a path equal to the prefix or continuing with "/".
	Prefixes []string `env:"PREFIXES" envSeparator:"," envDefault:"/api,/_next/static,/_next/image,/static,/health,/metrics"`
	// Paths match exactly.
	Paths []string `env:"PATHS" envSeparator:"," envDefault:"/favicon.ico,/robots.txt"`
	// Extensions match the file suffix, case-insensitively.
	Extensions []string `env:"EXTENSIONS" envSeparator:"," envDefault:".svg,.png,.jpg,.jpeg,.gif,.webp"`
}

// DefaultExclusions mirrors the env defaults for callers that build
// configuration in code.
func DefaultExclusions() Exclusions {
	return Exclusions{
		Prefixes:   []string{"/api", "/_next/static", "/_next/image", "/static", "/health", "/metrics"},
		Paths:      []string{"/favicon.ico", "/robots.txt"},
		Extensions: []string{".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp"},
	}
}

// Match reports whether path bypasses tenant resolution.
func (e Exclusions) Match(path string) bool {
	for _, p := range e.Paths {
		if path == p {
			return true
		}
	}

	for _, prefix := range e.Prefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	lower := strings.ToLower(path)
	for _, ext := range e.Extensions {
		if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}

	return false
}
