package canonical

import (
	"errors"
	"net/url"
	"strings"
)

// Environment is the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment maps a configuration value to an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case Development:
		return Development, nil
	case Production:
		return Production, nil
	default:
		return "", errors.Join(ErrUnknownEnvironment, errors.New(s))
	}
}

// Generator builds canonical URLs. It is immutable and safe for concurrent use.
type Generator struct {
	scheme     string
	appHost    string
	mainDomain string
}

// New validates the configuration and returns a Generator.
// baseURL is the application URL (scheme://host[:port]) tenant subdomains
// are built on; mainDomain is the host[:port] of the main site.
func New(baseURL, mainDomain string, env Environment) (*Generator, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrEmptyBaseURL
	}
	mainDomain = strings.TrimSpace(mainDomain)
	if mainDomain == "" {
		return nil, ErrEmptyMainDomain
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidBaseURL
	}

	g := &Generator{
		appHost:    strings.ToLower(u.Host),
		mainDomain: strings.ToLower(mainDomain),
	}

	switch env {
	case Development:
		g.scheme = "http"
	case Production:
		g.scheme = "https"
	default:
		return nil, errors.Join(ErrUnknownEnvironment, errors.New(string(env)))
	}

	return g, nil
}

// Scheme returns the network scheme used for every generated URL.
func (g *Generator) Scheme() string {
	return g.scheme
}

// CanonicalURL returns the bare main-site URL, e.g. "https://example.com".
func (g *Generator) CanonicalURL() string {
	return g.scheme + "://" + g.mainDomain
}

// TenantURL returns the subdomain-qualified URL of a tenant,
// e.g. "https://stmarys.example.com".
func (g *Generator) TenantURL(slug string) string {
	return g.scheme + "://" + slug + "." + g.appHost
}
