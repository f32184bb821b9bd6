package hostrouter

import "net/http"

// GetDomain returns the normalized domain from the request Host header.
//
// Examples:
//
//	"example.com:8080" -> "example.com"
//	"[::1]:8080" -> "[::1]"
//	"Example.COM" -> "example.com"
func GetDomain(r *http.Request) string {
	return NormalizeHost(r.Host)
}

// GetSubdomain returns the tenant candidate of the request relative to
// mainDomain, or an empty string when the request targets the main site.
func GetSubdomain(r *http.Request, mainDomain string) string {
	slug, _ := Parse(r.Host, mainDomain)
	return slug
}
