// Package hostrouter extracts tenant candidates from request hosts.
//
// A tenant candidate (slug) is found purely structurally: the host is
// compared to the configured main domain by label count, and when the host
// has more labels the leftmost one is the candidate. Whether the candidate
// names an existing tenant is decided later by a directory lookup.
//
// # Host Normalisation
//
// Ports are never part of identity. Both the host and the main domain are
// stripped of a trailing ":<port>", a trailing root dot, and lowercased
// before comparison. IPv6 literals keep their brackets:
//
//	"Example.COM:8080" -> "example.com"
//	"[::1]:8080"       -> "[::1]"
//
// # Usage
//
//	slug, ok := hostrouter.Parse("stmarys.example.com", "example.com")
//	// slug == "stmarys", ok == true
//
//	_, ok = hostrouter.Parse("localhost:3000", "example.com")
//	// ok == false: loopback always serves the main site
//
// # Known Limitation
//
// Multi-level subdomains collapse to their leftmost label:
// "a.b.example.com" yields "a". Nested tenancy is not distinguished.
package hostrouter
