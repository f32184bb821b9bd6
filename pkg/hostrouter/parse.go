package hostrouter

import "strings"

// Loopback is the host label that always resolves to the main site.
const Loopback = "localhost"

// Parse returns the tenant candidate encoded in host relative to mainDomain.
// ok is false when the host is the main domain, the loopback host, or does
// not carry more labels than the main domain. Parse never fails: malformed
// input simply yields no candidate.
func Parse(host, mainDomain string) (slug string, ok bool) {
	h := NormalizeHost(host)
	main := NormalizeHost(mainDomain)

	if h == main || h == Loopback {
		return "", false
	}

	labels := strings.Split(h, ".")
	if len(labels) <= strings.Count(main, ".")+1 {
		return "", false
	}

	if labels[0] == "" {
		return "", false
	}
	return labels[0], true
}

// IsMainDomain reports whether host serves the main site, i.e. carries no
// tenant candidate.
func IsMainDomain(host, mainDomain string) bool {
	_, ok := Parse(host, mainDomain)
	return !ok
}

// NormalizeHost strips the port and a trailing root dot, and lowercases.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		// "[::1]" has its last colon inside the brackets
		if !strings.Contains(host[idx:], "]") {
			host = host[:idx]
		}
	}
	host = strings.TrimSuffix(host, ".")
	return strings.ToLower(host)
}
