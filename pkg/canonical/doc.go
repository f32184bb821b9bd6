// Package canonical builds the public URLs of the main site and of tenant
// subdomains from static deployment configuration.
//
// The only thing that varies between environments is the network scheme:
// development serves plain http, production serves https.
//
//	gen, err := canonical.New("https://example.com", "example.com", canonical.Production)
//	if err != nil {
//	    return err // fail at startup, never per request
//	}
//	gen.CanonicalURL()       // "https://example.com"
//	gen.TenantURL("stmarys") // "https://stmarys.example.com"
package canonical
