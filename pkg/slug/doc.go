// Package slug turns church names into URL-safe subdomain labels.
//
//	slug.Make("St. Mary's Church")  // "st-marys-church"
//	slug.Make("Église Saint-Étienne") // "eglise-saint-etienne"
//	slug.Valid("st-marys")          // true
//
// Slugs contain only a-z, 0-9 and single hyphens, never start or end with a
// hyphen, and are at most 63 characters long so they fit a DNS label.
package slug
