package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLabelLength is the longest DNS label.
const MaxLabelLength = 63

// Option configures Make.
type Option func(*options)

type options struct {
	reserved  map[string]struct{}
	maxLength int
}

// MaxLength truncates slugs to n characters (capped at MaxLabelLength).
func MaxLength(n int) Option {
	return func(o *options) {
		if n > 0 && n < MaxLabelLength {
			o.maxLength = n
		}
	}
}

// Reserved makes Make return an empty string for the given slugs.
func Reserved(slugs ...string) Option {
	return func(o *options) {
		for _, s := range slugs {
			o.reserved[strings.ToLower(s)] = struct{}{}
		}
	}
}

// Make builds a slug from text. Apostrophes are dropped so "Mary's" becomes
// "marys"; every other run of non-alphanumerics becomes one hyphen. An empty
// result means text held nothing usable.
func Make(text string, opts ...Option) string {
	o := options{maxLength: MaxLabelLength, reserved: map[string]struct{}{}}
	for _, opt := range opts {
		opt(&o)
	}

	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r == '\'' || r == '’':
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	s := b.String()
	if len(s) > o.maxLength {
		s = strings.TrimRight(s[:o.maxLength], "-")
	}
	if _, ok := o.reserved[s]; ok {
		return ""
	}
	return s
}

// Valid reports whether s is already a well-formed slug.
func Valid(s string) bool {
	if s == "" || len(s) > MaxLabelLength {
		return false
	}
	if s[0] == '-' || s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}
