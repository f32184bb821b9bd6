// Package sanitizer cleans church-supplied content before it is rendered.
package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy *bluemonday.Policy
	initOnce   sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// basic formatting for church descriptions
		richPolicy = bluemonday.NewPolicy()
		richPolicy.AllowStandardURLs()
		richPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"blockquote",
		)
		richPolicy.AllowAttrs("href").OnElements("a")
		richPolicy.RequireNoFollowOnLinks(true)
		richPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// RichText keeps paragraphs, emphasis, lists and links, and strips
// everything else including scripts, event handlers and javascript: URLs.
// The result is safe to embed in HTML unescaped.
func RichText(s string) string {
	initPolicies()
	return richPolicy.Sanitize(s)
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color returns c if it is a #rgb or #rrggbb colour and fallback otherwise.
// Colours end up inside <style>, so nothing else is let through.
func Color(c, fallback string) string {
	if hexColor.MatchString(c) {
		return c
	}
	return fallback
}
