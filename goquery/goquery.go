// Package goquery provides CSS-selector based implementations of the
// rescribe listing and extraction heuristics.
package goquery

import (
	"net/url"
	"strings"
)

// resolveURL resolves a relative href against a base URL.
// Returns "" for unparseable hrefs.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink reports whether an href uses a non-HTTP scheme
// (javascript:, mailto:, tel:, etc.).
func isNonHTTPLink(href string) bool {
	i := strings.Index(href, ":")
	if i < 0 {
		return false
	}
	scheme := strings.ToLower(href[:i])
	return scheme != "http" && scheme != "https"
}
