package rescribe

import (
	"context"
	"regexp"
)

// articlePathRE matches URL paths that conventionally hold articles.
var articlePathRE = regexp.MustCompile(`/(?:blogs?|posts?|articles?)/`)

// IsArticlePath reports whether an href looks like an article URL based on
// conventional path segments (/blog/, /blogs/, /post/, /posts/, /article/,
// /articles/).
func IsArticlePath(href string) bool {
	return articlePathRE.MatchString(href)
}

// Paginator resolves the last page of a paginated blog listing.
type Paginator interface {
	// LastPageURL returns the absolute URL of the last listing page.
	// If no pagination is detected it returns baseURL unchanged; absence
	// of pagination is degradation, not failure.
	//
	// When several pagination anchors share the maximum page number the
	// first one encountered wins. This tie-break is an accepted ambiguity
	// of the heuristic.
	LastPageURL(html string, baseURL string) (string, error)
}

// LinkCollector enumerates candidate article URLs on a listing page.
type LinkCollector interface {
	// CollectLinks returns up to limit absolute article URLs found in the
	// listing markup, deduplicated by final URL string. Order follows
	// collection order, not publication order. A listing with no matching
	// anchors yields an empty slice, not an error.
	CollectLinks(html string, baseURL string, limit int) ([]string, error)
}

// SitemapService discovers article URLs from a site's sitemap.
// Used as a fallback when listing-page heuristics find nothing.
type SitemapService interface {
	// DiscoverArticleURLs finds article URLs from the site's sitemap,
	// filtered to article-path patterns. Returns an empty slice (not nil)
	// if no sitemaps are found.
	DiscoverArticleURLs(ctx context.Context, baseURL string) ([]string, error)
}
