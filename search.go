package rescribe

import "context"

// Reference is an external page that covers the same topic as an article.
type Reference struct {
	// URL is the absolute URL of the reference page.
	URL string

	// Rank is the position in the search results, starting at 1.
	Rank int
}

// SearchService finds reference pages for a topic via a search provider.
type SearchService interface {
	// FindReferences queries for topic and returns up to limit references
	// in ranked order, excluding any result whose link contains
	// excludeHost. Fewer than limit qualifying results is not an error.
	FindReferences(ctx context.Context, topic string, excludeHost string, limit int) ([]Reference, error)
}
