package offline

import (
	"context"
	"strings"

	"github.com/fwojciec/rescribe"
)

// Ensure SearchService implements rescribe.SearchService at compile time.
var _ rescribe.SearchService = (*SearchService)(nil)

// SearchService returns a fixed list of reference URLs regardless of the
// topic. It applies the same host exclusion and limit semantics as a live
// search provider.
type SearchService struct {
	urls []string
}

// NewSearchService creates a SearchService that always returns the given
// URLs, in order.
func NewSearchService(urls ...string) *SearchService {
	return &SearchService{urls: urls}
}

// FindReferences returns up to limit of the configured URLs, excluding any
// that contain excludeHost.
func (s *SearchService) FindReferences(ctx context.Context, topic string, excludeHost string, limit int) ([]rescribe.Reference, error) {
	if topic == "" {
		return nil, rescribe.Errorf(rescribe.EINVALID, "search topic required")
	}
	refs := []rescribe.Reference{}
	for _, u := range s.urls {
		if excludeHost != "" && strings.Contains(u, excludeHost) {
			continue
		}
		refs = append(refs, rescribe.Reference{URL: u, Rank: len(refs) + 1})
		if len(refs) == limit {
			break
		}
	}
	return refs, nil
}
