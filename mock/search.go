package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure SearchService implements rescribe.SearchService at compile time.
var _ rescribe.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of rescribe.SearchService.
type SearchService struct {
	FindReferencesFn func(ctx context.Context, topic string, excludeHost string, limit int) ([]rescribe.Reference, error)
}

func (s *SearchService) FindReferences(ctx context.Context, topic string, excludeHost string, limit int) ([]rescribe.Reference, error) {
	return s.FindReferencesFn(ctx, topic, excludeHost, limit)
}
