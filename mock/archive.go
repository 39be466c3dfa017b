package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure ArchiveService implements rescribe.ArchiveService at compile time.
var _ rescribe.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of rescribe.ArchiveService.
type ArchiveService struct {
	CreateEntryFn          func(ctx context.Context, entry *rescribe.ArchiveEntry) error
	FindEntryBySourceURLFn func(ctx context.Context, sourceURL string) (*rescribe.ArchiveEntry, error)
	SourceURLsFn           func(ctx context.Context) ([]string, error)
	MarkPublishedFn        func(ctx context.Context, id string, publishedID int) error
}

func (s *ArchiveService) CreateEntry(ctx context.Context, entry *rescribe.ArchiveEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *ArchiveService) FindEntryBySourceURL(ctx context.Context, sourceURL string) (*rescribe.ArchiveEntry, error) {
	return s.FindEntryBySourceURLFn(ctx, sourceURL)
}

func (s *ArchiveService) SourceURLs(ctx context.Context) ([]string, error) {
	return s.SourceURLsFn(ctx)
}

func (s *ArchiveService) MarkPublished(ctx context.Context, id string, publishedID int) error {
	return s.MarkPublishedFn(ctx, id, publishedID)
}
