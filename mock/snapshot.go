package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure SnapshotStore implements rescribe.SnapshotStore at compile time.
var _ rescribe.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of rescribe.SnapshotStore.
type SnapshotStore struct {
	SaveScrapeFn func(ctx context.Context, articles []*rescribe.Article) (string, error)
	SavePostedFn func(ctx context.Context, articles []*rescribe.Article) (string, error)
}

func (s *SnapshotStore) SaveScrape(ctx context.Context, articles []*rescribe.Article) (string, error) {
	return s.SaveScrapeFn(ctx, articles)
}

func (s *SnapshotStore) SavePosted(ctx context.Context, articles []*rescribe.Article) (string, error) {
	return s.SavePostedFn(ctx, articles)
}
