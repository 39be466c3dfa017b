package rescribe

import "context"

// SnapshotStore persists run artifacts to a local directory for audit
// and replay.
type SnapshotStore interface {
	// SaveScrape writes a timestamped snapshot of extraction results and
	// returns the path of the snapshot file.
	SaveScrape(ctx context.Context, articles []*Article) (string, error)

	// SavePosted writes a timestamped snapshot of storage API responses
	// from a successful publish and returns the path of the snapshot file.
	SavePosted(ctx context.Context, articles []*Article) (string, error)
}
