package scrape

import (
	"context"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/rescribe"
)

// Bloom filter sizing for the seen-URL prefilter.
const (
	seenExpectedURLs      = 10000
	seenFalsePositiveRate = 0.01
)

// SeenFilter answers whether a source URL was already scraped in a prior
// run. A Bloom filter seeded from the archive screens out the common case
// without a query; positives are confirmed against the archive because the
// filter can report false positives and a false skip would silently drop
// an article.
type SeenFilter struct {
	filter  *bloom.BloomFilter
	archive rescribe.ArchiveService
}

// NewSeenFilter builds a SeenFilter seeded with the archive's source URLs.
func NewSeenFilter(ctx context.Context, archive rescribe.ArchiveService) (*SeenFilter, error) {
	urls, err := archive.SourceURLs(ctx)
	if err != nil {
		return nil, err
	}

	filter := bloom.NewWithEstimates(seenExpectedURLs, seenFalsePositiveRate)
	for _, u := range urls {
		filter.AddString(u)
	}

	return &SeenFilter{filter: filter, archive: archive}, nil
}

// Seen reports whether the URL is already archived.
func (f *SeenFilter) Seen(ctx context.Context, sourceURL string) (bool, error) {
	if !f.filter.TestString(sourceURL) {
		return false, nil
	}

	_, err := f.archive.FindEntryBySourceURL(ctx, sourceURL)
	if rescribe.ErrorCode(err) == rescribe.ENOTFOUND {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add records a URL in the prefilter for the current run.
func (f *SeenFilter) Add(sourceURL string) {
	f.filter.AddString(sourceURL)
}
