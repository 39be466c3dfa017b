package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure Fetcher implements rescribe.Fetcher at compile time.
var _ rescribe.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rescribe.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
