package mock

import "github.com/fwojciec/rescribe"

// Ensure Extractor implements rescribe.Extractor at compile time.
var _ rescribe.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of rescribe.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string, pageURL string) (*rescribe.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string, pageURL string) (*rescribe.ExtractResult, error) {
	return e.ExtractFn(rawHTML, pageURL)
}
