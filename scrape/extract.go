package scrape

import "github.com/fwojciec/rescribe"

// Ensure ChainExtractor implements rescribe.Extractor at compile time.
var _ rescribe.Extractor = (*ChainExtractor)(nil)

// ChainExtractor tries a sequence of extractors in order and returns the
// first successful result. Extraction strategies are layered from most to
// least precise; a failure in one tier falls through to the next.
type ChainExtractor struct {
	extractors []rescribe.Extractor
}

// NewChainExtractor creates a ChainExtractor over the given extractors.
func NewChainExtractor(extractors ...rescribe.Extractor) *ChainExtractor {
	return &ChainExtractor{extractors: extractors}
}

// Extract runs each extractor in order until one succeeds. If every tier
// fails the error from the last tier is returned.
func (c *ChainExtractor) Extract(rawHTML string, pageURL string) (*rescribe.ExtractResult, error) {
	if len(c.extractors) == 0 {
		return nil, rescribe.Errorf(rescribe.EINTERNAL, "no extractors configured")
	}

	var lastErr error
	for _, ext := range c.extractors {
		result, err := ext.Extract(rawHTML, pageURL)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
