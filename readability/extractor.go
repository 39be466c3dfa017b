// Package readability wraps go-readability for main-content extraction.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/rescribe"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements rescribe.Extractor at compile time.
var _ rescribe.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// The pageURL resolves relative links inside the extracted content.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*rescribe.ExtractResult, error) {
	if rawHTML == "" {
		return nil, rescribe.Errorf(rescribe.EINVALID, "empty HTML input")
	}

	var parsedURL *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			parsedURL = u
		}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return nil, err
	}

	if article.Title == "" || strings.TrimSpace(article.Content) == "" {
		return nil, rescribe.Errorf(rescribe.ENOTFOUND, "no extractable content in %s", pageURL)
	}

	return &rescribe.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        strings.TrimSpace(article.TextContent),
	}, nil
}
