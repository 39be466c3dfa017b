package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rescribe"
)

// contentSelectors is the fixed priority list of content containers tried
// by the heuristic extractor.
var contentSelectors = []string{"article", ".post-content", ".entry-content", ".article-content", "#content"}

// Ensure Extractor implements rescribe.Extractor at compile time.
var _ rescribe.Extractor = (*Extractor)(nil)

// Extractor extracts article content using fixed selector heuristics.
// It is the last tier of the extraction chain, used when the
// readability-style extractors yield nothing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// The title is the first h1; the body is the first matching content
// container, or every paragraph joined by blank lines when none match.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*rescribe.ExtractResult, error) {
	if rawHTML == "" {
		return nil, rescribe.Errorf(rescribe.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, rescribe.Errorf(rescribe.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())

	var content string
	for _, sel := range contentSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if h, err := node.Html(); err == nil {
			content = h
		}
		break
	}

	if strings.TrimSpace(content) == "" {
		var paragraphs []string
		doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
			if h, err := sel.Html(); err == nil {
				paragraphs = append(paragraphs, h)
			}
		})
		content = strings.Join(paragraphs, "\n\n")
	}

	if title == "" || strings.TrimSpace(content) == "" {
		return nil, rescribe.Errorf(rescribe.ENOTFOUND, "no extractable content in %s", pageURL)
	}

	return &rescribe.ExtractResult{
		Title:       title,
		ContentHTML: content,
		Text:        textContent(content),
	}, nil
}

// textContent derives trimmed plain text from an HTML fragment.
func textContent(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Text())
}
