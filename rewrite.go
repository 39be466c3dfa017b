package rescribe

import (
	"context"
	"strings"
)

// ReferenceArticle is the extracted content of a reference page,
// as handed to a Rewriter.
type ReferenceArticle struct {
	URL   string
	Title string
	Text  string
}

// Rewriter produces a new article body from an original article and a set
// of reference extractions.
type Rewriter interface {
	// Rewrite returns a new HTML body for the article, following the
	// structure and tone of the references while preserving facts.
	Rewrite(ctx context.Context, article *Article, refs []*ReferenceArticle) (string, error)
}

// AppendReferences appends a canonical "References" listing of the given
// URLs to a body. Callers apply this to every rewrite result regardless of
// whether the rewriter's own output already names its sources, so link
// provenance survives independent of model output quality.
func AppendReferences(body string, urls []string) string {
	if len(urls) == 0 {
		return body
	}
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\nReferences:\n")
	for _, u := range urls {
		b.WriteString(u)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
