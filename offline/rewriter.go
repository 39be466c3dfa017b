package offline

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/rescribe"
)

// RewriteMarker is embedded in every offline rewrite so downstream checks
// can tell a templated rewrite from a model-generated one.
const RewriteMarker = "<!-- offline rewrite -->"

// snippetLen bounds the per-reference snippet in the templated body.
const snippetLen = 300

// Ensure Rewriter implements rescribe.Rewriter at compile time.
var _ rescribe.Rewriter = (*Rewriter)(nil)

// Rewriter produces a deterministic templated rewrite of an article. The
// output keeps the original body, adds a short snippet per reference, and
// closes with a References section.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite returns a templated HTML body built from the article and the
// references.
func (r *Rewriter) Rewrite(ctx context.Context, article *rescribe.Article, refs []*rescribe.ReferenceArticle) (string, error) {
	if article == nil {
		return "", rescribe.Errorf(rescribe.EINVALID, "article required")
	}
	if article.Body == "" {
		return "", rescribe.Errorf(rescribe.EINVALID, "article body required")
	}

	var sb strings.Builder
	sb.WriteString(RewriteMarker)
	sb.WriteString("\n")
	sb.WriteString(article.Body)

	for _, ref := range refs {
		title := ref.Title
		if title == "" {
			title = ref.URL
		}
		fmt.Fprintf(&sb, "\n<h2>Related: %s</h2>\n<p>%s</p>", title, snippet(ref.Text))
	}

	if len(refs) > 0 {
		sb.WriteString("\n<h2>References</h2>\n<ul>")
		for _, ref := range refs {
			fmt.Fprintf(&sb, "\n<li><a href=%q>%s</a></li>", ref.URL, ref.URL)
		}
		sb.WriteString("\n</ul>")
	}

	return sb.String(), nil
}

func snippet(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= snippetLen {
		return string(runes)
	}
	return string(runes[:snippetLen])
}
