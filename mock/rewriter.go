package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure Rewriter implements rescribe.Rewriter at compile time.
var _ rescribe.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of rescribe.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, article *rescribe.Article, refs []*rescribe.ReferenceArticle) (string, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, article *rescribe.Article, refs []*rescribe.ReferenceArticle) (string, error) {
	return r.RewriteFn(ctx, article, refs)
}
