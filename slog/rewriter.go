package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rescribe"
)

// Ensure LoggingRewriter implements rescribe.Rewriter.
var _ rescribe.Rewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a Rewriter with operation logging.
type LoggingRewriter struct {
	next   rescribe.Rewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next rescribe.Rewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter and logs the operation.
func (r *LoggingRewriter) Rewrite(ctx context.Context, article *rescribe.Article, refs []*rescribe.ReferenceArticle) (body string, err error) {
	defer func(begin time.Time) {
		title := ""
		if article != nil {
			title = article.Title
		}
		r.logger.Info("rewrite",
			"title", title,
			"refs", len(refs),
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rewrite(ctx, article, refs)
}
