package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rescribe"
)

// Ensure LoggingSearchService implements rescribe.SearchService.
var _ rescribe.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with query logging.
type LoggingSearchService struct {
	next   rescribe.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next rescribe.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// FindReferences delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) FindReferences(ctx context.Context, topic string, excludeHost string, limit int) (refs []rescribe.Reference, err error) {
	defer func(begin time.Time) {
		s.logger.Info("reference search",
			"topic", topic,
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindReferences(ctx, topic, excludeHost, limit)
}
