package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/rescribe"
	"golang.org/x/time/rate"
)

var _ rescribe.DomainLimiter = (*IntervalLimiter)(nil)

// IntervalLimiter enforces a minimum interval between consecutive requests
// to the same domain using per-domain token buckets. A burst of 1 means no
// bursting: every fetch after the first waits out the full interval.
type IntervalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewIntervalLimiter creates an IntervalLimiter with the given minimum
// interval between requests per domain.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (l *IntervalLimiter) Wait(ctx context.Context, domain string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(l.interval), 1)
		l.limiters[domain] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
