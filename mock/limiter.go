package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure DomainLimiter implements rescribe.DomainLimiter at compile time.
var _ rescribe.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of rescribe.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
