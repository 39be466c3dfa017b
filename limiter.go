package rescribe

import "context"

// DomainLimiter paces successive remote requests to a domain.
// The pipeline fetches one page at a time; the limiter enforces the
// minimum interval between consecutive fetches as an explicit scheduling
// policy rather than an ad hoc pause.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
