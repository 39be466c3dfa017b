package rescribe

import "time"

// Default configuration values.
const (
	DefaultRequestTimeout = 20 * time.Second
	DefaultFetchInterval  = 1200 * time.Millisecond
	DefaultLinkLimit      = 5
	DefaultReferenceLimit = 2
)

// Config holds the explicit pipeline configuration assembled at startup.
// Nothing in the pipeline reads the ambient environment; credentials and
// toggles all arrive through this value.
type Config struct {
	// APIBase is the base URL of the article storage API.
	APIBase string

	// Offline substitutes deterministic local implementations for the
	// search and rewrite services.
	Offline bool

	// DryRun suppresses all writes to the storage API.
	DryRun bool

	// RequestTimeout bounds each individual fetch.
	RequestTimeout time.Duration

	// RetryDelays are the backoff delays between fetch retries.
	RetryDelays []time.Duration

	// FetchInterval is the minimum pause between consecutive remote
	// fetches to the same domain.
	FetchInterval time.Duration

	// LinkLimit caps the number of article links collected per run.
	LinkLimit int

	// ReferenceLimit caps the number of reference pages per enrichment.
	ReferenceLimit int
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: DefaultRequestTimeout,
		RetryDelays:    []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
		FetchInterval:  DefaultFetchInterval,
		LinkLimit:      DefaultLinkLimit,
		ReferenceLimit: DefaultReferenceLimit,
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return Errorf(ECONFIG, "request timeout must be positive")
	}
	if c.LinkLimit <= 0 {
		return Errorf(ECONFIG, "link limit must be positive")
	}
	if c.ReferenceLimit < 0 {
		return Errorf(ECONFIG, "reference limit must not be negative")
	}
	return nil
}
