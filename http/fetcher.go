// Package http provides HTTP-based implementations of the rescribe fetch,
// storage API, and sitemap discovery interfaces.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/rescribe"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent is a browser-like client identity. Some origins reject
// requests carrying the Go default user agent.
const DefaultUserAgent = "Mozilla/5.0 (compatible; rescribe/1.0)"

// Ensure Fetcher implements rescribe.Fetcher at compile time.
var _ rescribe.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Failures are classified by retryability: transient failures (network
// errors, 5xx, 429) carry the EUNAVAILABLE code so the retry layer knows
// another attempt may succeed; other HTTP failures surface immediately.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", rescribe.Errorf(rescribe.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		// Connection resets, timeouts and DNS failures are transient.
		return "", rescribe.Errorf(rescribe.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return "", rescribe.Errorf(rescribe.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode == http.StatusNotFound:
		return "", rescribe.Errorf(rescribe.ENOTFOUND, "HTTP 404 for %s", url)
	default:
		return "", rescribe.Errorf(rescribe.EINVALID, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rescribe.Errorf(rescribe.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}
