package mock

import (
	"context"

	"github.com/fwojciec/rescribe"
)

// Ensure mocks implement the listing interfaces at compile time.
var (
	_ rescribe.Paginator      = (*Paginator)(nil)
	_ rescribe.LinkCollector  = (*LinkCollector)(nil)
	_ rescribe.SitemapService = (*SitemapService)(nil)
)

// Paginator is a mock implementation of rescribe.Paginator.
type Paginator struct {
	LastPageURLFn func(html string, baseURL string) (string, error)
}

func (p *Paginator) LastPageURL(html string, baseURL string) (string, error) {
	return p.LastPageURLFn(html, baseURL)
}

// LinkCollector is a mock implementation of rescribe.LinkCollector.
type LinkCollector struct {
	CollectLinksFn func(html string, baseURL string, limit int) ([]string, error)
}

func (c *LinkCollector) CollectLinks(html string, baseURL string, limit int) ([]string, error) {
	return c.CollectLinksFn(html, baseURL, limit)
}

// SitemapService is a mock implementation of rescribe.SitemapService.
type SitemapService struct {
	DiscoverArticleURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverArticleURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverArticleURLsFn(ctx, baseURL)
}
