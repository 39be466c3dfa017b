package scrape

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/rescribe"
)

// Refresher enriches the most recent stored article with content gathered
// from external reference pages and replaces its body via the storage API.
type Refresher struct {
	Fetcher     rescribe.Fetcher
	Extractor   rescribe.Extractor
	Articles    rescribe.ArticleService
	Search      rescribe.SearchService
	Rewriter    rescribe.Rewriter
	RateLimiter rescribe.DomainLimiter // optional
	RetryDelays []time.Duration

	// ReferenceLimit caps the number of reference pages gathered.
	ReferenceLimit int

	// DryRun produces the rewrite without updating the storage API.
	DryRun bool
}

// RefreshResult holds the outcome of a refresh run.
type RefreshResult struct {
	ArticleID  int
	Title      string
	References []string
	Body       string
	Updated    bool
}

// Refresh rewrites the latest article using external references.
// Individual reference pages that fail to fetch or extract are dropped;
// the rewrite proceeds with whatever references survive, including none.
func (r *Refresher) Refresh(ctx context.Context) (*RefreshResult, error) {
	article, err := r.Articles.FindLatestArticle(ctx)
	if err != nil {
		return nil, err
	}

	// Exclude the article's own site from the reference search so the
	// rewrite never cites the page it is rewriting.
	excludeHost := ""
	if article.SourceURL != "" {
		if u, err := url.Parse(article.SourceURL); err == nil {
			excludeHost = u.Host
		}
	}

	limit := r.ReferenceLimit
	if limit <= 0 {
		limit = rescribe.DefaultReferenceLimit
	}

	refs, err := r.Search.FindReferences(ctx, article.Title, excludeHost, limit)
	if err != nil {
		return nil, err
	}

	gathered := r.gatherReferences(ctx, refs)

	body, err := r.Rewriter.Rewrite(ctx, article, gathered)
	if err != nil {
		return nil, err
	}

	// Appended URLs name only the references that informed the rewrite.
	urls := make([]string, 0, len(gathered))
	for _, ref := range gathered {
		urls = append(urls, ref.URL)
	}
	body = rescribe.AppendReferences(body, urls)

	result := &RefreshResult{
		ArticleID:  article.ID,
		Title:      article.Title,
		References: urls,
		Body:       body,
	}

	if r.DryRun {
		return result, nil
	}

	if _, err := r.Articles.UpdateArticle(ctx, article.ID, rescribe.ArticleUpdate{
		Title: article.Title,
		Body:  body,
	}); err != nil {
		return nil, err
	}

	result.Updated = true
	return result, nil
}

// gatherReferences fetches and extracts each reference page, dropping
// pages that fail.
func (r *Refresher) gatherReferences(ctx context.Context, refs []rescribe.Reference) []*rescribe.ReferenceArticle {
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	gathered := []*rescribe.ReferenceArticle{}
	for _, ref := range refs {
		u, err := url.Parse(ref.URL)
		if err != nil {
			continue
		}

		if r.RateLimiter != nil {
			if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
				break
			}
		}

		html, err := FetchWithRetryDelays(ctx, ref.URL, r.Fetcher.Fetch, nil, delays)
		if err != nil {
			continue
		}

		extracted, err := r.Extractor.Extract(html, ref.URL)
		if err != nil {
			continue
		}

		gathered = append(gathered, &rescribe.ReferenceArticle{
			URL:   ref.URL,
			Title: extracted.Title,
			Text:  extracted.Text,
		})
	}
	return gathered
}
