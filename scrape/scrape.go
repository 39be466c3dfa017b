// Package scrape provides the article pipeline orchestration.
// It coordinates listing pagination, link collection, content extraction,
// and publishing of articles to the storage API.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rescribe"
	"github.com/google/uuid"
)

// Scraper orchestrates a scrape run against a blog listing page.
// The pipeline is deliberately sequential: pages are fetched one at a time
// with a politeness pause between requests to the same domain.
type Scraper struct {
	Fetcher     rescribe.Fetcher
	Paginator   rescribe.Paginator
	Collector   rescribe.LinkCollector
	Extractor   rescribe.Extractor
	Sitemaps    rescribe.SitemapService // optional fallback for empty listings
	Articles    rescribe.ArticleService
	Snapshots   rescribe.SnapshotStore  // optional
	Archive     rescribe.ArchiveService // optional
	RateLimiter rescribe.DomainLimiter  // optional
	RetryDelays []time.Duration
	LinkLimit   int
	DryRun      bool
}

// Result holds the outcome of a scrape run.
type Result struct {
	Found        int
	Scraped      int
	Skipped      int
	Failed       int
	Published    int
	SnapshotPath string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressScraped
	ProgressSkipped
	ProgressFailed
	ProgressPublished
	ProgressFinished
)

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type  ProgressType
	Total int
	URL   string
	// Ack carries the acknowledgement token of a dry-run publish.
	Ack   string
	Error error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Scrape runs the full pipeline against baseURL. Per-article failures are
// reported and skipped; only a failure to fetch the initial listing aborts
// the run.
func (s *Scraper) Scrape(ctx context.Context, baseURL string, progress ProgressFunc) (*Result, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, rescribe.Errorf(rescribe.EINVALID, "invalid listing URL %q", baseURL)
	}

	listingHTML, err := s.fetch(ctx, baseURL, base.Host)
	if err != nil {
		return nil, err
	}

	// Oldest articles live on the last listing page. If resolving or
	// fetching it fails the base listing still works, so degrade rather
	// than abort.
	listingURL := baseURL
	if lastPage, err := s.Paginator.LastPageURL(listingHTML, baseURL); err == nil && lastPage != baseURL {
		if html, err := s.fetch(ctx, lastPage, base.Host); err == nil {
			listingURL = lastPage
			listingHTML = html
		}
	}

	limit := s.LinkLimit
	if limit <= 0 {
		limit = rescribe.DefaultLinkLimit
	}

	links, err := s.Collector.CollectLinks(listingHTML, listingURL, limit)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 && s.Sitemaps != nil {
		links, err = s.Sitemaps.DiscoverArticleURLs(ctx, baseURL)
		if err != nil {
			return nil, err
		}
		if len(links) > limit {
			links = links[:limit]
		}
	}

	result := &Result{Found: len(links)}
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(links)})
	}

	var seen *SeenFilter
	if s.Archive != nil {
		seen, err = NewSeenFilter(ctx, s.Archive)
		if err != nil {
			return nil, err
		}
	}

	articles := []*rescribe.Article{}
	entryIDs := map[string]string{}

	for _, link := range links {
		if seen != nil {
			isSeen, err := seen.Seen(ctx, link)
			if err != nil {
				return nil, err
			}
			if isSeen {
				result.Skipped++
				if progress != nil {
					progress(ProgressEvent{Type: ProgressSkipped, URL: link})
				}
				continue
			}
		}

		article, err := s.scrapeArticle(ctx, link)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: link, Error: err})
			}
			continue
		}

		if s.Archive != nil {
			entry := &rescribe.ArchiveEntry{
				Slug:      article.Slug,
				SourceURL: article.SourceURL,
				Title:     article.Title,
				BodyHash:  computeHash(article.Body),
			}
			if err := s.Archive.CreateEntry(ctx, entry); err != nil {
				result.Failed++
				if progress != nil {
					progress(ProgressEvent{Type: ProgressFailed, URL: link, Error: err})
				}
				continue
			}
			entryIDs[article.SourceURL] = entry.ID
			seen.Add(article.SourceURL)
		}

		articles = append(articles, article)
		result.Scraped++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressScraped, URL: link})
		}
	}

	if s.Snapshots != nil && len(articles) > 0 {
		path, err := s.Snapshots.SaveScrape(ctx, articles)
		if err != nil {
			return nil, err
		}
		result.SnapshotPath = path
	}

	published := s.publish(ctx, articles, entryIDs, result, progress)

	if s.Snapshots != nil && len(published) > 0 {
		if _, err := s.Snapshots.SavePosted(ctx, published); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: len(links)})
	}
	return result, nil
}

// scrapeArticle fetches and extracts a single article page.
func (s *Scraper) scrapeArticle(ctx context.Context, link string) (*rescribe.Article, error) {
	html, err := s.fetchForURL(ctx, link)
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(html, link)
	if err != nil {
		return nil, err
	}

	return &rescribe.Article{
		Title:     extracted.Title,
		Slug:      rescribe.Slugify(extracted.Title),
		Excerpt:   rescribe.Excerpt(extracted.Text),
		Body:      extracted.ContentHTML,
		SourceURL: link,
		ScrapedAt: time.Now().UTC(),
	}, nil
}

// publish sends scraped articles to the storage API one by one. A rejected
// article never aborts the batch. Returns the articles accepted by the API.
func (s *Scraper) publish(ctx context.Context, articles []*rescribe.Article, entryIDs map[string]string, result *Result, progress ProgressFunc) []*rescribe.Article {
	published := []*rescribe.Article{}
	for _, article := range articles {
		if s.DryRun {
			result.Published++
			if progress != nil {
				progress(ProgressEvent{
					Type: ProgressPublished,
					URL:  article.SourceURL,
					Ack:  uuid.New().String(),
				})
			}
			continue
		}

		created, err := s.Articles.CreateArticle(ctx, article)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: article.SourceURL, Error: err})
			}
			continue
		}

		article.ID = created.ID
		published = append(published, created)
		result.Published++

		if s.Archive != nil {
			if entryID, ok := entryIDs[article.SourceURL]; ok {
				if err := s.Archive.MarkPublished(ctx, entryID, created.ID); err != nil && progress != nil {
					progress(ProgressEvent{Type: ProgressFailed, URL: article.SourceURL, Error: err})
				}
			}
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressPublished, URL: article.SourceURL})
		}
	}
	return published
}

// fetch waits out the domain's politeness interval and fetches with retry.
func (s *Scraper) fetch(ctx context.Context, rawURL, domain string) (string, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, domain); err != nil {
			return "", err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, nil, delays)
}

// fetchForURL derives the domain from the URL before fetching.
func (s *Scraper) fetchForURL(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rescribe.Errorf(rescribe.EINVALID, "invalid article URL %q", rawURL)
	}
	return s.fetch(ctx, rawURL, u.Host)
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
