package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rescribe"
)

// Minimum visible text lengths for the collection tiers.
const (
	minArticleTextLen  = 5
	minFallbackTextLen = 30
)

// cardSelectors identify elements recognized as article/post cards.
const cardSelectors = "article, .post, .post-card, .card, .blog-card"

// assetRE matches static-asset hrefs excluded from the long-text fallback.
var assetRE = regexp.MustCompile(`(?i)\.(png|jpg|svg|css|js)$`)

// Ensure Collector implements rescribe.LinkCollector at compile time.
var _ rescribe.LinkCollector = (*Collector)(nil)

// Collector enumerates candidate article URLs on a listing page using a
// union of heuristics: article-path anchors with non-trivial text, the
// first anchor of each post card, and long-text anchors that are not
// static assets. The long-text tier can over-collect links with long
// navigation labels; the cap and deduplication bound the damage and the
// imprecision is accepted.
type Collector struct{}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// CollectLinks returns up to limit absolute article URLs found in the
// listing markup, deduplicated by final URL string.
func (c *Collector) CollectLinks(html string, baseURL string, limit int) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, rescribe.Errorf(rescribe.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rescribe.Errorf(rescribe.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	links := []string{}

	add := func(href string) {
		if href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	}

	// Tier 1: anchors on a conventional article path with real link text.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if rescribe.IsArticlePath(href) && len([]rune(text)) > minArticleTextLen {
			add(href)
		}
	})

	// Tier 2: the first anchor inside each article/post card.
	doc.Find(cardSelectors).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
			add(href)
		}
	})

	// Tier 3: long-text anchors that are neither assets nor fragments.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if len([]rune(text)) > minFallbackTextLen && !assetRE.MatchString(href) && !strings.Contains(href, "#") {
			add(href)
		}
	})

	if limit > 0 && len(links) > limit {
		links = links[:limit]
	}
	return links, nil
}
