package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rescribe"
)

// Ensure Paginator implements rescribe.Paginator at compile time.
var _ rescribe.Paginator = (*Paginator)(nil)

// Paginator resolves the last page of a paginated listing using a tiered
// heuristic: a rel="last" anchor, then the highest-numbered anchor inside a
// pagination container, then the listing URL itself.
type Paginator struct{}

// NewPaginator creates a new Paginator.
func NewPaginator() *Paginator {
	return &Paginator{}
}

// LastPageURL returns the absolute URL of the last listing page.
func (p *Paginator) LastPageURL(html string, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", rescribe.Errorf(rescribe.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", rescribe.Errorf(rescribe.EINVALID, "failed to parse HTML: %v", err)
	}

	// Tier 1: an anchor semantically marked as the last page.
	if href, ok := doc.Find(`a[rel="last"]`).First().Attr("href"); ok && href != "" {
		if resolved := resolveURL(base, href); resolved != "" {
			return resolved, nil
		}
	}

	// Tier 2: the highest-numbered anchor inside the pagination container.
	// Strict > keeps the first anchor carrying the maximum; ties between
	// equal page numbers are resolved arbitrarily by document order.
	maxNum := 0
	maxHref := ""
	doc.Find(".pagination a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(sel.Text()))
		if err != nil {
			return
		}
		if n > maxNum {
			maxNum = n
			maxHref = href
		}
	})
	if maxHref != "" {
		if resolved := resolveURL(base, maxHref); resolved != "" {
			return resolved, nil
		}
	}

	// Tier 3: no pagination detected, the listing itself is the last page.
	return baseURL, nil
}
