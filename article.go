package rescribe

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// ExcerptLength is the maximum length of a derived excerpt, in runes.
const ExcerptLength = 200

// Article represents an article record in the storage API.
// JSON field names follow the storage API wire format.
type Article struct {
	ID          int        `json:"id,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	SourceURL   string     `json:"source_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ScrapedAt   time.Time  `json:"scraped_at,omitzero"`
}

// Validate returns an error if the article cannot be published.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Body == "" {
		return Errorf(EINVALID, "article body required")
	}
	return nil
}

// Slugify derives a URL-safe slug from a title. The derivation is a pure
// function of the title: slugifying the same title twice yields the same
// slug. Empty or fully non-alphanumeric titles map to "untitled".
func Slugify(title string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		case !prevDash && b.Len() > 0:
			b.WriteByte('-')
			prevDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

// Excerpt derives an excerpt from plain text, truncated to ExcerptLength runes.
func Excerpt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= ExcerptLength {
		return text
	}
	return string(runes[:ExcerptLength])
}

// ArticleUpdate holds the fields replaced by an article update.
// The slug is recomputed by the storage API when the title changes.
type ArticleUpdate struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ArticleService is the client interface to the external article storage API.
type ArticleService interface {
	// FindLatestArticle returns the most recent article.
	// Returns ENOTFOUND if the store holds no articles.
	FindLatestArticle(ctx context.Context) (*Article, error)

	// CreateArticle creates a new article record and returns it with its
	// assigned ID. Returns EINVALID if the API rejects the payload.
	CreateArticle(ctx context.Context, article *Article) (*Article, error)

	// UpdateArticle replaces the title and body of an existing record.
	// Identity is the record's stable ID, never its slug.
	UpdateArticle(ctx context.Context, id int, upd ArticleUpdate) (*Article, error)
}
