package rescribe

import (
	"context"
	"time"
)

// ArchiveEntry records one scraped article in the local archive.
type ArchiveEntry struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	BodyHash    string    `json:"bodyHash"`
	PublishedID *int      `json:"publishedId"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *ArchiveEntry) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "archive entry source URL required")
	}
	if e.Slug == "" {
		return Errorf(EINVALID, "archive entry slug required")
	}
	return nil
}

// ArchiveService persists a local audit trail of scraped articles.
type ArchiveService interface {
	// CreateEntry records a scraped article.
	CreateEntry(ctx context.Context, entry *ArchiveEntry) error

	// FindEntryBySourceURL retrieves an entry by its source URL.
	// Returns ENOTFOUND if no entry exists.
	FindEntryBySourceURL(ctx context.Context, sourceURL string) (*ArchiveEntry, error)

	// SourceURLs returns the source URLs of all archived entries.
	SourceURLs(ctx context.Context) ([]string, error)

	// MarkPublished records the storage API ID assigned to an entry.
	MarkPublished(ctx context.Context, id string, publishedID int) error
}
