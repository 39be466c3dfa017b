package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rescribe"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rescribe.ArchiveService = (*ArchiveService)(nil)

// ArchiveService implements rescribe.ArchiveService using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// HashBody computes xxHash of an article body and returns a hex string.
func HashBody(body string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(body))
	return hex.EncodeToString(b)
}

// CreateEntry records a scraped article. The entry's ID and scrape time are
// assigned here.
func (s *ArchiveService) CreateEntry(ctx context.Context, entry *rescribe.ArchiveEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.ScrapedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, slug, source_url, title, body_hash, published_id, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Slug, entry.SourceURL, entry.Title, entry.BodyHash,
		entry.PublishedID, entry.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindEntryBySourceURL retrieves an entry by its source URL.
func (s *ArchiveService) FindEntryBySourceURL(ctx context.Context, sourceURL string) (*rescribe.ArchiveEntry, error) {
	var entry rescribe.ArchiveEntry
	var scrapedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, source_url, title, body_hash, published_id, scraped_at
		FROM entries
		WHERE source_url = ?
	`, sourceURL).Scan(&entry.ID, &entry.Slug, &entry.SourceURL, &entry.Title,
		&entry.BodyHash, &entry.PublishedID, &scrapedAt)

	if err == sql.ErrNoRows {
		return nil, rescribe.Errorf(rescribe.ENOTFOUND, "archive entry not found")
	}
	if err != nil {
		return nil, err
	}

	entry.ScrapedAt, err = time.Parse(time.RFC3339, scrapedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scraped_at: %w", err)
	}

	return &entry, nil
}

// SourceURLs returns the source URLs of all archived entries.
func (s *ArchiveService) SourceURLs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT source_url FROM entries ORDER BY scraped_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}

	return urls, rows.Err()
}

// MarkPublished records the storage API ID assigned to an entry.
func (s *ArchiveService) MarkPublished(ctx context.Context, id string, publishedID int) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE entries SET published_id = ? WHERE id = ?
	`, publishedID, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rescribe.Errorf(rescribe.ENOTFOUND, "archive entry not found")
	}

	return nil
}
