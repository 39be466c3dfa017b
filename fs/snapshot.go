// Package fs provides file-based snapshot storage for pipeline runs.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/rescribe"
)

// timestampLayout names snapshot files so successive runs sort
// chronologically.
const timestampLayout = "20060102-150405"

// FormatMarkdown formats an article as Markdown with YAML frontmatter.
// The body is expected to already be Markdown.
func FormatMarkdown(article *rescribe.Article, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(article.Title)
	b.WriteString("\nscraped: ")
	b.WriteString(article.ScrapedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// Ensure SnapshotStore implements rescribe.SnapshotStore at compile time.
var _ rescribe.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore writes run artifacts to a local directory. Each scrape run
// produces a timestamped JSON snapshot, a latest.json copy, and a Markdown
// audit copy per article. Publish runs produce timestamped posted files.
type SnapshotStore struct {
	baseDir string
	conv    rescribe.Converter
	now     func() time.Time
}

// NewSnapshotStore creates a SnapshotStore rooted at baseDir. The converter
// renders Markdown audit copies; a nil converter skips them.
func NewSnapshotStore(baseDir string, conv rescribe.Converter) *SnapshotStore {
	return &SnapshotStore{baseDir: baseDir, conv: conv, now: time.Now}
}

// SaveScrape writes the extraction results of a run and returns the path of
// the timestamped snapshot file.
func (s *SnapshotStore) SaveScrape(ctx context.Context, articles []*rescribe.Article) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	path, err := s.writeJSON("scrape-"+s.now().UTC().Format(timestampLayout)+".json", articles)
	if err != nil {
		return "", err
	}

	// latest.json mirrors the newest scrape so downstream tooling has a
	// stable path to watch.
	if _, err := s.writeJSON("latest.json", articles); err != nil {
		return "", err
	}

	if s.conv != nil {
		for _, article := range articles {
			if err := s.writeMarkdown(article); err != nil {
				return "", err
			}
		}
	}

	return path, nil
}

// SavePosted writes the storage API responses of a successful publish and
// returns the path of the snapshot file.
func (s *SnapshotStore) SavePosted(ctx context.Context, articles []*rescribe.Article) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}
	return s.writeJSON("posted-"+s.now().UTC().Format(timestampLayout)+".json", articles)
}

func (s *SnapshotStore) writeJSON(name string, articles []*rescribe.Article) (string, error) {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *SnapshotStore) writeMarkdown(article *rescribe.Article) error {
	md, err := s.conv.Convert(article.Body)
	if err != nil {
		return err
	}
	slug := article.Slug
	if slug == "" {
		slug = rescribe.Slugify(article.Title)
	}
	path := filepath.Join(s.baseDir, slug+".md")
	return os.WriteFile(path, []byte(FormatMarkdown(article, md)), 0644)
}
