package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/rescribe"
	"github.com/fwojciec/rescribe/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashBody(t *testing.T) {
	t.Parallel()

	a := sqlite.HashBody("<p>Body.</p>")
	b := sqlite.HashBody("<p>Body.</p>")
	c := sqlite.HashBody("<p>Other.</p>")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

func TestArchiveService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("creates entry with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		entry := &rescribe.ArchiveEntry{
			Slug:      "why-chatbots-fail",
			SourceURL: "https://blog.example.com/blog/why-chatbots-fail",
			Title:     "Why Chatbots Fail",
			BodyHash:  sqlite.HashBody("<p>Body.</p>"),
		}

		err := svc.CreateEntry(ctx, entry)
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.ScrapedAt.IsZero())
	})

	t.Run("returns error for invalid entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)

		err := svc.CreateEntry(context.Background(), &rescribe.ArchiveEntry{})
		require.Error(t, err)
		assert.Equal(t, rescribe.EINVALID, rescribe.ErrorCode(err))
	})

	t.Run("rejects duplicate source URLs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		entry := &rescribe.ArchiveEntry{
			Slug:      "post",
			SourceURL: "https://blog.example.com/blog/post",
		}
		require.NoError(t, svc.CreateEntry(ctx, entry))

		dup := &rescribe.ArchiveEntry{
			Slug:      "post",
			SourceURL: "https://blog.example.com/blog/post",
		}
		err := svc.CreateEntry(ctx, dup)
		require.Error(t, err)
	})
}

func TestArchiveService_FindEntryBySourceURL(t *testing.T) {
	t.Parallel()

	t.Run("round-trips an entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		entry := &rescribe.ArchiveEntry{
			Slug:      "why-chatbots-fail",
			SourceURL: "https://blog.example.com/blog/why-chatbots-fail",
			Title:     "Why Chatbots Fail",
			BodyHash:  "abcdef0123456789",
		}
		require.NoError(t, svc.CreateEntry(ctx, entry))

		got, err := svc.FindEntryBySourceURL(ctx, entry.SourceURL)
		require.NoError(t, err)

		assert.Equal(t, entry.ID, got.ID)
		assert.Equal(t, entry.Slug, got.Slug)
		assert.Equal(t, entry.Title, got.Title)
		assert.Equal(t, entry.BodyHash, got.BodyHash)
		assert.Nil(t, got.PublishedID)
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)

		_, err := svc.FindEntryBySourceURL(context.Background(), "https://blog.example.com/missing")
		require.Error(t, err)
		assert.Equal(t, rescribe.ENOTFOUND, rescribe.ErrorCode(err))
	})
}

func TestArchiveService_SourceURLs(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewArchiveService(db)
	ctx := context.Background()

	urls, err := svc.SourceURLs(ctx)
	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.NotNil(t, urls)

	require.NoError(t, svc.CreateEntry(ctx, &rescribe.ArchiveEntry{
		Slug: "a", SourceURL: "https://blog.example.com/blog/a",
	}))
	require.NoError(t, svc.CreateEntry(ctx, &rescribe.ArchiveEntry{
		Slug: "b", SourceURL: "https://blog.example.com/blog/b",
	}))

	urls, err = svc.SourceURLs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"https://blog.example.com/blog/a",
		"https://blog.example.com/blog/b",
	}, urls)
}

func TestArchiveService_MarkPublished(t *testing.T) {
	t.Parallel()

	t.Run("records the published ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		entry := &rescribe.ArchiveEntry{
			Slug: "a", SourceURL: "https://blog.example.com/blog/a",
		}
		require.NoError(t, svc.CreateEntry(ctx, entry))

		require.NoError(t, svc.MarkPublished(ctx, entry.ID, 42))

		got, err := svc.FindEntryBySourceURL(ctx, entry.SourceURL)
		require.NoError(t, err)
		require.NotNil(t, got.PublishedID)
		assert.Equal(t, 42, *got.PublishedID)
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)

		err := svc.MarkPublished(context.Background(), "no-such-id", 42)
		require.Error(t, err)
		assert.Equal(t, rescribe.ENOTFOUND, rescribe.ErrorCode(err))
	})
}
