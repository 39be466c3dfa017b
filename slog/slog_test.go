package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/rescribe"
	"github.com/fwojciec/rescribe/mock"
	rsslog "github.com/fwojciec/rescribe/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := rsslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://blog.example.com/blog")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://blog.example.com/blog")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := rsslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://blog.example.com/blog")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingSearchService_FindReferences(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SearchService{
		FindReferencesFn: func(ctx context.Context, topic, excludeHost string, limit int) ([]rescribe.Reference, error) {
			return []rescribe.Reference{{URL: "https://a.example.com", Rank: 1}}, nil
		},
	}

	svc := rsslog.NewLoggingSearchService(inner, logger)
	refs, err := svc.FindReferences(context.Background(), "why chatbots fail", "blog.example.com", 2)

	require.NoError(t, err)
	assert.Len(t, refs, 1)
	output := buf.String()
	assert.Contains(t, output, "reference search")
	assert.Contains(t, output, "count=1")
}

func TestLoggingRewriter_Rewrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Rewriter{
		RewriteFn: func(ctx context.Context, article *rescribe.Article, refs []*rescribe.ReferenceArticle) (string, error) {
			return "<p>rewritten</p>", nil
		},
	}

	r := rsslog.NewLoggingRewriter(inner, logger)
	body, err := r.Rewrite(context.Background(), &rescribe.Article{Title: "T", Body: "B"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "<p>rewritten</p>", body)
	output := buf.String()
	assert.Contains(t, output, "rewrite")
	assert.Contains(t, output, "refs=0")
}
