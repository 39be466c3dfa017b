package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/rescribe"
	"github.com/fwojciec/rescribe/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://blog.example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", rescribe.Errorf(rescribe.EUNAVAILABLE, "server overloaded")
			}
			return "<html></html>", nil
		}

		html, err := scrape.FetchWithRetryDelays(context.Background(), "https://blog.example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", rescribe.Errorf(rescribe.ENOTFOUND, "page gone")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://blog.example.com", fetch, nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, rescribe.ENOTFOUND, rescribe.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after exhausting delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", rescribe.Errorf(rescribe.EUNAVAILABLE, "still down")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://blog.example.com", fetch, nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, rescribe.EUNAVAILABLE, rescribe.ErrorCode(err))
		assert.Equal(t, 4, calls)
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var logged int
		logger := func(format string, args ...any) { logged++ }
		fetch := func(ctx context.Context, url string) (string, error) {
			return "", rescribe.Errorf(rescribe.EUNAVAILABLE, "down")
		}

		_, err := scrape.FetchWithRetryDelays(context.Background(), "https://blog.example.com", fetch, logger, noDelays)

		require.Error(t, err)
		assert.Equal(t, 3, logged)
	})

	t.Run("honors context cancellation between attempts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", rescribe.Errorf(rescribe.EUNAVAILABLE, "down")
		}

		_, err := scrape.FetchWithRetryDelays(ctx, "https://blog.example.com", fetch, nil, []time.Duration{time.Hour})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
