package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/rescribe/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request passes immediately", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewIntervalLimiter(time.Hour)

		start := time.Now()
		err := limiter.Wait(context.Background(), "blog.example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("second request to the same domain waits", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewIntervalLimiter(50 * time.Millisecond)
		ctx := context.Background()

		require.NoError(t, limiter.Wait(ctx, "blog.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "blog.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("different domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewIntervalLimiter(time.Hour)
		ctx := context.Background()

		require.NoError(t, limiter.Wait(ctx, "a.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "b.example.com"))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewIntervalLimiter(time.Hour)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, limiter.Wait(ctx, "blog.example.com"))

		cancel()
		err := limiter.Wait(ctx, "blog.example.com")
		require.Error(t, err)
	})
}
