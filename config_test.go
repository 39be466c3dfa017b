package rescribe_test

import (
	"testing"
	"time"

	"github.com/fwojciec/rescribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		cfg := rescribe.DefaultConfig()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 1200*time.Millisecond, cfg.FetchInterval)
		assert.Equal(t, 5, cfg.LinkLimit)
		assert.Equal(t, 2, cfg.ReferenceLimit)
	})

	t.Run("zero request timeout is a config error", func(t *testing.T) {
		t.Parallel()

		cfg := rescribe.DefaultConfig()
		cfg.RequestTimeout = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, rescribe.ECONFIG, rescribe.ErrorCode(err))
	})

	t.Run("non-positive link limit is a config error", func(t *testing.T) {
		t.Parallel()

		cfg := rescribe.DefaultConfig()
		cfg.LinkLimit = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, rescribe.ECONFIG, rescribe.ErrorCode(err))
	})

	t.Run("negative reference limit is a config error", func(t *testing.T) {
		t.Parallel()

		cfg := rescribe.DefaultConfig()
		cfg.ReferenceLimit = -1

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, rescribe.ECONFIG, rescribe.ErrorCode(err))
	})
}
