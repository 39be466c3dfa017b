package rescribe_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/rescribe"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()

		err := rescribe.Errorf(rescribe.ENOTFOUND, "article not found")
		assert.Equal(t, rescribe.ENOTFOUND, rescribe.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("publish: %w", rescribe.Errorf(rescribe.EINVALID, "title required"))
		assert.Equal(t, rescribe.EINVALID, rescribe.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, rescribe.EINTERNAL, rescribe.ErrorCode(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", rescribe.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "title required", rescribe.ErrorMessage(rescribe.Errorf(rescribe.EINVALID, "title required")))
	assert.Equal(t, "Internal error.", rescribe.ErrorMessage(errors.New("boom")))
	assert.Equal(t, "", rescribe.ErrorMessage(nil))
}
