package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
)

func TestNewPageWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		w, err := request.NewPageWindow(0, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), w.Offset())
		assert.Equal(t, uint64(10), w.Limit())
	})

	t.Run("size of one is allowed", func(t *testing.T) {
		w, err := request.NewPageWindow(5, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), w.Offset())
		assert.Equal(t, uint64(1), w.Limit())
	})

	t.Run("negative from", func(t *testing.T) {
		_, err := request.NewPageWindow(-1, 10)
		assert.ErrorIs(t, err, request.ErrNegativeOffset)
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := request.NewPageWindow(0, 0)
		assert.ErrorIs(t, err, request.ErrNonPositiveSize)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := request.NewPageWindow(0, -5)
		assert.ErrorIs(t, err, request.ErrNonPositiveSize)
	})
}
