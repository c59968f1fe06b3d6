package kernel_test

import (
	"testing"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("positive weight", func(t *testing.T) {
		w, err := kernel.NewWeight(500)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, 500, w.Grams())
		assert.Equal(t, "500g", w.String())
	})

	t.Run("smallest weight", func(t *testing.T) {
		w, err := kernel.NewWeight(1)

		require.NoError(t, err)
		assert.Equal(t, 1, w.Grams())
	})

	for _, grams := range []int{0, -1, -500} {
		t.Run("rejects non positive", func(t *testing.T) {
			_, err := kernel.NewWeight(grams)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "weight")
		})
	}
}

func TestWeight_ZeroValue(t *testing.T) {
	var w kernel.Weight
	assert.Equal(t, kernel.ErrWeightIsNotConstructed, w.Validate())
}
