package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSeed(t *testing.T) {
	t.Run("draws distinct seeds", func(t *testing.T) {
		seen := make(map[uint64]bool)
		for i := 0; i < 16; i++ {
			seed, err := NewSeed()
			require.NoError(t, err)
			seen[seed] = true
		}
		require.Greater(t, len(seen), 1, "Seeds should not repeat")
	})
}
