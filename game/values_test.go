package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpectedValuesCalculate(t *testing.T) {
	t.Run("boundary row stays zero", func(t *testing.T) {
		ev := NewExpectedValues(5, 6)
		ev.Calculate()

		for d := 1; d <= 6; d++ {
			require.Equal(t, 0.0, ev.Get(5, d), "Last row should be the zero boundary")
		}
	})

	t.Run("never below the die value", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 1}, {1, 20}, {3, 6}, {100, 20}} {
			turns, sides := dims[0], dims[1]
			ev := NewExpectedValues(turns, sides)
			ev.Calculate()

			for turn := 0; turn < turns; turn++ {
				for d := 1; d <= sides; d++ {
					require.GreaterOrEqual(t, ev.Get(turn, d), float64(d),
						"Value at turn %d die %d should be at least the die", turn, d)
				}
			}
		}
	})

	t.Run("row above boundary is the die itself", func(t *testing.T) {
		ev := NewExpectedValues(1, 20)
		ev.Calculate()

		for d := 1; d <= 20; d++ {
			require.Equal(t, float64(d), ev.Get(0, d))
		}
	})

	t.Run("first informed row averages the faces", func(t *testing.T) {
		ev := NewExpectedValues(10, 20)
		ev.Calculate()

		for d := 1; d <= 20; d++ {
			require.InDelta(t, max(float64(d), 10.5), ev.Get(8, d), 1e-9,
				"Should be max(d, (sides+1)/2)")
		}
	})

	t.Run("second informed row uses the optimal row below", func(t *testing.T) {
		ev := NewExpectedValues(10, 20)
		ev.Calculate()

		// mean of max(d, 10.5) over 1..20 is (10*10.5 + 155) / 20
		require.InDelta(t, 13.0, ev.Get(7, 1), 1e-9)
		require.InDelta(t, 20.0, ev.Get(7, 20), 1e-9)
	})

	t.Run("more lookahead is never worth less", func(t *testing.T) {
		ev := NewExpectedValues(50, 20)
		ev.Calculate()

		for turn := 0; turn < 49; turn++ {
			for d := 1; d <= 20; d++ {
				require.GreaterOrEqual(t, ev.Get(turn, d), ev.Get(turn+1, d))
			}
		}
	})
}

func TestExpectedValuesGet(t *testing.T) {
	t.Run("panics outside the table", func(t *testing.T) {
		ev := NewExpectedValues(2, 6)
		ev.Calculate()

		require.Panics(t, func() { ev.Get(3, 1) }, "Turn past the table should panic")
		require.Panics(t, func() { ev.Get(0, 7) }, "Die past the table should panic")
	})
}

func TestExpectedValuesEVSum(t *testing.T) {
	t.Run("sums values above the die", func(t *testing.T) {
		ev := NewExpectedValues(1, 6)
		ev.Calculate()

		require.Equal(t, 4.0+5.0+6.0, ev.EVSum(0, 3))
		require.Equal(t, 0.0, ev.EVSum(0, 6), "Nothing above the top face")
	})
}

func TestExpectedValuesString(t *testing.T) {
	ev := NewExpectedValues(1, 2)
	ev.Calculate()

	require.Equal(t, "Turn 0: [0 1 2]\nTurn 1: [0 0 0]\n", ev.String())
}
