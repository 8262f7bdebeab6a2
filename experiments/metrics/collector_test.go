package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectorAddTrial(t *testing.T) {
	t.Run("tallies wins and ties", func(t *testing.T) {
		c := NewCollector()
		c.Start(4)
		c.AddTrial(10, 5)
		c.AddTrial(5, 10)
		c.AddTrial(7, 7)
		c.AddTrial(12, 1)

		s := c.Complete()

		require.Equal(t, 4, s.Requested)
		require.Equal(t, 4, s.Completed)
		require.Equal(t, 2, s.Strat1Wins)
		require.Equal(t, 1, s.Strat2Wins)
		require.Equal(t, 1, s.Ties(), "Equal bankrolls count for neither strategy")
		require.Equal(t, int64(34), s.Strat1Sum)
		require.Equal(t, int64(23), s.Strat2Sum)
		require.False(t, s.Interrupted)
	})

	t.Run("averages over completed trials", func(t *testing.T) {
		c := NewCollector()
		c.Start(10)
		c.AddTrial(10, 4)
		c.AddTrial(20, 6)
		c.SetInterrupted(true)

		s := c.Complete()
		avg1, avg2, ok := s.Averages()

		require.True(t, ok)
		require.True(t, s.Interrupted)
		require.Equal(t, 15.0, avg1, "Should divide by completed, not requested")
		require.Equal(t, 5.0, avg2)
	})

	t.Run("no data without completed trials", func(t *testing.T) {
		c := NewCollector()
		c.Start(10)

		_, _, ok := c.Complete().Averages()

		require.False(t, ok)
	})
}
