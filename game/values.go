package game

import (
	"fmt"
	"strings"
)

// ExpectedValues holds the value of rerolling for every (rolls remaining, die value) pair.
// Rows are indexed by rolls remaining, columns by die value; column 0 is unused.
type ExpectedValues struct {
	values   [][]float64
	maxValue int
}

func NewExpectedValues(numTurns, numSides int) *ExpectedValues {
	values := make([][]float64, numTurns+1)
	for i := range values {
		values[i] = make([]float64, numSides+1)
	}
	return &ExpectedValues{
		values:   values,
		maxValue: numSides,
	}
}

// Calculate fills the table by backward induction. The last row is the zero
// boundary; every row above it takes, per die value, the better of banking the
// die and the mean of the next row.
func (ev *ExpectedValues) Calculate() {
	for turn := len(ev.values) - 2; turn >= 0; turn-- {
		next := ev.values[turn+1]
		sum := 0.0
		for v := 1; v <= ev.maxValue; v++ {
			sum += next[v]
		}
		reroll := sum / float64(ev.maxValue)
		for die := 1; die <= ev.maxValue; die++ {
			ev.values[turn][die] = max(reroll, float64(die))
		}
	}
}

// Get returns the expected value for a given turn and die value. Indices
// outside the table panic.
func (ev *ExpectedValues) Get(turn, dieValue int) float64 {
	return ev.values[turn][dieValue]
}

// EVSum returns the sum of all expected values in the row above dieValue.
func (ev *ExpectedValues) EVSum(turn, dieValue int) float64 {
	sum := 0.0
	for v := dieValue + 1; v <= ev.maxValue; v++ {
		sum += ev.values[turn][v]
	}
	return sum
}

func (ev *ExpectedValues) String() string {
	var b strings.Builder
	for turn, row := range ev.values {
		fmt.Fprintf(&b, "Turn %d: %v\n", turn, row)
	}
	return b.String()
}
