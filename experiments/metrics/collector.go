package metrics

import (
	"time"
)

// Summary aggregates the outcome of a simulation run. Only completed trials
// are counted.
type Summary struct {
	Requested   int
	Completed   int
	Strat1Wins  int
	Strat2Wins  int
	Strat1Sum   int64
	Strat2Sum   int64
	Interrupted bool
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

// Ties is the number of completed trials neither strategy won.
func (s Summary) Ties() int {
	return s.Completed - s.Strat1Wins - s.Strat2Wins
}

// Averages returns the mean final bankroll of each strategy. ok is false when
// no trial completed.
func (s Summary) Averages() (strat1, strat2 float64, ok bool) {
	if s.Completed == 0 {
		return 0, 0, false
	}
	n := float64(s.Completed)
	return float64(s.Strat1Sum) / n, float64(s.Strat2Sum) / n, true
}

type Collector interface {
	Start(requested int)
	AddTrial(strat1, strat2 int)
	SetInterrupted(value bool)
	Complete() Summary
}

type collector struct {
	summary Summary
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(requested int) {
	c.summary = Summary{
		Requested: requested,
		StartTime: time.Now(),
	}
}

func (c *collector) AddTrial(strat1, strat2 int) {
	switch {
	case strat1 > strat2:
		c.summary.Strat1Wins++
	case strat1 < strat2:
		c.summary.Strat2Wins++
	}
	c.summary.Strat1Sum += int64(strat1)
	c.summary.Strat2Sum += int64(strat2)
	c.summary.Completed++
}

func (c *collector) SetInterrupted(value bool) {
	c.summary.Interrupted = value
}

func (c *collector) Complete() Summary {
	c.summary.EndTime = time.Now()
	c.summary.Duration = c.summary.EndTime.Sub(c.summary.StartTime)
	return c.summary
}
