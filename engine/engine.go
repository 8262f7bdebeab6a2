package engine

import (
	"context"

	"dicesim/experiments/metrics"
)

// Result is the outcome of a simulation run.
type Result struct {
	Path    string // Final location of the result log
	Summary metrics.Summary
}

type Runner interface {
	// Run plays paired trials until the requested count is reached or ctx is cancelled
	Run(ctx context.Context) (Result, error)
}
