package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"dicesim/experiments/metrics"
	"dicesim/game"
	"dicesim/meta"
	"dicesim/random"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Option func(e *Engine)

// SeedSource yields a fresh seed for every trial.
type SeedSource func() (uint64, error)

// Engine runs trials sequentially. Each trial plays both strategies on games
// seeded with the same value.
type Engine struct {
	numSims   int
	numTurns  int
	numSides  int
	output    string
	outputDir string
	seeds     SeedSource
	now       func() time.Time
	collector metrics.Collector
}

func WithOutput(path string) Option {
	return func(e *Engine) {
		if path != "" {
			e.output = path
		}
	}
}

func WithOutputDir(dir string) Option {
	return func(e *Engine) {
		if dir != "" {
			e.outputDir = dir
		}
	}
}

func WithDimensions(numTurns, numSides int) Option {
	return func(e *Engine) {
		e.numTurns = numTurns
		e.numSides = numSides
	}
}

func WithSeedSource(seeds SeedSource) Option {
	return func(e *Engine) {
		if seeds != nil {
			e.seeds = seeds
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

func New(numSims int, options ...Option) *Engine {
	e := &Engine{ // Default values
		numSims:   numSims,
		numTurns:  meta.NUM_TURNS,
		numSides:  meta.NUM_SIDES,
		outputDir: meta.OUTPUT_DIR,
		seeds:     random.NewSeed,
		now:       time.Now,
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.numSims < 0 {
		panic("number of simulations must not be negative")
	}
	if e.numTurns < 1 || e.numSides < 1 {
		panic("game needs at least one turn and one side")
	}
	return e
}

// Run executes every trial, then flushes the result log. An interrupted run
// renames the log after the number of completed trials.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	path, err := e.resolvePath()
	if err != nil {
		return Result{}, err
	}
	writer, err := metrics.NewWriter(path)
	if err != nil {
		return Result{}, err
	}

	log.Info().Int("num_sims", e.numSims).Str("path", path).Msg("running simulations")
	e.collector.Start(e.numSims)

	runErr := e.loop(ctx, writer)
	closeErr := writer.Close()
	summary := e.collector.Complete()
	result := Result{Path: path, Summary: summary}
	if runErr != nil {
		return result, runErr
	}
	if closeErr != nil {
		return result, closeErr
	}

	if summary.Interrupted {
		log.Debug().Int("completed", summary.Completed).Msg("run was interrupted, renaming result file")
		result.Path, err = metrics.RenameEarlyExit(path, summary.Completed)
		if err != nil {
			return Result{Path: path, Summary: summary}, err
		}
	}

	log.Info().
		Int("completed", summary.Completed).
		Int("strat1_wins", summary.Strat1Wins).
		Int("strat2_wins", summary.Strat2Wins).
		Dur("duration", summary.Duration).
		Msg("simulations finished")
	return result, nil
}

func (e *Engine) resolvePath() (string, error) {
	if e.output != "" {
		return e.output, nil
	}
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return metrics.DefaultPath(e.outputDir, e.numSims, e.now()), nil
}

// loop checks for cancellation only between trials, so a started trial always completes.
func (e *Engine) loop(ctx context.Context, writer *metrics.Writer) error {
	strat1, strat2 := game.Strategies()
	for i := 1; i <= e.numSims; i++ {
		if ctx.Err() != nil {
			log.Info().Int("completed", i-1).Msg("exit command received, finishing up")
			e.collector.SetInterrupted(true)
			return nil
		}
		if err := e.trial(writer, strat1, strat2); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) trial(writer *metrics.Writer, strat1, strat2 game.Strategy) error {
	seed, err := e.seeds()
	if err != nil {
		return fmt.Errorf("failed to draw seed: %w", err)
	}

	bankroll1 := game.NewGame(e.numTurns, e.numSides, seed).Play(strat1)
	bankroll2 := game.NewGame(e.numTurns, e.numSides, seed).Play(strat2)

	if err := writer.WriteTrial(seed, bankroll1, bankroll2); err != nil {
		return err
	}

	switch {
	case bankroll1 > bankroll2:
		log.Info().Uint64("seed", seed).Int("strat1", bankroll1).Int("strat2", bankroll2).Msg("strat1 > strat2")
	case bankroll1 < bankroll2:
		log.Info().Uint64("seed", seed).Int("strat1", bankroll1).Int("strat2", bankroll2).Msg("strat1 < strat2")
	default:
		log.Debug().Uint64("seed", seed).Int("bankroll", bankroll1).Msg("strat1 == strat2")
	}

	e.collector.AddTrial(bankroll1, bankroll2)
	return nil
}
