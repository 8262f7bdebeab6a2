package experiments

import (
	"context"
	"fmt"
	"io"

	"dicesim/config"
	"dicesim/conversion"
	"dicesim/engine"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
)

// Run executes what cfg asks for: the strategy simulation, a unit
// conversion, or both. Extra options are applied to the simulation engine.
func Run(ctx context.Context, cfg config.Config, out io.Writer, options ...engine.Option) error {
	if cfg.NumSims > 0 {
		if err := simulate(ctx, cfg, out, options); err != nil {
			return err
		}
	}
	if cfg.Convert != nil {
		convert(out, *cfg.Convert)
	}
	return nil
}

func simulate(ctx context.Context, cfg config.Config, out io.Writer, options []engine.Option) error {
	fmt.Fprint(out, pterm.Info.Sprintfln("Running %d simulations...", cfg.NumSims))

	options = append([]engine.Option{
		engine.WithOutput(cfg.Output),
		engine.WithOutputDir(cfg.OutputDir),
		engine.WithDimensions(cfg.NumTurns, cfg.NumSides),
	}, options...)
	var runner engine.Runner = engine.New(cfg.NumSims, options...)

	result, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulate dice games: %w", err)
	}
	return Report(out, result)
}

// convert reports a failed conversion to the user without failing the run.
func convert(out io.Writer, req config.ConversionRequest) {
	value, err := conversion.Convert(req.Value, req.From, req.To)
	if err != nil {
		log.Debug().Err(err).Msg("conversion rejected")
		fmt.Fprint(out, pterm.Error.Sprintfln("Conversion error: %v", err))
		return
	}
	fmt.Fprint(out, pterm.Success.Sprintfln("Converted value: %v", value))
}
