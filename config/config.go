// Package config loads CLI configuration from the environment, then flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"dicesim/meta"
	"dicesim/utils"

	"github.com/caarlos0/env/v11"
)

// Config holds the simulator command configuration.
type Config struct {
	NumSims   int    `env:"DICESIM_NUM_SIMS"`
	Output    string `env:"DICESIM_OUTPUT"`
	OutputDir string `env:"DICESIM_OUTPUT_DIR"`
	NumTurns  int    `env:"DICESIM_NUM_TURNS"`
	NumSides  int    `env:"DICESIM_NUM_SIDES"`
	Verbosity int    `env:"DICESIM_VERBOSITY"`
	Convert   *ConversionRequest
}

// ConversionRequest is a unit conversion asked for on the command line.
type ConversionRequest struct {
	Value float32
	From  string
	To    string
}

// Parse loads environment defaults into a Config, then applies flags from args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	cfg := Config{
		OutputDir: meta.OUTPUT_DIR,
		NumTurns:  meta.NUM_TURNS,
		NumSides:  meta.NUM_SIDES,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var convert string
	fs.IntVar(&cfg.NumSims, "n", cfg.NumSims, "The number of simulations to run")
	fs.IntVar(&cfg.NumSims, "num-sims", cfg.NumSims, "The number of simulations to run")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "The output file for simulation results")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "The output file for simulation results")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Directory for generated output file names")
	fs.IntVar(&cfg.NumTurns, "turns", cfg.NumTurns, "The number of turns per game")
	fs.IntVar(&cfg.NumSides, "sides", cfg.NumSides, "The number of sides on the die")
	fs.Var((*counter)(&cfg.Verbosity), "v", "Verbosity, repeat for more: -v info, -vv debug, -vvv trace")
	fs.StringVar(&convert, "convert", "", `Unit conversion as "VALUE FROM TO", units: m, in, ft, hr, min`)
	if err := fs.Parse(utils.ExpandRepeated(args, "v")); err != nil {
		return Config{}, err
	}

	if convert != "" {
		req, err := parseConversion(convert)
		if err != nil {
			return Config{}, err
		}
		cfg.Convert = &req
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.NumSims < 0 {
		return fmt.Errorf("number of simulations must not be negative: %d", c.NumSims)
	}
	if c.NumTurns < 1 {
		return fmt.Errorf("number of turns must be positive: %d", c.NumTurns)
	}
	if c.NumSides < 1 {
		return fmt.Errorf("number of sides must be positive: %d", c.NumSides)
	}
	if c.NumSims == 0 && c.Convert == nil {
		return errors.New("nothing to do: set the number of simulations or a conversion")
	}
	return nil
}

func parseConversion(s string) (ConversionRequest, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return ConversionRequest{}, fmt.Errorf("conversion needs VALUE FROM TO, got %q", s)
	}
	value, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return ConversionRequest{}, fmt.Errorf("conversion value %q: %w", fields[0], err)
	}
	return ConversionRequest{
		Value: float32(value),
		From:  fields[1],
		To:    fields[2],
	}, nil
}

// counter is a boolean-style flag that counts its occurrences.
type counter int

func (c *counter) String() string {
	if c == nil {
		return "0"
	}
	return strconv.Itoa(int(*c))
}

func (c *counter) Set(s string) error {
	switch s {
	case "true":
		*c++
		return nil
	case "false":
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid count %q", s)
	}
	*c = counter(n)
	return nil
}

func (c *counter) IsBoolFlag() bool {
	return true
}
