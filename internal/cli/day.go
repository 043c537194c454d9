package cli

import (
	"errors"
	"fmt"
	"io"

	aoc2023day06 "github.com/johomo/advent-of-code-2023/aoc/2023/day06"
	"github.com/johomo/advent-of-code-2023/internal/puzzle"
	"github.com/johomo/advent-of-code-2023/internal/setup"
	"github.com/johomo/advent-of-code-2023/internal/setup/logger"
)

// Options override what the environment configures. Zero values keep the
// environment's choice.
type Options struct {
	LogLevel string
	Parts    string
}

// RunDay solves one day reading the puzzle from in and printing the answers
// to out. Logs go to errOut.
func RunDay(day int, in io.Reader, out, errOut io.Writer, opts Options) error {
	envErr := setup.LoadEnv()

	cfg := setup.LoadConfig()
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Parts != "" {
		cfg.Parts = opts.Parts
	}

	log := logger.New(cfg.LogLevel, errOut)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	deps, err := setup.Wire(cfg, &log)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}

	solver, err := deps.Solver(day)
	if err != nil {
		return err
	}

	err = puzzle.NewRunner(solver, deps.Parts, out, deps.Logger).Run(in)
	if errors.Is(err, aoc2023day06.ErrNoRaces) {
		_, err = fmt.Fprintln(out, "There is no way to beat any race record at all.")
	}

	return err
}
