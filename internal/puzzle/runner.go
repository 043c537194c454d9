package puzzle

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Runner struct {
	solver Solver
	parts  Parts
	out    io.Writer
	logger *zerolog.Logger
}

func NewRunner(solver Solver, parts Parts, out io.Writer, logger *zerolog.Logger) *Runner {
	return &Runner{
		solver: solver,
		parts:  parts,
		out:    out,
		logger: logger,
	}
}

// Run reads the whole input and prints one line per selected part. The first
// failing part aborts the run.
func (r *Runner) Run(in io.Reader) error {
	bytes, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("unable to read the input: %w", err)
	}
	input := string(bytes)

	day := r.solver.Day()
	r.logger.Debug().Int("day", day).Int("bytes", len(bytes)).Msg("input loaded")

	steps := []struct {
		part  int
		solve func(string) (int, error)
	}{
		{part: 1, solve: r.solver.Part1},
		{part: 2, solve: r.solver.Part2},
	}

	for _, step := range steps {
		if !r.parts.includes(step.part) {
			continue
		}

		now := time.Now()
		answer, err := step.solve(input)
		if err != nil {
			return fmt.Errorf("day %d part %d: %w", day, step.part, err)
		}

		r.logger.Debug().
			Int("day", day).
			Int("part", step.part).
			Dur("duration", time.Since(now)).
			Msg("part solved")

		if _, err := fmt.Fprintf(r.out, "AoC2023, Day%d, Part%d solution is: %d\n", day, step.part, answer); err != nil {
			return fmt.Errorf("unable to write the answer: %w", err)
		}
	}

	return nil
}
