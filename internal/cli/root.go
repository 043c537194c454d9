package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/johomo/advent-of-code-2023/internal/setup"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code 2023 solutions, days 1 to 6",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level written to stderr (overrides LOG_LEVEL)")
	cmd.AddCommand(runCmd(&logLevel), listCmd())

	return cmd
}

func runCmd(logLevel *string) *cobra.Command {
	var part string

	c := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve a day reading the puzzle input from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}

			return RunDay(day, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), Options{
				LogLevel: *logLevel,
				Parts:    part,
			})
		},
	}

	c.Flags().StringVarP(&part, "part", "p", "", "part to solve: 1, 2 or both (overrides AOC_PARTS)")
	return c
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days with a solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zerolog.Nop()
			deps, err := setup.Wire(setup.LoadConfig(), &logger)
			if err != nil {
				return err
			}

			for _, day := range deps.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "day%02d\n", day)
			}
			return nil
		},
	}
}
