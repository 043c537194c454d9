package setup

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
	aoc2023day01 "github.com/johomo/advent-of-code-2023/aoc/2023/day01"
	aoc2023day02 "github.com/johomo/advent-of-code-2023/aoc/2023/day02"
	aoc2023day03 "github.com/johomo/advent-of-code-2023/aoc/2023/day03"
	aoc2023day04 "github.com/johomo/advent-of-code-2023/aoc/2023/day04"
	aoc2023day05 "github.com/johomo/advent-of-code-2023/aoc/2023/day05"
	aoc2023day06 "github.com/johomo/advent-of-code-2023/aoc/2023/day06"
	"github.com/johomo/advent-of-code-2023/internal/config"
	"github.com/johomo/advent-of-code-2023/internal/puzzle"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel          string
	Parts             string
	PuzzlesConfigPath string
}

type Dependencies struct {
	Solvers map[int]puzzle.Solver
	Parts   puzzle.Parts
	Logger  *zerolog.Logger
}

// LoadEnv loads a .env file from the working directory. Callers treat a
// missing file as a warning.
func LoadEnv() error {
	return godotenv.Load()
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:          getEnv("LOG_LEVEL", "warn"),
		Parts:             getEnv("AOC_PARTS", "both"),
		PuzzlesConfigPath: getEnv("PUZZLES_CONFIG_PATH", ""),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	parts, err := puzzle.ParseParts(cfg.Parts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse AOC_PARTS: %w", err)
	}

	puzzlesConfig, err := config.LoadPuzzlesConfig(cfg.PuzzlesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzles config: %w", err)
	}

	bag := puzzlesConfig.Day02.Bag
	solvers := []puzzle.Solver{
		aoc2023day01.Solver{},
		aoc2023day02.NewSolver(aoc2023day02.Cubes{Red: *bag.Red, Green: *bag.Green, Blue: *bag.Blue}),
		aoc2023day03.Solver{},
		aoc2023day04.Solver{},
		aoc2023day05.Solver{},
		aoc2023day06.Solver{},
	}

	byDay := make(map[int]puzzle.Solver, len(solvers))
	for _, s := range solvers {
		byDay[s.Day()] = s
	}

	logger.Debug().Int("solvers", len(byDay)).Msg("solvers wired")

	return &Dependencies{
		Solvers: byDay,
		Parts:   parts,
		Logger:  logger,
	}, nil
}

// Days lists the wired days in ascending order.
func (d *Dependencies) Days() []int {
	days := make([]int, 0, len(d.Solvers))
	for day := range d.Solvers {
		days = append(days, day)
	}
	slices.Sort(days)

	return days
}

func (d *Dependencies) Solver(day int) (puzzle.Solver, error) {
	s, ok := d.Solvers[day]
	if !ok {
		return nil, fmt.Errorf("no solver for day %d", day)
	}

	return s, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
