package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate mockgen -destination=mocks/mock_solver.go -package=mocks . Solver

// Solver answers both parts of one day's puzzle from the raw input text.
type Solver interface {
	Day() int
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

// Parts selects which parts of a puzzle are run.
type Parts int

const (
	PartsBoth Parts = iota
	PartsOne
	PartsTwo
)

func ParseParts(s string) (Parts, error) {
	switch strings.TrimSpace(s) {
	case "", "0", "both", "all":
		return PartsBoth, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 2 {
		return PartsBoth, fmt.Errorf("invalid part %q: expected 1, 2 or both", s)
	}

	return Parts(n), nil
}

func (p Parts) includes(part int) bool {
	return p == PartsBoth || int(p) == part
}
