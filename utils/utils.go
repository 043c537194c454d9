package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrMalformedInput is wrapped by every parse failure so callers can tell bad
// puzzle input apart from other errors.
var ErrMalformedInput = errors.New("malformed input")

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: unable to convert %q to a number", ErrMalformedInput, s)
	}

	return n, nil
}

// Ints parses a whitespace separated list of integers.
func Ints[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to convert %q to a number", ErrMalformedInput, f)
		}
		if v := T(n); int64(v) != n || (n < 0) != (v < 0) {
			return nil, fmt.Errorf("%w: %q is out of range", ErrMalformedInput, f)
		}
		out = append(out, T(n))
	}

	return out, nil
}

// Lines splits input into its non-blank lines. Carriage returns are dropped.
func Lines(input string) []string {
	lines := []string{}

	for line := range strings.SplitSeq(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

// Sections splits input into groups separated by one or more blank lines.
func Sections(input string) []string {
	sections := []string{}
	current := []string{}

	flush := func() {
		if len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = []string{}
		}
	}

	for line := range strings.SplitSeq(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return sections
}

// CutLabel returns what follows the first sep in line, e.g. the numbers of
// "Time:  7  15". The label itself is returned as well.
func CutLabel(line, sep string) (label string, rest string, err error) {
	label, rest, ok := strings.Cut(line, sep)
	if !ok {
		return "", "", fmt.Errorf("%w: missing %q in %q", ErrMalformedInput, sep, line)
	}

	return strings.TrimSpace(label), rest, nil
}
