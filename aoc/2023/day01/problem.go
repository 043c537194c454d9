package aoc2023day01

import (
	"strings"

	"github.com/johomo/advent-of-code-2023/utils"
)

var digitWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

type Solver struct{}

func (Solver) Day() int { return 1 }

func (Solver) Part1(input string) (int, error) { return Part1(input), nil }

func (Solver) Part2(input string) (int, error) { return Part2(input), nil }

// Part1 sums the calibration values built from the plain digits of each line.
func Part1(input string) int {
	return calibrate(input, false)
}

// Part2 also counts spelled-out digits. Words may overlap, so "twone" holds
// both a 2 and a 1.
func Part2(input string) int {
	return calibrate(input, true)
}

func calibrate(input string, withWords bool) int {
	result := 0

	for _, line := range utils.Lines(input) {
		result += calibrationValue(line, withWords)
	}

	return result
}

// calibrationValue is 10*first + last, where first and last are the digits
// starting at the lowest and highest positions. A line without digits is 0.
func calibrationValue(line string, withWords bool) int {
	first, last := -1, -1

	for i := range len(line) {
		d, ok := digitAt(line, i, withWords)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}

	if first == -1 {
		return 0
	}

	return 10*first + last
}

func digitAt(line string, i int, withWords bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !withWords {
		return 0, false
	}

	for word, val := range digitWords {
		if strings.HasPrefix(line[i:], word) {
			return val, true
		}
	}

	return 0, false
}
