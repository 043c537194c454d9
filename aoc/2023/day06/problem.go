package aoc2023day06

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/johomo/advent-of-code-2023/utils"
)

// ErrNoRaces is returned when the sheet lists no race at all.
var ErrNoRaces = errors.New("no races on the sheet")

type Race struct {
	Time   int
	Record int
}

func (r Race) distance(hold int) int {
	return hold * (r.Time - hold)
}

// WaysToWin counts the whole holding times that travel strictly farther than
// the record. These are the integers between the roots of
// -t^2 + Time*t - Record = 0. The float roots only seed the search; the
// bounds are then fixed with exact integer checks so ties never count.
func (r Race) WaysToWin() int {
	if r.Time <= 0 {
		return 0
	}

	t := float64(r.Time)
	discriminant := t*t - 4*float64(r.Record)
	if discriminant < 0 {
		return 0
	}

	sqrt := math.Sqrt(discriminant)
	lo := max(0, int(math.Floor((t-sqrt)/2)))
	hi := min(r.Time, int(math.Ceil((t+sqrt)/2)))

	for lo <= hi && r.distance(lo) <= r.Record {
		lo++
	}
	for lo > 0 && r.distance(lo-1) > r.Record {
		lo--
	}
	for hi >= lo && r.distance(hi) <= r.Record {
		hi--
	}
	for hi < r.Time && r.distance(hi+1) > r.Record {
		hi++
	}

	if lo > hi {
		return 0
	}

	return hi - lo + 1
}

type Solver struct{}

func (Solver) Day() int { return 6 }

func (Solver) Part1(input string) (int, error) { return Part1(input) }

func (Solver) Part2(input string) (int, error) { return Part2(input) }

// Part1 multiplies the number of ways to beat each race.
func Part1(input string) (int, error) {
	times, records, err := parseSheet(input)
	if err != nil {
		return 0, err
	}
	if len(times) != len(records) {
		return 0, fmt.Errorf("%w: %d times but %d distances", utils.ErrMalformedInput, len(times), len(records))
	}
	if len(times) == 0 {
		return 0, ErrNoRaces
	}

	product := 1
	for i := range times {
		product *= Race{Time: times[i], Record: records[i]}.WaysToWin()
	}

	return product, nil
}

// Part2 reads each line as a single number, ignoring the spaces between
// digits.
func Part2(input string) (int, error) {
	times, records, err := parseSheet(input)
	if err != nil {
		return 0, err
	}
	if len(times) == 0 || len(records) == 0 {
		return 0, ErrNoRaces
	}

	t, err := joinDigits(times)
	if err != nil {
		return 0, err
	}
	d, err := joinDigits(records)
	if err != nil {
		return 0, err
	}

	return Race{Time: t, Record: d}.WaysToWin(), nil
}

func joinDigits(nums []int) (int, error) {
	var b strings.Builder
	for _, n := range nums {
		fmt.Fprint(&b, n)
	}

	return utils.ToInt(b.String())
}

func parseSheet(input string) ([]int, []int, error) {
	lines := utils.Lines(input)
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("%w: expected a Time and a Distance line", utils.ErrMalformedInput)
	}

	times, err := parseLine(lines[0], "Time")
	if err != nil {
		return nil, nil, err
	}
	records, err := parseLine(lines[1], "Distance")
	if err != nil {
		return nil, nil, err
	}

	return times, records, nil
}

func parseLine(line, want string) ([]int, error) {
	label, rest, err := utils.CutLabel(line, ":")
	if err != nil {
		return nil, err
	}
	if label != want {
		return nil, fmt.Errorf("%w: expected %q, got %q", utils.ErrMalformedInput, want, label)
	}

	nums, err := utils.Ints[int](rest)
	if err != nil {
		return nil, err
	}
	for _, n := range nums {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative value %d on the %s line", utils.ErrMalformedInput, n, want)
		}
	}

	return nums, nil
}
