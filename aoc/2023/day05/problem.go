package aoc2023day05

import (
	"fmt"
	"math"
	"strings"

	"github.com/johomo/advent-of-code-2023/utils"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int
}

func (i Interval) Empty() bool {
	return i.Start >= i.End
}

// Rule moves every number of Source by Offset.
type Rule struct {
	Source Interval
	Offset int
}

func (r Rule) Contains(n int) bool {
	return r.Source.Start <= n && n < r.Source.End
}

// Map is one almanac section, e.g. seed-to-soil. The first rule that
// contains a number applies; numbers outside every rule map to themselves.
type Map struct {
	Name  string
	Rules []Rule
}

func (m Map) Convert(n int) int {
	for _, r := range m.Rules {
		if r.Contains(n) {
			return n + r.Offset
		}
	}

	return n
}

// ConvertIntervals maps every interval through m, splitting intervals that
// straddle a rule boundary.
func (m Map) ConvertIntervals(in []Interval) []Interval {
	out := []Interval{}
	pending := in

	for _, r := range m.Rules {
		unmatched := []Interval{}

		for _, iv := range pending {
			before := Interval{iv.Start, min(iv.End, r.Source.Start)}
			inside := Interval{max(iv.Start, r.Source.Start), min(iv.End, r.Source.End)}
			after := Interval{max(iv.Start, r.Source.End), iv.End}

			if !inside.Empty() {
				out = append(out, Interval{inside.Start + r.Offset, inside.End + r.Offset})
			}
			if !before.Empty() {
				unmatched = append(unmatched, before)
			}
			if !after.Empty() {
				unmatched = append(unmatched, after)
			}
		}

		pending = unmatched
	}

	return append(out, pending...)
}

type Almanac struct {
	Seeds []int
	Maps  []Map
}

func (a Almanac) Location(seed int) int {
	n := seed
	for _, m := range a.Maps {
		n = m.Convert(n)
	}

	return n
}

func (a Almanac) LocationIntervals(seeds []Interval) []Interval {
	intervals := seeds
	for _, m := range a.Maps {
		intervals = m.ConvertIntervals(intervals)
	}

	return intervals
}

// SeedIntervals reads the seeds line as (start, length) pairs.
func (a Almanac) SeedIntervals() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: seed ranges need an even count of numbers, got %d", utils.ErrMalformedInput, len(a.Seeds))
	}

	intervals := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		intervals = append(intervals, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}

	return intervals, nil
}

type Solver struct{}

func (Solver) Day() int { return 5 }

func (Solver) Part1(input string) (int, error) { return Part1(input) }

func (Solver) Part2(input string) (int, error) { return Part2(input) }

// Part1 finds the lowest location of any listed seed.
func Part1(input string) (int, error) {
	almanac, err := parseAlmanac(input)
	if err != nil {
		return 0, err
	}

	lowest := math.MaxInt
	for _, seed := range almanac.Seeds {
		lowest = min(lowest, almanac.Location(seed))
	}

	return lowest, nil
}

// Part2 finds the lowest location when the seeds line lists seed ranges.
func Part2(input string) (int, error) {
	almanac, err := parseAlmanac(input)
	if err != nil {
		return 0, err
	}

	seeds, err := almanac.SeedIntervals()
	if err != nil {
		return 0, err
	}

	lowest, found := math.MaxInt, false
	for _, iv := range almanac.LocationIntervals(seeds) {
		if !iv.Empty() {
			lowest = min(lowest, iv.Start)
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: no seeds in the listed ranges", utils.ErrMalformedInput)
	}

	return lowest, nil
}

func parseAlmanac(input string) (Almanac, error) {
	sections := utils.Sections(input)
	if len(sections) == 0 {
		return Almanac{}, fmt.Errorf("%w: empty almanac", utils.ErrMalformedInput)
	}

	label, seedList, err := utils.CutLabel(sections[0], ":")
	if err != nil {
		return Almanac{}, err
	}
	if label != "seeds" {
		return Almanac{}, fmt.Errorf("%w: expected the seeds line, got %q", utils.ErrMalformedInput, label)
	}

	seeds, err := utils.Ints[int](seedList)
	if err != nil {
		return Almanac{}, err
	}
	if len(seeds) == 0 {
		return Almanac{}, fmt.Errorf("%w: no seeds listed", utils.ErrMalformedInput)
	}

	almanac := Almanac{Seeds: seeds}
	for _, section := range sections[1:] {
		m, err := parseMap(section)
		if err != nil {
			return Almanac{}, err
		}
		almanac.Maps = append(almanac.Maps, m)
	}

	return almanac, nil
}

func parseMap(section string) (Map, error) {
	lines := strings.Split(section, "\n")

	name, _, err := utils.CutLabel(lines[0], ":")
	if err != nil {
		return Map{}, err
	}

	m := Map{Name: strings.TrimSuffix(name, " map")}
	for _, line := range lines[1:] {
		nums, err := utils.Ints[int](line)
		if err != nil {
			return Map{}, err
		}
		if len(nums) != 3 {
			return Map{}, fmt.Errorf("%w: rule %q in %s needs 3 numbers", utils.ErrMalformedInput, line, m.Name)
		}

		dst, src, length := nums[0], nums[1], nums[2]
		m.Rules = append(m.Rules, Rule{
			Source: Interval{src, src + length},
			Offset: dst - src,
		})
	}

	return m, nil
}
