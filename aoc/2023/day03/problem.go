package aoc2023day03

import (
	"regexp"
	"strings"

	"github.com/johomo/advent-of-code-2023/utils"
)

var numReg = regexp.MustCompile("[0-9]+")

type Point struct {
	X, Y int
}

// Rectangle spans the cells from Min to Max, both inclusive.
type Rectangle struct {
	Min, Max Point
}

// Hull is the rectangle grown by one cell in every direction.
func (r Rectangle) Hull() Rectangle {
	return Rectangle{
		Min: Point{r.Min.X - 1, r.Min.Y - 1},
		Max: Point{r.Max.X + 1, r.Max.Y + 1},
	}
}

func (r Rectangle) Overlaps(o Rectangle) bool {
	return o.Max.Y >= r.Min.Y && o.Min.Y <= r.Max.Y &&
		o.Max.X >= r.Min.X && o.Min.X <= r.Max.X
}

// Token is a number or a symbol together with the cells it covers. Number is
// only set for numbers.
type Token struct {
	Value  string
	Number int
	Area   Rectangle
}

func (t Token) AdjacentTo(o Token) bool {
	return t.Area.Hull().Overlaps(o.Area)
}

type Schematic struct {
	Numbers []Token
	Symbols []Token
}

type Solver struct{}

func (Solver) Day() int { return 3 }

func (Solver) Part1(input string) (int, error) { return Part1(input) }

func (Solver) Part2(input string) (int, error) { return Part2(input) }

// Part1 sums every part number, i.e. every number next to a symbol.
func Part1(input string) (int, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, number := range s.Numbers {
		if len(adjacent(number, s.Symbols)) > 0 {
			total += number.Number
		}
	}

	return total, nil
}

// Part2 sums the gear ratios: the product of the two numbers next to a '*'
// that touches exactly two numbers.
func Part2(input string) (int, error) {
	s, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}

	total := 0

	for _, symbol := range s.Symbols {
		if symbol.Value != "*" {
			continue
		}
		numbers := adjacent(symbol, s.Numbers)
		if len(numbers) != 2 {
			continue
		}
		total += numbers[0].Number * numbers[1].Number
	}

	return total, nil
}

func adjacent(t Token, candidates []Token) []Token {
	found := []Token{}

	for _, c := range candidates {
		if t.AdjacentTo(c) {
			found = append(found, c)
		}
	}

	return found
}

// parseSchematic keeps blank lines as empty rows so nothing is adjacent
// across them.
func parseSchematic(input string) (Schematic, error) {
	s := Schematic{}

	for row, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")

		for _, loc := range numReg.FindAllStringIndex(line, -1) {
			value := line[loc[0]:loc[1]]
			n, err := utils.ToInt(value)
			if err != nil {
				return Schematic{}, err
			}

			s.Numbers = append(s.Numbers, Token{
				Value:  value,
				Number: n,
				Area: Rectangle{
					Min: Point{loc[0], row},
					Max: Point{loc[1] - 1, row},
				},
			})
		}

		for col, c := range line {
			if (c >= '0' && c <= '9') || c == '.' {
				continue
			}
			p := Point{col, row}
			s.Symbols = append(s.Symbols, Token{
				Value: string(c),
				Area:  Rectangle{Min: p, Max: p},
			})
		}
	}

	return s, nil
}
