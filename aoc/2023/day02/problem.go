package aoc2023day02

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/johomo/advent-of-code-2023/utils"
)

var drawReg = regexp.MustCompile(`(\d+) (red|green|blue)`)

// Cubes counts cubes per colour. It is used both for what a bag holds and for
// the fewest cubes a game needs.
type Cubes struct {
	Red   int
	Green int
	Blue  int
}

// DefaultBag is the bag the elf asks about in part 1.
var DefaultBag = Cubes{Red: 12, Green: 13, Blue: 14}

func (c Cubes) Fits(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

type Game struct {
	ID int
	// Max holds the largest count drawn of each colour.
	Max Cubes
}

type Solver struct {
	Bag Cubes
}

func NewSolver(bag Cubes) *Solver {
	return &Solver{Bag: bag}
}

func (s *Solver) Day() int { return 2 }

func (s *Solver) Part1(input string) (int, error) { return Part1(input, s.Bag) }

func (s *Solver) Part2(input string) (int, error) { return Part2(input) }

// Part1 sums the ids of the games that were possible with bag.
func Part1(input string, bag Cubes) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, g := range games {
		if g.Max.Fits(bag) {
			total += g.ID
		}
	}

	return total, nil
}

// Part2 sums the power of the minimum set of cubes of every game.
func Part2(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, g := range games {
		total += g.Max.Power()
	}

	return total, nil
}

func parseGames(input string) ([]Game, error) {
	games := []Game{}

	for _, line := range utils.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}

func parseGame(line string) (Game, error) {
	label, draws, err := utils.CutLabel(line, ":")
	if err != nil {
		return Game{}, err
	}

	idStr, ok := strings.CutPrefix(label, "Game")
	if !ok {
		return Game{}, fmt.Errorf("%w: expected a game label, got %q", utils.ErrMalformedInput, label)
	}
	id, err := utils.ToInt(idStr)
	if err != nil {
		return Game{}, err
	}

	game := Game{ID: id}
	for _, m := range drawReg.FindAllStringSubmatch(draws, -1) {
		n, err := utils.ToInt(m[1])
		if err != nil {
			return Game{}, err
		}
		switch m[2] {
		case "red":
			game.Max.Red = max(game.Max.Red, n)
		case "green":
			game.Max.Green = max(game.Max.Green, n)
		case "blue":
			game.Max.Blue = max(game.Max.Blue, n)
		}
	}

	return game, nil
}
