package aoc2023day04

import (
	"strings"

	"github.com/johomo/advent-of-code-2023/utils"
)

type Card struct {
	Have    []int
	Winning []int
}

// Matches counts how many of the numbers you have are winning numbers.
// Duplicates on either side count once.
func (c Card) Matches() int {
	winning := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = true
	}

	seen := map[int]bool{}
	count := 0
	for _, n := range c.Have {
		if winning[n] && !seen[n] {
			count++
		}
		seen[n] = true
	}

	return count
}

func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}

	return 1 << (m - 1)
}

type Solver struct{}

func (Solver) Day() int { return 4 }

func (Solver) Part1(input string) (int, error) { return Part1(input) }

func (Solver) Part2(input string) (int, error) { return Part2(input) }

func Part1(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range cards {
		total += c.Points()
	}

	return total, nil
}

// Part2 counts the cards held once every won copy has been scored. Copies
// past the end of the table are not created.
func Part2(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}

	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	return total, nil
}

func parseCards(input string) ([]Card, error) {
	cards := []Card{}

	for _, line := range utils.Lines(input) {
		_, numbers, err := utils.CutLabel(line, ":")
		if err != nil {
			return nil, err
		}

		left, right, err := utils.CutLabel(numbers, "|")
		if err != nil {
			return nil, err
		}

		have, err := utils.Ints[int](left)
		if err != nil {
			return nil, err
		}
		winning, err := utils.Ints[int](strings.TrimSpace(right))
		if err != nil {
			return nil, err
		}

		cards = append(cards, Card{Have: have, Winning: winning})
	}

	return cards, nil
}
