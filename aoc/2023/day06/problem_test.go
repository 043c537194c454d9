package aoc2023day06

import (
	"testing"

	"github.com/johomo/advent-of-code-2023/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 288, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 71503, got)
}

func bruteForce(r Race) int {
	count := 0
	for hold := 0; hold <= r.Time; hold++ {
		if r.distance(hold) > r.Record {
			count++
		}
	}
	return count
}

func TestRace_WaysToWin(t *testing.T) {
	tests := []struct {
		name string
		race Race
		want int
	}{
		{name: "sample 1", race: Race{7, 9}, want: 4},
		{name: "sample 2", race: Race{15, 40}, want: 8},
		{name: "integer roots are ties", race: Race{30, 200}, want: 9},
		{name: "single tie is not a win", race: Race{4, 4}, want: 0},
		{name: "unbeatable", race: Race{5, 100}, want: 0},
		{name: "zero record", race: Race{3, 0}, want: 2},
		{name: "zero time", race: Race{0, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.race.WaysToWin())
			assert.Equal(t, bruteForce(tt.race), tt.race.WaysToWin())
		})
	}
}

func TestRace_WaysToWin_MatchesBruteForce(t *testing.T) {
	for time := 0; time <= 60; time++ {
		for record := 0; record <= time*time/4+2; record++ {
			r := Race{Time: time, Record: record}
			if got, want := r.WaysToWin(), bruteForce(r); got != want {
				t.Fatalf("WaysToWin(%+v) = %d, want %d", r, got, want)
			}
		}
	}
}

func TestPart1_NoRaces(t *testing.T) {
	_, err := Part1("Time:\nDistance:\n")
	assert.ErrorIs(t, err, ErrNoRaces)
}

func TestPart2_NoRaces(t *testing.T) {
	_, err := Part2("Time:\nDistance:\n")
	assert.ErrorIs(t, err, ErrNoRaces)
}

func TestParseSheet_Malformed(t *testing.T) {
	tests := map[string]string{
		"one line":       "Time: 7\n",
		"swapped labels": "Distance: 9\nTime: 7\n",
		"bad number":     "Time: 7x\nDistance: 9\n",
		"negative":       "Time: -7\nDistance: 9\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Part1(input)
			assert.ErrorIs(t, err, utils.ErrMalformedInput)
		})
	}

	_, err := Part1("Time: 7 15\nDistance: 9\n")
	assert.ErrorIs(t, err, utils.ErrMalformedInput, "mismatched race counts")
}
