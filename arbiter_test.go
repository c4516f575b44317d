package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestArbiterChoosesLeft pins the priority ladder with a canonical fixture:
// food lies to the west and the other three directions are blocked or
// wall-adjacent without food on the tile.
func TestArbiterChoosesLeft(t *testing.T) {
	board := Board{
		Height: 11, Width: 11, MaxSnakes: 1,
		Food: []Point{{X: 2, Y: 5}},
		Snakes: []Snake{
			{ID: 0, Length: 5, Health: 90, Head: Point{X: 5, Y: 0},
				Body: []Point{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 2}}},
		},
	}

	dir, _ := CalculateMove(board, defaultRuleset)
	assert.Equal(t, Left, dir)
}

func TestArbiterNoYouSnakeDefaultsUp(t *testing.T) {
	board := Board{Height: 11, Width: 11, MaxSnakes: 1}
	dir, outcome := CalculateMove(board, defaultRuleset)
	assert.Equal(t, Up, dir)
	assert.Equal(t, 48, outcome)
}

func TestArbiterSurvivesAgainstWall(t *testing.T) {
	// Against the left wall with two safe, food-free routes (down, right) and
	// one fatal one (left, off the board): the ladder should still pick a
	// surviving, escaping direction over the fatal one.
	board := Board{
		Height: 11, Width: 11, MaxSnakes: 1,
		Snakes: []Snake{
			{ID: 0, Length: 3, Health: 90, Head: Point{X: 0, Y: 5},
				Body: []Point{{X: 0, Y: 5}, {X: 0, Y: 6}, {X: 0, Y: 7}}},
		},
	}
	dir, outcome := CalculateMove(board, defaultRuleset)
	assert.Contains(t, []Direction{Down, Right}, dir)
	assert.Less(t, outcome, 48)
}

func TestLegalRootMove(t *testing.T) {
	you := Snake{Head: Point{X: 5, Y: 5}, Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 4}}}
	assert.True(t, legalRootMove(you, Point{X: 5, Y: 6}))
	assert.False(t, legalRootMove(you, Point{X: 5, Y: 4}), "reversing into the neck is illegal")
}
