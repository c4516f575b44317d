package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAreaControlledSingleSnake matches the canonical single-serpent, 7x7
// fixture: area controlled is every tile except the body's interior segments.
func TestAreaControlledSingleSnake(t *testing.T) {
	board := Board{
		Height: 7, Width: 7, MaxSnakes: 1,
		Snakes: []Snake{
			{ID: 0, Length: 4, Head: Point{X: 3, Y: 3},
				Body: []Point{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}, {X: 3, Y: 0}}},
		},
	}
	areas := AreaControlled(board)
	assert.Equal(t, []int{47}, areas)
}

// TestAreaControlledSymmetricTwoSnakes places two equal-length serpents
// mirrored across an 11x11 board; the shared frontier should tie out to
// equal areas for both.
func TestAreaControlledSymmetricTwoSnakes(t *testing.T) {
	board := Board{
		Height: 11, Width: 11, MaxSnakes: 2,
		Snakes: []Snake{
			{ID: 0, Length: 3, Head: Point{X: 2, Y: 5},
				Body: []Point{{X: 2, Y: 5}, {X: 1, Y: 5}, {X: 0, Y: 5}}},
			{ID: 1, Length: 3, Head: Point{X: 8, Y: 5},
				Body: []Point{{X: 8, Y: 5}, {X: 9, Y: 5}, {X: 10, Y: 5}}},
		},
	}
	areas := AreaControlled(board)
	assert.Equal(t, areas[0], areas[1], "symmetric board ties out to equal area")
}

func TestAreaControlledSumBound(t *testing.T) {
	board := Board{
		Height: 11, Width: 11, MaxSnakes: 2,
		Snakes: []Snake{
			{ID: 0, Length: 4, Head: Point{X: 2, Y: 5},
				Body: []Point{{X: 2, Y: 5}, {X: 1, Y: 5}, {X: 0, Y: 5}, {X: 0, Y: 4}}},
			{ID: 1, Length: 4, Head: Point{X: 8, Y: 5},
				Body: []Point{{X: 8, Y: 5}, {X: 9, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 4}}},
		},
	}
	areas := AreaControlled(board)
	sum := 0
	for _, a := range areas {
		sum += a
	}
	bodyInteriors := 0
	for _, s := range board.Snakes {
		bodyInteriors += len(s.Body) - 2
	}
	assert.LessOrEqual(t, sum, board.Width*board.Height-bodyInteriors)
}

func TestCalculateAreasUnreachableDirectionZero(t *testing.T) {
	board := Board{
		Height: 3, Width: 3, MaxSnakes: 1,
		Snakes: []Snake{
			{ID: 0, Length: 1, Head: Point{X: 0, Y: 0}, Body: []Point{{X: 0, Y: 0}}},
		},
	}
	areas := CalculateAreas(board, Ruleset{})
	assert.Equal(t, 4, len(areas))
	assert.Equal(t, 0, areas[Left], "left is not among a one-segment serpent's options")
}
