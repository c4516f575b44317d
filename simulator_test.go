package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultRuleset = Ruleset{MinimumFood: 0}

func TestGameStepNoChange(t *testing.T) {
	board := Board{Height: 11, Width: 11, Turn: 4}
	GameStep(&board, defaultRuleset)
	assert.Equal(t, 5, board.Turn)
	assert.Empty(t, board.Snakes)
	assert.Empty(t, board.Food)
}

func TestGameStepBodyCollision(t *testing.T) {
	board := Board{
		Height: 11, Width: 11,
		Snakes: []Snake{
			{ID: 0, Health: 90, Length: 3, Head: Point{X: 2, Y: 2},
				Body: []Point{{X: 2, Y: 2}, {X: 5, Y: 5}, {X: 6, Y: 5}}},
			{ID: 1, Health: 90, Length: 4, Head: Point{X: 8, Y: 8},
				Body: []Point{{X: 8, Y: 8}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}}},
		},
	}
	GameStep(&board, defaultRuleset)

	assert.Equal(t, 1, len(board.Snakes))
	assert.Equal(t, 1, board.Snakes[0].ID)
	assert.Equal(t, 1, board.Turn)
}

func TestGameStepHeadToHeadLoss(t *testing.T) {
	board := Board{
		Height: 11, Width: 11,
		Snakes: []Snake{
			{ID: 0, Health: 90, Length: 3, Head: Point{X: 5, Y: 5},
				Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
			{ID: 1, Health: 90, Length: 4, Head: Point{X: 5, Y: 5},
				Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8}}},
		},
	}
	assert.True(t, board.Snakes[0].LostHeadOn(board.Snakes[1]))

	GameStep(&board, defaultRuleset)

	assert.Equal(t, 1, len(board.Snakes))
	assert.Equal(t, 1, board.Snakes[0].ID)
}

func TestGameStepHeadToHeadTie(t *testing.T) {
	board := Board{
		Height: 11, Width: 11,
		Snakes: []Snake{
			{ID: 0, Health: 90, Length: 3, Head: Point{X: 5, Y: 5},
				Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
			{ID: 1, Health: 90, Length: 3, Head: Point{X: 5, Y: 5},
				Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}},
		},
	}
	GameStep(&board, defaultRuleset)
	assert.Empty(t, board.Snakes)
}

func TestGameStepEatAndGrow(t *testing.T) {
	board := Board{
		Height: 11, Width: 11,
		Food: []Point{{X: 3, Y: 3}},
		Snakes: []Snake{
			{ID: 0, Health: 80, Length: 3, Head: Point{X: 3, Y: 3},
				Body: []Point{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}}},
		},
	}
	GameStep(&board, defaultRuleset)

	assert.Empty(t, board.Food)
	assert.Equal(t, 4, board.Snakes[0].Length)
	assert.Equal(t, MaxHealth, board.Snakes[0].Health)
}

func TestGameStepStarvation(t *testing.T) {
	board := Board{
		Height: 11, Width: 11,
		Snakes: []Snake{
			{ID: 0, Health: 0, Length: 2, Head: Point{X: 3, Y: 3},
				Body: []Point{{X: 3, Y: 3}, {X: 3, Y: 2}}},
		},
	}
	GameStep(&board, Ruleset{MinimumFood: 1})
	assert.Empty(t, board.Snakes)
}

func TestGameStepOutOfBounds(t *testing.T) {
	board := Board{
		Height: 11, Width: 11,
		Snakes: []Snake{
			{ID: 0, Health: 90, Length: 2, Head: Point{X: -1, Y: 3},
				Body: []Point{{X: -1, Y: 3}, {X: 0, Y: 3}}},
		},
	}
	GameStep(&board, defaultRuleset)
	assert.Empty(t, board.Snakes)
}

func TestOpenDirections(t *testing.T) {
	board := Board{
		Height: 11, Width: 11,
		Snakes: []Snake{
			{ID: 0, Head: Point{X: 5, Y: 5},
				Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
		},
	}
	assert.Equal(t, 3, OpenDirections(board, board.Snakes[0]))
}

func TestFindClosestFood(t *testing.T) {
	board := Board{Food: []Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 1, Y: 1}}}
	closest, ok := FindClosestFood(board, Point{X: 0, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, Point{X: 0, Y: 0}, closest)

	_, ok = FindClosestFood(Board{}, Point{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestFindWeakerSnake(t *testing.T) {
	board := Board{
		Snakes: []Snake{
			{ID: 0, Head: Point{X: 0, Y: 0}, Length: 10},
			{ID: 1, Head: Point{X: 1, Y: 0}, Length: 4},
			{ID: 2, Head: Point{X: 5, Y: 5}, Length: 9},
		},
	}
	weaker, ok := FindWeakerSnake(board, board.Snakes[0])
	assert.True(t, ok)
	assert.Equal(t, 1, weaker.ID, "id 2 is within LengthAdvantage, not weaker enough")
}
