package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseEvalBoard() Board {
	return Board{
		Height: 11, Width: 11, MaxSnakes: 2,
		Snakes: []Snake{
			{ID: 0, Head: Point{X: 5, Y: 5}, Length: 3,
				Body: []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
		},
	}
}

func TestEvaluateDeadIDsZero(t *testing.T) {
	board := baseEvalBoard()
	scores := Evaluate(board)
	assert.Equal(t, int64(0), scores[1], "id 1 has no live serpent")
}

func TestEvaluateMonotonicInLength(t *testing.T) {
	short := baseEvalBoard()
	long := baseEvalBoard()
	long.Snakes[0].Length = 10

	assert.Greater(t, Evaluate(long)[0], Evaluate(short)[0])
}

func TestEvaluateMonotonicInFewerOpponents(t *testing.T) {
	crowded := baseEvalBoard()
	crowded.Snakes = append(crowded.Snakes, Snake{ID: 1, Head: Point{X: 0, Y: 0}, Length: 3,
		Body: []Point{{X: 0, Y: 0}, {X: 0, Y: 1}}})

	lonely := baseEvalBoard()

	assert.Greater(t, Evaluate(lonely)[0], Evaluate(crowded)[0])
}

func TestEvaluateMonotonicInFoodProximity(t *testing.T) {
	near := baseEvalBoard()
	near.Food = []Point{{X: 5, Y: 6}}
	far := baseEvalBoard()
	far.Food = []Point{{X: 0, Y: 0}}

	assert.Greater(t, Evaluate(near)[0], Evaluate(far)[0])
}

func TestEvaluateOpenDirectionsBonus(t *testing.T) {
	open := baseEvalBoard()
	open.Snakes = append(open.Snakes, Snake{ID: 1, Length: 5, Head: Point{X: 10, Y: 10},
		Body: []Point{{X: 10, Y: 10}, {X: 10, Y: 9}, {X: 10, Y: 8}, {X: 10, Y: 7}}})
	cramped := baseEvalBoard()
	cramped.Snakes = append(cramped.Snakes, Snake{ID: 1, Length: 5, Head: Point{X: 10, Y: 10},
		Body: []Point{{X: 10, Y: 10}, {X: 5, Y: 6}, {X: 4, Y: 5}, {X: 6, Y: 5}}})

	assert.Greater(t, Evaluate(open)[0], Evaluate(cramped)[0])
}

func TestWillKillDecode(t *testing.T) {
	scores := Evaluate(baseEvalBoard())
	assert.True(t, WillKill(scores[0], 2), "dropping from 2 live to 1 counts as a kill")
	assert.False(t, WillKill(scores[0], 1))
}
