package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeMoveTo(t *testing.T) {
	s := Snake{
		Health: 100,
		Body:   []Point{{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}},
		Head:   Point{X: 2, Y: 2},
	}
	s.MoveTo(Point{X: 2, Y: 3})

	assert.Equal(t, Point{X: 2, Y: 3}, s.Head)
	assert.Equal(t, 3, len(s.Body), "body length preserved after move")
	assert.Equal(t, 99, s.Health)
	assert.Equal(t, Point{X: 2, Y: 1}, s.Body[2], "tail dropped")
}

func TestSnakeEatFood(t *testing.T) {
	s := Snake{
		Health: 50,
		Length: 3,
		Body:   []Point{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
	}
	s.EatFood()

	assert.Equal(t, MaxHealth, s.Health)
	assert.Equal(t, 4, s.Length)
	assert.Equal(t, 4, len(s.Body))
	assert.Equal(t, s.Body[2], s.Body[3], "duplicated tail segment")
}

type getOptionTestCase struct {
	Description string
	Snake       Snake
	Expected    map[Point]bool
}

var getOptionTestCases = []getOptionTestCase{
	{
		Description: "neck below head",
		Snake:       Snake{Head: Point{X: 2, Y: 2}, Body: []Point{{X: 2, Y: 2}, {X: 2, Y: 1}}},
		Expected: map[Point]bool{
			{X: 2, Y: 3}: true, // up
			{X: 3, Y: 2}: true, // right
			{X: 1, Y: 2}: true, // left
		},
	},
	{
		Description: "neck above head",
		Snake:       Snake{Head: Point{X: 2, Y: 2}, Body: []Point{{X: 2, Y: 2}, {X: 2, Y: 3}}},
		Expected: map[Point]bool{
			{X: 2, Y: 1}: true, // down
			{X: 3, Y: 2}: true, // right
			{X: 1, Y: 2}: true, // left
		},
	},
	{
		Description: "neck right of head",
		Snake:       Snake{Head: Point{X: 2, Y: 2}, Body: []Point{{X: 2, Y: 2}, {X: 3, Y: 2}}},
		Expected: map[Point]bool{
			{X: 2, Y: 1}: true, // down
			{X: 2, Y: 3}: true, // up
			{X: 1, Y: 2}: true, // left
		},
	},
	{
		Description: "neck left of head",
		Snake:       Snake{Head: Point{X: 2, Y: 2}, Body: []Point{{X: 2, Y: 2}, {X: 1, Y: 2}}},
		Expected: map[Point]bool{
			{X: 2, Y: 1}: true, // down
			{X: 2, Y: 3}: true, // up
			{X: 3, Y: 2}: true, // right
		},
	},
}

func TestSnakeGetOption(t *testing.T) {
	for _, tc := range getOptionTestCases {
		t.Run(tc.Description, func(t *testing.T) {
			seen := map[Point]bool{}
			for i := 0; i < 3; i++ {
				seen[tc.Snake.GetOption(i)] = true
			}
			assert.Equal(t, tc.Expected, seen)
		})
	}
}

func TestSnakeBodyCollisionWith(t *testing.T) {
	self := Snake{ID: 0, Head: Point{X: 2, Y: 2}}
	other := Snake{ID: 1, Body: []Point{{X: 5, Y: 5}, {X: 2, Y: 2}, {X: 2, Y: 1}}}
	assert.True(t, self.BodyCollisionWith(other))

	self.Head = Point{X: 5, Y: 5}
	assert.False(t, self.BodyCollisionWith(other), "head-on-head excluded from body collision")
}

func TestSnakeLostHeadOn(t *testing.T) {
	short := Snake{ID: 0, Head: Point{X: 1, Y: 1}, Length: 3}
	long := Snake{ID: 1, Head: Point{X: 1, Y: 1}, Length: 4}
	equal := Snake{ID: 2, Head: Point{X: 1, Y: 1}, Length: 3}

	assert.True(t, short.LostHeadOn(long))
	assert.False(t, long.LostHeadOn(short))
	assert.True(t, short.LostHeadOn(equal), "equal length ties kill both")
}
