package main

import (
	"sync"
)

// rootResult is what one of the four minimax-root workers sends back.
type rootResult struct {
	dir    Direction
	scores []int64
}

// pathResult is what one of the four longest_path-probe workers sends back.
type pathResult struct {
	dir    Direction
	length int
}

// CalculateMove is the arbiter: for each of YOU's three legal directions it
// fans out one minimax root and one longest_path probe (six short-lived
// goroutines, each root owning an isolated board clone); the direction that
// reverses into the neck gets no workers and no features. It runs
// calculate_areas on its own goroutine, merges
// everything into per-direction features, and walks a fixed priority ladder
// to choose a direction. Returns the chosen direction and a numeric outcome
// code (for logging only).
func CalculateMove(board Board, ruleset Ruleset) (Direction, int) {
	you, ok := board.SnakeByID(YouID)
	if !ok {
		return Up, 48
	}

	maxDepth := MaxDepth(len(board.Snakes))
	searchLimit := you.Length
	if searchLimit > MaxSearch {
		searchLimit = MaxSearch
	}

	rootCh := make(chan rootResult, len(AllDirections))
	pathCh := make(chan pathResult, len(AllDirections))

	var wg sync.WaitGroup
	for _, d := range AllDirections {
		dest := you.Head.Step(d)
		if !legalRootMove(you, dest) {
			rootCh <- rootResult{dir: d, scores: nil}
			pathCh <- pathResult{dir: d, length: -1}
			continue
		}

		wg.Add(2)
		go func(d Direction, dest Point) {
			defer wg.Done()
			clone := CopyBoard(board)
			applyJointMove(&clone, YouID, dest)
			rootCh <- rootResult{dir: d, scores: MinimaxRoot(clone, ruleset, maxDepth)}
		}(d, dest)

		go func(d Direction, dest Point) {
			defer wg.Done()
			length := LongestPath(board, dest, searchLimit, YouID)
			pathCh <- pathResult{dir: d, length: length}
		}(d, dest)
	}

	go func() {
		wg.Wait()
		close(rootCh)
		close(pathCh)
	}()

	rootScores := map[Direction][]int64{}
	for r := range rootCh {
		rootScores[r.dir] = r.scores
	}
	pathLengths := map[Direction]int{}
	for p := range pathCh {
		pathLengths[p.dir] = p.length
	}

	areas := CalculateAreas(board, ruleset)

	return arbitrate(board, you, rootScores, pathLengths, areas, searchLimit)
}

// legalRootMove reports whether dest is one of you's three legal options
// (not a reversal into the neck). Out-of-bounds destinations are still
// considered — the simulator eliminates them on the next GameStep, giving
// correct "never pick this" behaviour via a zero survival feature rather
// than a special case here.
func legalRootMove(you Snake, dest Point) bool {
	for i := 0; i < DirectionOptions; i++ {
		if you.GetOption(i) == dest {
			return true
		}
	}
	return false
}

type directionFeatures struct {
	survival    bool
	best        bool
	canEscape   bool
	againstWall bool
	foodOnTile  bool
	area        int
	willKill    bool
}

// arbitrate merges the concurrently computed features and walks the fixed
// priority ladder, highest tier first. Within a tier, direction order is
// fixed: down, up, right, left.
func arbitrate(
	board Board,
	you Snake,
	rootScores map[Direction][]int64,
	pathLengths map[Direction]int,
	areas map[Direction]int,
	searchLimit int,
) (Direction, int) {
	features := map[Direction]directionFeatures{}
	maxArea := 0
	bestScore := int64(-1)
	haveBest := false

	for _, d := range AllDirections {
		scores := rootScores[d]
		if scores == nil {
			features[d] = directionFeatures{}
			continue
		}
		score := scores[YouID]
		if !haveBest || score > bestScore {
			bestScore, haveBest = score, true
		}
		if a := areas[d]; a > maxArea {
			maxArea = a
		}
	}

	closestFood, foodExists := FindClosestFood(board, you.Head)
	weakSnake, weakExists := FindWeakerSnake(board, you)

	for _, d := range AllDirections {
		scores := rootScores[d]
		if scores == nil {
			continue
		}
		score := scores[YouID]
		dest := you.Head.Step(d)
		features[d] = directionFeatures{
			survival:    score > 0,
			best:        haveBest && score == bestScore,
			canEscape:   pathLengths[d] >= searchLimit,
			againstWall: !dest.InBounds(board.Width, board.Height) || onWallEdge(board, dest),
			foodOnTile:  foodExists && dest == closestFood,
			area:        areas[d],
			willKill:    WillKill(score, len(board.Snakes)),
		}
	}

	down, up, right, left := features[Down], features[Up], features[Right], features[Left]

	foodDir := func(d Direction) bool {
		if !foodExists {
			return false
		}
		switch d {
		case Down:
			return closestFood.Y < you.Head.Y
		case Up:
			return closestFood.Y > you.Head.Y
		case Right:
			return closestFood.X > you.Head.X
		case Left:
			return closestFood.X < you.Head.X
		}
		return false
	}
	weakDir := func(d Direction) bool {
		if !weakExists {
			return false
		}
		switch d {
		case Down:
			return weakSnake.Head.Y < you.Head.Y
		case Up:
			return weakSnake.Head.Y > you.Head.Y
		case Right:
			return weakSnake.Head.X > you.Head.X
		case Left:
			return weakSnake.Head.X < you.Head.X
		}
		return false
	}
	nonWallUnlessFood := func(f directionFeatures) bool {
		return !f.againstWall || f.foodOnTile
	}

	switch {
	// 1. Kill with a best, surviving move.
	case down.survival && down.willKill && down.best:
		return Down, 0
	case up.survival && up.willKill && up.best:
		return Up, 1
	case right.survival && right.willKill && right.best:
		return Right, 2
	case left.survival && left.willKill && left.best:
		return Left, 3

	// 2. Best + survives + escape + non-wall-unless-food, heads toward the weak snake.
	case down.survival && down.canEscape && down.best && nonWallUnlessFood(down) && weakDir(Down):
		return Down, 4
	case up.survival && up.canEscape && up.best && nonWallUnlessFood(up) && weakDir(Up):
		return Up, 5
	case right.survival && right.canEscape && right.best && nonWallUnlessFood(right) && weakDir(Right):
		return Right, 6
	case left.survival && left.canEscape && left.best && nonWallUnlessFood(left) && weakDir(Left):
		return Left, 7

	// 3. Same guard, heads toward food.
	case down.survival && down.canEscape && down.best && nonWallUnlessFood(down) && foodDir(Down):
		return Down, 8
	case up.survival && up.canEscape && up.best && nonWallUnlessFood(up) && foodDir(Up):
		return Up, 9
	case right.survival && right.canEscape && right.best && nonWallUnlessFood(right) && foodDir(Right):
		return Right, 10
	case left.survival && left.canEscape && left.best && nonWallUnlessFood(left) && foodDir(Left):
		return Left, 11

	// 4. Same guard, no directional preference (escape-only, non-wall-unless-food).
	case down.survival && down.canEscape && down.best && nonWallUnlessFood(down):
		return Down, 12
	case up.survival && up.canEscape && up.best && nonWallUnlessFood(up):
		return Up, 13
	case right.survival && right.canEscape && right.best && nonWallUnlessFood(right):
		return Right, 14
	case left.survival && left.canEscape && left.best && nonWallUnlessFood(left):
		return Left, 15

	// 5. Relax the wall clause: weak snake, then food, then escape-only.
	case down.survival && down.canEscape && down.best && weakDir(Down):
		return Down, 16
	case up.survival && up.canEscape && up.best && weakDir(Up):
		return Up, 17
	case right.survival && right.canEscape && right.best && weakDir(Right):
		return Right, 18
	case left.survival && left.canEscape && left.best && weakDir(Left):
		return Left, 19
	case down.survival && down.canEscape && down.best && foodDir(Down):
		return Down, 20
	case up.survival && up.canEscape && up.best && foodDir(Up):
		return Up, 21
	case right.survival && right.canEscape && right.best && foodDir(Right):
		return Right, 22
	case left.survival && left.canEscape && left.best && foodDir(Left):
		return Left, 23
	case down.survival && down.canEscape && down.best:
		return Down, 24
	case up.survival && up.canEscape && up.best:
		return Up, 25
	case right.survival && right.canEscape && right.best:
		return Right, 26
	case left.survival && left.canEscape && left.best:
		return Left, 27

	// 6. Drop the best-move requirement, keeping survival + escape.
	case down.survival && down.canEscape:
		return Down, 28
	case up.survival && up.canEscape:
		return Up, 29
	case right.survival && right.canEscape:
		return Right, 30
	case left.survival && left.canEscape:
		return Left, 31

	// 7. Drop survival, keeping best + escape.
	case down.canEscape && down.best:
		return Down, 32
	case up.canEscape && up.best:
		return Up, 33
	case right.canEscape && right.best:
		return Right, 34
	case left.canEscape && left.best:
		return Left, 35

	// 8. Drop everything but escape.
	case down.canEscape:
		return Down, 36
	case up.canEscape:
		return Up, 37
	case right.canEscape:
		return Right, 38
	case left.canEscape:
		return Left, 39

	// 9. Best move with max area control, no survival/escape guarantee.
	case down.best && down.area == maxArea:
		return Down, 40
	case up.best && up.area == maxArea:
		return Up, 41
	case right.best && right.area == maxArea:
		return Right, 42
	case left.best && left.area == maxArea:
		return Left, 43

	// 10. Max area control alone.
	case down.area == maxArea:
		return Down, 44
	case up.area == maxArea:
		return Up, 45
	case right.area == maxArea:
		return Right, 46
	case left.area == maxArea:
		return Left, 47
	}

	return Up, 48
}

// onWallEdge reports whether pos sits on the outermost ring of the board.
func onWallEdge(board Board, pos Point) bool {
	return pos.X == 0 || pos.Y == 0 || pos.X == board.Width-1 || pos.Y == board.Height-1
}
