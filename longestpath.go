package main

// LongestPath computes the length of the longest self-avoiding walk from
// start that stays in-bounds and does not run into a blocking body segment,
// capped at limit. selfID identifies which serpent is walking: its own tail
// retreats later because consumed food delays it, so the free-distance check
// against its own body is offset by food already eaten along the path.
func LongestPath(board Board, start Point, limit int, selfID int) int {
	visited := make([]Point, 0, limit)
	return longestPathWalk(board, start, 0, 0, visited, limit, selfID)
}

func longestPathWalk(board Board, pos Point, currentArea, foodEaten int, visited []Point, limit int, selfID int) int {
	if currentArea >= limit {
		return currentArea
	}
	if !pos.InBounds(board.Width, board.Height) {
		return currentArea
	}
	for _, v := range visited {
		if v == pos {
			return currentArea
		}
	}
	if blocked, passable := longestPathBodyCheck(board, pos, currentArea, foodEaten, selfID); blocked {
		if passable {
			return limit
		}
		return currentArea
	}

	eaten := foodEaten
	for _, f := range board.Food {
		if f == pos {
			eaten++
			break
		}
	}

	currentArea++
	visited = append(visited, pos)

	best := currentArea
	for _, next := range pos.Adjacent() {
		child := longestPathWalk(board, next, currentArea, eaten, visited, limit, selfID)
		if child > best {
			best = child
		}
		visited = visited[:currentArea]
		if best >= limit {
			break
		}
	}
	return best
}

// longestPathBodyCheck reports whether pos lies on some serpent's body. When
// it does, passable tells whether that segment will have vacated by the time
// the walk reaches it (a successful tail-chase).
func longestPathBodyCheck(board Board, pos Point, currentArea, foodEaten, selfID int) (blocked bool, passable bool) {
	for _, s := range board.Snakes {
		for i, seg := range s.Body {
			if seg != pos {
				continue
			}
			freeDistance := s.Length - i - 1
			if s.ID == selfID {
				return true, freeDistance <= currentArea-foodEaten
			}
			return true, freeDistance <= currentArea
		}
	}
	return false, false
}
