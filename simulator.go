package main

// GameStep advances board by one tick under ruleset. The caller is
// responsible for moving every serpent's head first (MoveTo is not called
// here) — GameStep only resolves food, starvation, bounds, and
// collisions, then increments the turn. It mutates board in place.
//
// Order of operations matches the official rules exactly: feed before
// collision resolution, and all eliminations within a tick are collected
// before any are applied, giving simultaneous-elimination semantics.
func GameStep(board *Board, ruleset Ruleset) {
	feed(board)
	starve(board, ruleset)
	collide(board)
	board.Turn++
}

// feed grows and heals every serpent whose head sits on a food tile, then
// removes that tile. A tile under multiple simultaneous heads feeds all of
// them and is still consumed exactly once, via unordered swap-remove.
func feed(board *Board) {
	for i := 0; i < len(board.Food); i++ {
		tile := board.Food[i]
		eaten := false
		for j := range board.Snakes {
			if board.Snakes[j].Head == tile {
				board.Snakes[j].EatFood()
				eaten = true
			}
		}
		if eaten {
			last := len(board.Food) - 1
			board.Food[i] = board.Food[last]
			board.Food = board.Food[:last]
			i--
		}
	}
}

// starve removes every serpent whose health has dropped below the ruleset's
// minimum, or whose head has left the board.
func starve(board *Board, ruleset Ruleset) {
	live := board.Snakes[:0]
	for _, s := range board.Snakes {
		if s.Health < ruleset.MinimumFood {
			continue
		}
		if !s.Head.InBounds(board.Width, board.Height) {
			continue
		}
		live = append(live, s)
	}
	board.Snakes = live
}

// collide removes every serpent that lost a head-on collision or ran its
// head into another body (including its own, via indices >= 1). Marks are
// collected against the full pre-collision roster before anything is
// removed, so two serpents trading a fatal head-on both die in the same tick.
func collide(board *Board) {
	dead := make(map[int]bool, len(board.Snakes))
	for _, s := range board.Snakes {
		for _, other := range board.Snakes {
			if s.LostHeadOn(other) || s.BodyCollisionWith(other) {
				dead[s.ID] = true
				break
			}
		}
	}
	if len(dead) == 0 {
		return
	}
	live := board.Snakes[:0]
	for _, s := range board.Snakes {
		if !dead[s.ID] {
			live = append(live, s)
		}
	}
	board.Snakes = live
}

// BoardIsTerminal reports whether the game has ended: one or zero serpents remain.
func BoardIsTerminal(board Board) bool {
	return len(board.Snakes) <= 1
}

// OpenDirections counts the neighbours of s's head that are in-bounds and
// not blocked by any serpent body segment, excluding each serpent's own tail
// (which is about to vacate).
func OpenDirections(board Board, s Snake) int {
	open := 0
	for _, n := range s.Head.Adjacent() {
		if !n.InBounds(board.Width, board.Height) {
			continue
		}
		blocked := false
		for _, other := range board.Snakes {
			tail := len(other.Body) - 1
			for i, seg := range other.Body {
				if i == tail {
					continue
				}
				if n == seg {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
		}
		if !blocked {
			open++
		}
	}
	return open
}

// FindClosestFood returns the nearest food tile to p and whether any food
// exists on the board. Stable under reordering of the food slice: ties are
// broken by the smaller X, then the smaller Y.
func FindClosestFood(board Board, p Point) (Point, bool) {
	found := false
	var best Point
	bestDist := 0
	for _, f := range board.Food {
		d := p.ManhattanDistance(f)
		tieWins := d == bestDist && (f.X < best.X || (f.X == best.X && f.Y < best.Y))
		if !found || d < bestDist || tieWins {
			best, bestDist, found = f, d, true
		}
	}
	return best, found
}

// FindWeakerSnake returns the nearest opposing serpent at least
// LengthAdvantage shorter than self, and whether one exists.
func FindWeakerSnake(board Board, self Snake) (Snake, bool) {
	found := false
	var best Snake
	bestDist := 0
	for _, other := range board.Snakes {
		if other.ID == self.ID {
			continue
		}
		if other.Length > self.Length-LengthAdvantage {
			continue
		}
		d := self.Head.ManhattanDistance(other.Head)
		if !found || d < bestDist {
			best, bestDist, found = other, d, true
		}
	}
	return best, found
}
