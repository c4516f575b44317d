package main

// Evaluate scores every participant slot on board. The result has length
// board.MaxSnakes, indexed by serpent id; a dead or never-assigned id scores
// zero. Each live serpent's score is a decimal-digit-packed combination of
// independent signals, arranged so that a higher band always dominates every
// lower one regardless of how the lower bands land.
//
//	10^0     open_directions
//	10^1-2   food proximity
//	10^3-5   length, capped at 999
//	10^6-7   closest-weaker-serpent proximity
//	10^8     +1 if open_directions >= 2
//	10^9-10  fewer live opponents dominates everything
func Evaluate(board Board) []int64 {
	scores := make([]int64, board.MaxSnakes)

	liveBonus := int64(1_000_000_000) * int64(max0(100-len(board.Snakes)))

	for _, s := range board.Snakes {
		if s.ID < 0 || s.ID >= len(scores) {
			continue
		}

		score := int64(OpenDirections(board, s))

		if food, ok := FindClosestFood(board, s.Head); ok {
			score += 10 * int64(max0(100-s.Head.ManhattanDistance(food)))
		}

		length := s.Length
		if length > 999 {
			length = 999
		}
		score += 1000 * int64(length)

		if weaker, ok := FindWeakerSnake(board, s); ok {
			score += 1_000_000 * int64(max0(100-s.Head.ManhattanDistance(weaker.Head)))
		}

		if OpenDirections(board, s) >= 2 {
			score += 100_000_000
		}

		score += liveBonus

		scores[s.ID] = score
	}

	return scores
}

// WillKill decodes the opponent-count band of a root score to tell whether
// the move that produced it reduces the live-opponent count within the
// search horizon, relative to the number of serpents currently on board.
func WillKill(score int64, liveCount int) bool {
	band := (score / 1_000_000_000) % 100
	return 100-int(band) < liveCount
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
