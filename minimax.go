package main

// Minimax is a depth-bounded joint-move enumerator with per-participant
// maximin selection. It is not classical minimax: every live serpent moves
// simultaneously at each node, so a node with N live serpents produces
// DirectionOptions^N successor boards, one per joint-move profile.
//
// At each node: decode profile i so serpent j takes option (i /
// DirectionOptions^j) mod DirectionOptions; clone the board, apply every
// serpent's move, then GameStep. Recurse to get a score vector per profile.
// For each serpent j and each of its three options d, track the profile
// that gives j's minimum score when j plays d — interpreted as every other
// serpent colluding to minimise j's outcome given that choice. Finally each
// serpent picks the option that maximises over its own per-option minima,
// and the score vector for that assembled joint profile is returned.
func Minimax(board Board, ruleset Ruleset, depth, maxDepth int) []int64 {
	live := board.Snakes
	n := len(live)
	if depth >= maxDepth || n == 0 {
		return Evaluate(board)
	}

	profileCount := pow3(n)
	scores := make([][]int64, profileCount)

	for i := 0; i < profileCount; i++ {
		clone := CopyBoard(board)
		for j, s := range live {
			option := (i / pow3(j)) % DirectionOptions
			dest := s.GetOption(option)
			applyJointMove(&clone, s.ID, dest)
		}
		GameStep(&clone, ruleset)
		scores[i] = Minimax(clone, ruleset, depth+1, maxDepth)
	}

	// minByOption[j][d] = index of the profile minimising serpent j's score
	// among all profiles where j played option d.
	minByOption := make([][DirectionOptions]int, n)
	haveMin := make([][DirectionOptions]bool, n)
	for i := 0; i < profileCount; i++ {
		for j, s := range live {
			option := (i / pow3(j)) % DirectionOptions
			if !haveMin[j][option] || scores[i][s.ID] < scores[minByOption[j][option]][s.ID] {
				minByOption[j][option] = i
				haveMin[j][option] = true
			}
		}
	}

	chosen := 0
	for j, s := range live {
		bestOption := 0
		bestScore := scores[minByOption[j][0]][s.ID]
		for d := 1; d < DirectionOptions; d++ {
			candidate := scores[minByOption[j][d]][s.ID]
			if candidate > bestScore {
				bestScore = candidate
				bestOption = d
			}
		}
		chosen += bestOption * pow3(j)
	}

	return scores[chosen]
}

// MinimaxRoot scores one of YOU's candidate first moves. board must already
// have YOU's head moved to that candidate destination, with every other
// serpent still unmoved and GameStep not yet applied — YOU's move is fixed
// by the caller, not enumerated here. It enumerates only the opponents'
// DirectionOptions^(N-1) first-move profiles, applies one GameStep per
// profile (resolving YOU and every opponent simultaneously), recurses into
// full Minimax at depth 1, and maximins over each opponent's own options to
// assemble the returned score vector. Grounded on recursion_entry in
// board/simulate.rs: the first level of recursion after the caller has
// already applied YOU's move, which enumerates only the remaining
// num_snakes-1 serpents before calling into the full minimax.
func MinimaxRoot(board Board, ruleset Ruleset, maxDepth int) []int64 {
	if maxDepth <= 0 || len(board.Snakes) == 0 {
		return Evaluate(board)
	}

	you, ok := board.SnakeByID(YouID)
	if !ok {
		return Evaluate(board)
	}

	var opponents []Snake
	for _, s := range board.Snakes {
		if s.ID != you.ID {
			opponents = append(opponents, s)
		}
	}
	m := len(opponents)
	if m == 0 {
		clone := CopyBoard(board)
		GameStep(&clone, ruleset)
		return Minimax(clone, ruleset, 1, maxDepth)
	}

	profileCount := pow3(m)
	scores := make([][]int64, profileCount)

	for i := 0; i < profileCount; i++ {
		clone := CopyBoard(board)
		for j, s := range opponents {
			option := (i / pow3(j)) % DirectionOptions
			dest := s.GetOption(option)
			applyJointMove(&clone, s.ID, dest)
		}
		GameStep(&clone, ruleset)
		scores[i] = Minimax(clone, ruleset, 1, maxDepth)
	}

	minByOption := make([][DirectionOptions]int, m)
	haveMin := make([][DirectionOptions]bool, m)
	for i := 0; i < profileCount; i++ {
		for j, s := range opponents {
			option := (i / pow3(j)) % DirectionOptions
			if !haveMin[j][option] || scores[i][s.ID] < scores[minByOption[j][option]][s.ID] {
				minByOption[j][option] = i
				haveMin[j][option] = true
			}
		}
	}

	chosen := 0
	for j, s := range opponents {
		bestOption := 0
		bestScore := scores[minByOption[j][0]][s.ID]
		for d := 1; d < DirectionOptions; d++ {
			candidate := scores[minByOption[j][d]][s.ID]
			if candidate > bestScore {
				bestScore = candidate
				bestOption = d
			}
		}
		chosen += bestOption * pow3(j)
	}

	return scores[chosen]
}

func pow3(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= DirectionOptions
	}
	return result
}

// MaxDepth computes the recursion depth budget for a search over n live
// serpents: deeper searches become affordable as fewer serpents remain.
func MaxDepth(n int) int {
	if n <= 0 {
		return 1
	}
	depth := SearchExponent / n
	if depth < 1 {
		return 1
	}
	return depth
}
