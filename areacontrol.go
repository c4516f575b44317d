package main

import "sort"

type tileStatus int

const (
	tileEmpty tileStatus = iota
	tileGone
	tileTaken
)

type tile struct {
	status tileStatus
	owner  int
}

// AreaControlled runs a multi-source simultaneous BFS from every serpent's
// head, pre-marking body interiors (excluding head and tail, which are about
// to vacate) as blocking. Serpents must be visited in descending length
// order — strictly longer serpents reach their Voronoi cell first, which is
// the only way the equal-length contested-tile tiebreak stays consistent.
// Returns a slice of per-id tile counts sized board.MaxSnakes.
func AreaControlled(board Board) []int {
	areas := make([]int, board.MaxSnakes)
	if len(board.Snakes) == 0 {
		return areas
	}

	grid := make(map[Point]*tile, board.Width*board.Height)
	for _, s := range board.Snakes {
		for i, seg := range s.Body {
			if i == 0 || i == len(s.Body)-1 {
				continue
			}
			grid[seg] = &tile{status: tileGone}
		}
	}

	ordered := append([]Snake(nil), board.Snakes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Length > ordered[j].Length
	})

	type queued struct {
		id  int
		pos Point
	}
	var queue []queued

	lengthByID := make(map[int]int, len(ordered))
	for _, s := range ordered {
		lengthByID[s.ID] = s.Length
		if _, exists := grid[s.Head]; !exists {
			grid[s.Head] = &tile{status: tileTaken, owner: s.ID}
			if s.ID >= 0 && s.ID < len(areas) {
				areas[s.ID]++
			}
			queue = append(queue, queued{id: s.ID, pos: s.Head})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// A tile lost to an equal-length tie since it was queued no longer
		// belongs to cur.id and does not expand.
		if t := grid[cur.pos]; t.status != tileTaken || t.owner != cur.id {
			continue
		}

		for _, n := range cur.pos.Adjacent() {
			if !n.InBounds(board.Width, board.Height) {
				continue
			}
			t, exists := grid[n]
			if !exists {
				grid[n] = &tile{status: tileTaken, owner: cur.id}
				if cur.id >= 0 && cur.id < len(areas) {
					areas[cur.id]++
				}
				queue = append(queue, queued{id: cur.id, pos: n})
				continue
			}
			switch t.status {
			case tileGone:
				continue
			case tileTaken:
				if t.owner == cur.id {
					continue
				}
				if lengthByID[t.owner] == lengthByID[cur.id] {
					t.status = tileGone
					if t.owner >= 0 && t.owner < len(areas) {
						areas[t.owner]--
					}
				}
				// Longer (or equal but already resolved) claimant keeps the tile.
			}
		}
	}

	return areas
}

// CalculateAreas enumerates every joint move profile across live serpents,
// runs GameStep on each, measures AreaControlled[YouID], and for each of the
// agent's three legal directions takes the minimum (worst-case over
// opponent replies). A direction outside the agent's legal options reports 0.
func CalculateAreas(board Board, ruleset Ruleset) map[Direction]int {
	result := map[Direction]int{}

	you, ok := board.SnakeByID(YouID)
	if !ok {
		return result
	}

	opponents := make([]Snake, 0, len(board.Snakes)-1)
	for _, s := range board.Snakes {
		if s.ID != YouID {
			opponents = append(opponents, s)
		}
	}

	samples := map[Direction][]int{}
	for i := 0; i < 3; i++ {
		dest := you.GetOption(i)
		dir := directionFromStep(you.Head, dest)

		for _, profile := range jointOpponentProfiles(opponents) {
			clone := CopyBoard(board)
			applyJointMove(&clone, YouID, dest)
			for idx, opp := range opponents {
				applyJointMove(&clone, opp.ID, profile[idx])
			}
			GameStep(&clone, ruleset)

			areas := AreaControlled(clone)
			if YouID < len(areas) {
				samples[dir] = append(samples[dir], areas[YouID])
			} else {
				samples[dir] = append(samples[dir], 0)
			}
		}
	}

	for _, d := range AllDirections {
		values := samples[d]
		if len(values) == 0 {
			result[d] = 0
			continue
		}
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		result[d] = min
	}

	return result
}

func directionFromStep(from, to Point) Direction {
	for _, d := range AllDirections {
		if from.Step(d) == to {
			return d
		}
	}
	return Unset
}

func applyJointMove(board *Board, id int, dest Point) {
	for i := range board.Snakes {
		if board.Snakes[i].ID == id {
			board.Snakes[i].MoveTo(dest)
			return
		}
	}
}

// jointOpponentProfiles returns the cartesian product of each opponent's
// three legal options, one slice of destinations per opponent.
func jointOpponentProfiles(opponents []Snake) [][]Point {
	if len(opponents) == 0 {
		return [][]Point{{}}
	}
	rest := jointOpponentProfiles(opponents[1:])
	total := make([][]Point, 0, len(rest)*3)
	for i := 0; i < 3; i++ {
		dest := opponents[0].GetOption(i)
		for _, r := range rest {
			profile := append([]Point{dest}, r...)
			total = append(total, profile)
		}
	}
	return total
}
