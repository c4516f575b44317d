package main

// Ruleset holds the static per-game tick parameters. Only MinimumFood is
// consulted by the simulator; the rest are carried through for completeness
// and for notification/diagnostic components.
type Ruleset struct {
	Name    string
	Version string

	FoodSpawnChance     int
	MinimumFood         int
	HazardDamagePerTurn int

	ShrinkEveryNTurns int

	AllowBodyCollisions bool
	SharedElimination   bool
	SharedHealth        bool
	SharedLength        bool
}

// Board is the full game state the simulator advances one tick at a time.
type Board struct {
	Height int
	Width  int

	Food    []Point
	Hazards []Point
	Snakes  []Snake

	// MaxSnakes is the participant count at game start; it never decreases
	// and sizes the evaluator's per-id output.
	MaxSnakes int
	Turn      int
}

// CopyBoard returns a deep copy of board: every search worker owns its clone
// and no mutable state is ever shared between them.
func CopyBoard(board Board) Board {
	clone := Board{
		Height:    board.Height,
		Width:     board.Width,
		Food:      append([]Point(nil), board.Food...),
		Hazards:   append([]Point(nil), board.Hazards...),
		Snakes:    make([]Snake, len(board.Snakes)),
		MaxSnakes: board.MaxSnakes,
		Turn:      board.Turn,
	}
	for i, s := range board.Snakes {
		clone.Snakes[i] = Snake{
			ID:      s.ID,
			Name:    s.Name,
			Health:  s.Health,
			Body:    append([]Point(nil), s.Body...),
			Latency: s.Latency,
			Head:    s.Head,
			Length:  s.Length,
		}
	}
	return clone
}

// SnakeByID returns the live serpent with the given id, if any.
func (b Board) SnakeByID(id int) (Snake, bool) {
	for _, s := range b.Snakes {
		if s.ID == id {
			return s, true
		}
	}
	return Snake{}, false
}

// YouID is the agent's own serpent id, fixed by the intake mapping rules.
const YouID = 0

// Tuning constants, carried over from the teacher and the original
// implementation's constants files.
const (
	MaxHealth        = 100
	LengthAdvantage  = 5
	MaxSearch        = 30
	SearchExponent   = 13
	DirectionOptions = 3
)
