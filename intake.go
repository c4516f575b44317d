package main

// IntakeBoard converts a move request into the internal Board/Ruleset shapes
// the decision pipeline operates on. The you snake always becomes id 0;
// every other snake is assigned a sequential positive id in input list order,
// skipping the entry matching you's string id (it is the same snake, not an
// opponent) — grounded on the official adapter's own id-remapping behaviour.
func IntakeBoard(req MoveRequest) (Board, Ruleset) {
	wireSnakes := req.Board.Snakes

	board := Board{
		Height:    req.Board.Height,
		Width:     req.Board.Width,
		Food:      append([]Point(nil), req.Board.Food...),
		Hazards:   append([]Point(nil), req.Board.Hazards...),
		Snakes:    make([]Snake, 0, len(wireSnakes)),
		MaxSnakes: len(wireSnakes),
		Turn:      req.Turn,
	}

	nextID := 1
	for _, ws := range wireSnakes {
		var id int
		if ws.ID == req.You.ID {
			id = YouID
		} else {
			id = nextID
			nextID++
		}
		board.Snakes = append(board.Snakes, intakeSnake(ws, id))
	}

	ruleset := Ruleset{
		Name:                req.Game.Ruleset.Name,
		Version:             req.Game.Ruleset.Version,
		FoodSpawnChance:     req.Game.Ruleset.Settings.FoodSpawnChance,
		MinimumFood:         req.Game.Ruleset.Settings.MinimumFood,
		HazardDamagePerTurn: req.Game.Ruleset.Settings.HazardDamagePerTurn,
		ShrinkEveryNTurns:   req.Game.Ruleset.Settings.Royale.ShrinkEveryNTurns,
		AllowBodyCollisions: req.Game.Ruleset.Settings.Squad.AllowBodyCollisions,
		SharedElimination:   req.Game.Ruleset.Settings.Squad.SharedElimination,
		SharedHealth:        req.Game.Ruleset.Settings.Squad.SharedHealth,
		SharedLength:        req.Game.Ruleset.Settings.Squad.SharedLength,
	}

	return board, ruleset
}

func intakeSnake(ws WireSnake, id int) Snake {
	length := ws.Length
	if length == 0 {
		length = len(ws.Body)
	}
	s := Snake{
		ID:      id,
		Name:    ws.Name,
		Health:  ws.Health,
		Body:    append([]Point(nil), ws.Body...),
		Latency: ws.Latency,
		Head:    ws.Head,
		Length:  length,
	}
	return s
}
