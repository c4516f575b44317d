package main

import "fmt"

type GameOutcome int

const (
	Win GameOutcome = iota
	Draw
	Loss
)

// describeGameOutcome classifies how a finished game ended from the final
// /end request, returning both the enum and a human-readable explanation.
func describeGameOutcome(req MoveRequest) (GameOutcome, string) {
	you := req.You
	board := req.Board

	if !you.Head.InBounds(board.Width, board.Height) {
		return Loss, "You crashed into a wall"
	}

	for _, snake := range board.Snakes {
		if snake.ID != you.ID {
			for _, segment := range snake.Body {
				if you.Head == segment {
					return Loss, fmt.Sprintf("You lost by colliding with %s.", snake.Name)
				}
			}
			continue
		}
		if len(snake.Body) > 2 {
			for _, segment := range snake.Body[1 : len(snake.Body)-1] {
				if you.Head == segment {
					return Loss, "You ran into yourself"
				}
			}
		}
	}

	if you.Health <= 0 {
		return Loss, "You lost by starving to death."
	}

	livingSnakes := 0
	for _, snake := range board.Snakes {
		if snake.Health > 0 {
			livingSnakes++
		}
	}
	if livingSnakes == 0 {
		return Draw, "All snakes died"
	}

	if len(board.Snakes) == 1 && board.Snakes[0].ID == you.ID {
		return Win, "You won."
	}

	return Loss, "You Lost."
}

func getColorForOutcome(outcome GameOutcome) int {
	switch outcome {
	case Win:
		return 0x00FF00
	case Draw:
		return 0xFFFF00
	case Loss:
		return 0xFF0000
	default:
		return 0x0099ff
	}
}
