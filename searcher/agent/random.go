package agent

import (
	"gridgames/game"
	"gridgames/tictactoe"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the empty cells.
func NewRandomAgent(rng *rand.Rand) Agent {
	if rng == nil {
		rng = newRand()
	}
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(board tictactoe.Board, _ tictactoe.Mark) (game.Cell, bool) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Cell{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
