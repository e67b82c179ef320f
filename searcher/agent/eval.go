package agent

import (
	"gridgames/game"
	"gridgames/searcher"
	"gridgames/tictactoe"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
}

// NewEvaluationAgent returns an agent that always plays the minimax move.
// O maximizes the score, X minimizes it.
func NewEvaluationAgent(minimax *searcher.Minimax) Agent {
	if minimax == nil {
		minimax = searcher.NewMinimax()
	}
	return evaluationAgent{minimax: minimax}
}

func (a evaluationAgent) FindMove(board tictactoe.Board, player tictactoe.Mark) (game.Cell, bool) {
	decision, ok := a.minimax.BestMove(board, player == tictactoe.O)
	return decision.Move, ok
}
