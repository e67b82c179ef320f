package agent

import (
	"time"

	"gridgames/game"
	"gridgames/tictactoe"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the cell player should take on board, false when the board is full
	FindMove(board tictactoe.Board, player tictactoe.Mark) (game.Cell, bool)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
