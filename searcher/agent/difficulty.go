package agent

import (
	"gridgames/game"
	"gridgames/searcher"
	"gridgames/tictactoe"

	"golang.org/x/exp/rand"
)

type difficultyAgent struct {
	difficulty tictactoe.Difficulty
	rng        *rand.Rand
	optimal    Agent
	random     Agent
}

// NewDifficultyAgent returns the computer opponent for a difficulty: Easy is
// always random, Medium random half of the time, Hard one time in five, and
// every other difficulty plays the minimax move.
func NewDifficultyAgent(difficulty tictactoe.Difficulty, rng *rand.Rand, minimax *searcher.Minimax) Agent {
	if rng == nil {
		rng = newRand()
	}
	return difficultyAgent{
		difficulty: difficulty,
		rng:        rng,
		optimal:    NewEvaluationAgent(minimax),
		random:     NewRandomAgent(rng),
	}
}

func (a difficultyAgent) FindMove(board tictactoe.Board, player tictactoe.Mark) (game.Cell, bool) {
	if a.playsRandom() {
		return a.random.FindMove(board, player)
	}
	return a.optimal.FindMove(board, player)
}

// playsRandom rolls only for the difficulties that mix both kinds of move
func (a difficultyAgent) playsRandom() bool {
	chance := a.difficulty.RandomChance()
	switch {
	case chance >= 1:
		return true
	case chance <= 0:
		return false
	}
	return a.rng.Float64() < chance
}
