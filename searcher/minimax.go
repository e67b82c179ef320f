package searcher

import (
	"gridgames/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// Minimax searches the whole game tree. Wins score the same however deep they
// are, and ties between moves go to the first one in LegalMoves order.
// A Minimax is not safe for concurrent use when metrics are collected.
type Minimax struct {
	metrics MetricsCollector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Decision is the move picked by BestMove and the value it leads to.
type Decision struct {
	Move  game.Cell
	Score int
	SearchMetric
}

// Score returns the game-theoretic value of state when the maximizing side is
// to move (maximizing == true) or the minimizing side is.
func (m *Minimax) Score(state game.State, maximizing bool) int {
	m.metrics.AddNode()
	if score, terminal := state.Evaluate(); terminal {
		m.metrics.AddLeaf()
		return score
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("non-terminal state has no legal moves")
	}

	best := m.Score(state.Play(moves[0], maximizing), !maximizing)
	for _, move := range moves[1:] {
		score := m.Score(state.Play(move, maximizing), !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// BestMove scores every legal move for the side to move and keeps the first
// strictly better one. ok is false when there is nothing to play.
func (m *Minimax) BestMove(state game.State, maximizing bool) (Decision, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Decision{}, false
	}

	m.metrics.Start()
	var best Decision
	for i, move := range moves {
		score := m.Score(state.Play(move, maximizing), !maximizing)
		if i == 0 || better(score, best.Score, maximizing) {
			best.Move = move
			best.Score = score
		}
	}
	best.SearchMetric = m.metrics.Complete()

	log.Debug().
		Int("row", best.Move.Row).
		Int("col", best.Move.Col).
		Int("score", best.Score).
		Int64("nodes", best.Nodes).
		Dur("duration", best.Duration).
		Msg("minimax picked move")
	return best, true
}

func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
