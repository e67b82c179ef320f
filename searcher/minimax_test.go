package searcher

import (
	"testing"

	"gridgames/game"
	"gridgames/tictactoe"

	"github.com/stretchr/testify/require"
)

/**
Tests exhaustive minimax on tic-tac-toe positions (O maximizes, X minimizes):
- scoring: terminal boards, empty board draws, forced wins and losses
- move choice: immediate wins, soundness against forced losses, row-major tie break
- metrics: leaves reached equal the number of distinct finished games
*/

func TestMinimaxScore(t *testing.T) {
	t.Run("empty board is a draw under optimal play", func(t *testing.T) {
		m := NewMinimax()
		require.Equal(t, 0, m.Score(tictactoe.Board{}, true))
		require.Equal(t, 0, m.Score(tictactoe.Board{}, false))
	})

	t.Run("terminal boards return their evaluation", func(t *testing.T) {
		m := NewMinimax()
		require.Equal(t, 1, m.Score(tictactoe.ParseBoard("OOO", "XX.", "X.."), false))
		require.Equal(t, -1, m.Score(tictactoe.ParseBoard("XXX", "OO.", "O.."), true))
		require.Equal(t, 0, m.Score(tictactoe.ParseBoard("XOX", "XOO", "OXX"), true))
	})

	t.Run("side to move with a winning line scores the win", func(t *testing.T) {
		m := NewMinimax()
		b := tictactoe.ParseBoard(
			"OO.",
			"XX.",
			"...",
		)
		require.Equal(t, 1, m.Score(b, true), "O to move wins at once")
		require.Equal(t, -1, m.Score(b, false), "X to move wins at once")
	})

	t.Run("fork is a forced win", func(t *testing.T) {
		m := NewMinimax()
		// X plays (2,0) and threatens both (1,0) and (2,1)
		b := tictactoe.ParseBoard(
			"X.O",
			".O.",
			"..X",
		)
		require.Equal(t, -1, m.Score(b, false))
	})
}

func TestMinimaxBestMove(t *testing.T) {
	t.Run("takes an immediate win", func(t *testing.T) {
		m := NewMinimax()
		b := tictactoe.ParseBoard(
			"OO.",
			"XX.",
			"...",
		)

		got, ok := m.BestMove(b, true)

		require.True(t, ok)
		require.Equal(t, game.Cell{Row: 0, Col: 2}, got.Move)
		require.Equal(t, 1, got.Score)
	})

	t.Run("never leaves the opponent a forced win", func(t *testing.T) {
		m := NewMinimax()
		b := tictactoe.ParseBoard(
			"X..",
			".O.",
			"..X",
		)

		got, ok := m.BestMove(b, true)

		require.True(t, ok)
		require.Equal(t, 0, got.Score)
		require.Equal(t, 0, m.Score(b.With(got.Move, tictactoe.O), false),
			"X should not be able to force a win after O's reply")
		require.NotContains(t, []game.Cell{{Row: 0, Col: 2}, {Row: 2, Col: 0}}, got.Move,
			"Taking a corner lets X fork")
		require.Equal(t, game.Cell{Row: 0, Col: 1}, got.Move, "First equally good move in row-major order")
	})

	t.Run("corner moves in that position do lose", func(t *testing.T) {
		m := NewMinimax()
		b := tictactoe.ParseBoard(
			"X..",
			".O.",
			"..X",
		)
		require.Equal(t, -1, m.Score(b.With(game.Cell{Row: 0, Col: 2}, tictactoe.O), false))
		require.Equal(t, -1, m.Score(b.With(game.Cell{Row: 2, Col: 0}, tictactoe.O), false))
	})

	t.Run("minimizer blocks a winning line", func(t *testing.T) {
		m := NewMinimax()
		b := tictactoe.ParseBoard(
			"OO.",
			".X.",
			"X..",
		)

		got, ok := m.BestMove(b, false)

		require.True(t, ok)
		require.Equal(t, game.Cell{Row: 0, Col: 2}, got.Move, "X wins on the diagonal, which also blocks O's row")
	})

	t.Run("opening move on empty board is the first cell", func(t *testing.T) {
		m := NewMinimax()
		got, ok := m.BestMove(tictactoe.Board{}, true)

		require.True(t, ok)
		require.Equal(t, game.Cell{Row: 0, Col: 0}, got.Move, "All openings draw, so the first one is kept")
		require.Equal(t, 0, got.Score)
	})

	t.Run("full board has no move", func(t *testing.T) {
		_, ok := NewMinimax().BestMove(tictactoe.ParseBoard("XOX", "XOO", "OXX"), true)
		require.False(t, ok)
	})

	t.Run("search is repeatable", func(t *testing.T) {
		m := NewMinimax()
		b := tictactoe.ParseBoard("X..", "...", "...")
		first, _ := m.BestMove(b, true)
		second, _ := m.BestMove(b, true)
		require.Equal(t, first.Move, second.Move)
	})
}

func TestMinimaxMetrics(t *testing.T) {
	t.Run("counts every finished game from the empty board", func(t *testing.T) {
		m := NewMinimax(WithMetrics())

		got, ok := m.BestMove(tictactoe.Board{}, true)

		require.True(t, ok)
		require.Equal(t, int64(255168), got.Leaves)
		require.Greater(t, got.Nodes, got.Leaves)
	})

	t.Run("metrics reset between searches", func(t *testing.T) {
		m := NewMinimax(WithMetrics())
		b := tictactoe.ParseBoard("OO.", "XX.", "X..")

		first, _ := m.BestMove(b, true)
		second, _ := m.BestMove(b, true)
		require.Equal(t, first.Nodes, second.Nodes)
	})

	t.Run("no metrics by default", func(t *testing.T) {
		got, _ := NewMinimax().BestMove(tictactoe.Board{}, true)
		require.Zero(t, got.Nodes)
	})
}
