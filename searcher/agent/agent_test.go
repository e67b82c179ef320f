package agent

import (
	"testing"

	"gridgames/game"
	"gridgames/searcher"
	"gridgames/tictactoe"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

var winNow = tictactoe.ParseBoard(
	"OO.",
	"XX.",
	"...",
)

func TestRandomAgent(t *testing.T) {
	t.Run("only picks empty cells", func(t *testing.T) {
		a := NewRandomAgent(seeded(1))
		b := tictactoe.ParseBoard("XOX", "O.X", "OX.")
		for i := 0; i < 50; i++ {
			move, ok := a.FindMove(b, tictactoe.O)
			require.True(t, ok)
			require.Contains(t, []game.Cell{{Row: 1, Col: 1}, {Row: 2, Col: 2}}, move)
		}
	})

	t.Run("covers every cell of an empty board", func(t *testing.T) {
		a := NewRandomAgent(seeded(2))
		seen := map[game.Cell]bool{}
		for i := 0; i < 500; i++ {
			move, _ := a.FindMove(tictactoe.Board{}, tictactoe.O)
			seen[move] = true
		}
		require.Len(t, seen, 9)
	})

	t.Run("full board has no move", func(t *testing.T) {
		_, ok := NewRandomAgent(seeded(3)).FindMove(tictactoe.ParseBoard("XOX", "XOO", "OXX"), tictactoe.O)
		require.False(t, ok)
	})
}

func TestEvaluationAgent(t *testing.T) {
	t.Run("O takes the win", func(t *testing.T) {
		move, ok := NewEvaluationAgent(nil).FindMove(winNow, tictactoe.O)
		require.True(t, ok)
		require.Equal(t, game.Cell{Row: 0, Col: 2}, move)
	})

	t.Run("X minimizes and ignores how deep the win is", func(t *testing.T) {
		move, ok := NewEvaluationAgent(searcher.NewMinimax()).FindMove(winNow, tictactoe.X)
		require.True(t, ok)
		// (0,2) blocks O and forks, which scores the same as winning at (1,2) and comes first
		require.Equal(t, game.Cell{Row: 0, Col: 2}, move)
	})
}

func TestDifficultyAgent(t *testing.T) {
	t.Run("very hard always plays the minimax move", func(t *testing.T) {
		a := NewDifficultyAgent(tictactoe.VeryHard, seeded(4), nil)
		for i := 0; i < 100; i++ {
			move, ok := a.FindMove(winNow, tictactoe.O)
			require.True(t, ok)
			require.Equal(t, game.Cell{Row: 0, Col: 2}, move)
		}
	})

	t.Run("unrecognised difficulty falls back to optimal play", func(t *testing.T) {
		a := NewDifficultyAgent(tictactoe.Difficulty(99), seeded(5), nil)
		move, _ := a.FindMove(winNow, tictactoe.O)
		require.Equal(t, game.Cell{Row: 0, Col: 2}, move)
	})

	t.Run("easy plays random moves", func(t *testing.T) {
		a := NewDifficultyAgent(tictactoe.Easy, seeded(6), nil)
		seen := map[game.Cell]bool{}
		for i := 0; i < 200; i++ {
			move, ok := a.FindMove(winNow, tictactoe.O)
			require.True(t, ok)
			seen[move] = true
		}
		require.Len(t, seen, 5, "Every empty cell should come up")
	})

	t.Run("random move frequency follows the difficulty", func(t *testing.T) {
		cases := []struct {
			difficulty tictactoe.Difficulty
			want       float64
		}{
			{tictactoe.Easy, 1.0},
			{tictactoe.Medium, 0.5},
			{tictactoe.Hard, 0.2},
			{tictactoe.VeryHard, 0.0},
		}
		const trials = 20000
		for _, tc := range cases {
			a := NewDifficultyAgent(tc.difficulty, seeded(7), nil).(difficultyAgent)
			random := 0
			for i := 0; i < trials; i++ {
				if a.playsRandom() {
					random++
				}
			}
			require.InDelta(t, tc.want, float64(random)/trials, 0.02, "difficulty %s", tc.difficulty)
		}
	})
}
