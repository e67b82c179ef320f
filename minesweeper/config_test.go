package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
		require.Equal(t, 90, cfg.SafeCells())
	})

	t.Run("rejects empty dimensions", func(t *testing.T) {
		err := Config{Rows: 0, Cols: 5, Mines: 1}.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Contains(t, err.Error(), "Rows must be at least 1")
	})

	t.Run("rejects oversized boards", func(t *testing.T) {
		err := Config{Rows: 5, Cols: 101, Mines: 1}.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Contains(t, err.Error(), "Cols must be at most 100")
	})

	t.Run("rejects negative mines", func(t *testing.T) {
		require.ErrorIs(t, Config{Rows: 5, Cols: 5, Mines: -1}.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects a board with no free cell", func(t *testing.T) {
		require.ErrorIs(t, Config{Rows: 3, Cols: 3, Mines: 9}.Validate(), ErrTooManyMines)
		require.ErrorIs(t, Config{Rows: 3, Cols: 3, Mines: 12}.Validate(), ErrTooManyMines)
	})

	t.Run("New fails fast instead of placing forever", func(t *testing.T) {
		e, err := New(Config{Rows: 2, Cols: 2, Mines: 4})
		require.ErrorIs(t, err, ErrTooManyMines)
		require.Nil(t, e)
	})

	t.Run("mine free board is allowed", func(t *testing.T) {
		e, err := New(Config{Rows: 2, Cols: 3, Mines: 0})
		require.NoError(t, err)
		require.Empty(t, e.MinePositions())
	})
}
