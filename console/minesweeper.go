package console

import (
	"fmt"
	"strings"

	"gridgames/game"
	"gridgames/minesweeper"
)

type minesweeperShell struct {
	cfg     minesweeper.Config
	options []minesweeper.Option
	game    *minesweeper.Engine
}

// NewMinesweeperShell starts a game with cfg. The new command starts another
// with the same config and options.
func NewMinesweeperShell(cfg minesweeper.Config, options ...minesweeper.Option) (*Shell, error) {
	m := &minesweeperShell{cfg: cfg, options: options}
	if err := m.newGame(); err != nil {
		return nil, err
	}

	s := NewShell("minesweeper")
	s.prompt = func() string {
		return Prompt(fmt.Sprintf("minesweeper [%d left, %d flags]", m.game.Remaining(), m.game.Flags()))
	}
	s.Register(&Command{
		Name:        "reveal",
		ShortName:   "r",
		Description: "Reveal a cell",
		Usage:       "reveal <row> <col>",
		Handler:     m.revealHandler,
	})
	s.Register(&Command{
		Name:        "flag",
		ShortName:   "f",
		Description: "Place or remove a flag",
		Usage:       "flag <row> <col>",
		Handler:     m.flagHandler,
	})
	s.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Start a new game",
		Usage:       "new",
		Handler:     m.newHandler,
	})
	s.Register(&Command{
		Name:        "board",
		ShortName:   "b",
		Description: "Show the board",
		Usage:       "board",
		Handler:     m.boardHandler,
	})
	// A bare "row col" reveals
	s.fallback = m.revealHandler
	return s, nil
}

func (m *minesweeperShell) newGame() error {
	e, err := minesweeper.New(m.cfg, m.options...)
	if err != nil {
		return fmt.Errorf("failed to start minesweeper: %w", err)
	}
	m.game = e
	return nil
}

func (m *minesweeperShell) revealHandler(args []string) (string, error) {
	row, col, err := parseCell(args, "reveal <row> <col>")
	if err != nil {
		return "", err
	}
	if m.game.IsOver() {
		return "The game is over, type 'new' to play again\n", nil
	}
	if !m.game.InBounds(row, col) {
		return fmt.Sprintf("(%d, %d) is off the board\n", row, col), nil
	}

	outcome := m.game.Click(row, col)
	return m.render(outcome), nil
}

func (m *minesweeperShell) flagHandler(args []string) (string, error) {
	row, col, err := parseCell(args, "flag <row> <col>")
	if err != nil {
		return "", err
	}
	if m.game.IsOver() {
		return "The game is over, type 'new' to play again\n", nil
	}
	if !m.game.InBounds(row, col) {
		return fmt.Sprintf("(%d, %d) is off the board\n", row, col), nil
	}

	m.game.ToggleFlag(row, col)
	return m.render(m.game.Outcome()), nil
}

func (m *minesweeperShell) newHandler(_ []string) (string, error) {
	if err := m.newGame(); err != nil {
		return "", err
	}
	return m.render(game.Continue), nil
}

func (m *minesweeperShell) boardHandler(_ []string) (string, error) {
	return m.render(m.game.Outcome()), nil
}

func (m *minesweeperShell) render(outcome game.Outcome) string {
	var sb strings.Builder
	sb.WriteString(RenderMinesweeper(m.game))
	switch outcome {
	case game.Win:
		sb.WriteString(colorize(Green, "You won!") + "\n")
	case game.Loss:
		sb.WriteString(colorize(Red, "Game over! You hit a mine.") + "\n")
	}
	return sb.String()
}
