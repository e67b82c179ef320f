package console

import (
	"fmt"
	"strconv"
	"strings"

	"gridgames/game"
	"gridgames/minesweeper"
	"gridgames/tictactoe"
)

// Colors for adjacent mine counts 1 to 8
var countColors = []string{Blue, Green, Red, Magenta, Red, Cyan, White, White}

// RenderMinesweeper draws the board with row and column numbers. Hidden cells
// are '.', flags 'F', exposed mines '*' and revealed cells their mine count.
func RenderMinesweeper(e *minesweeper.Engine) string {
	cfg := e.Config()
	width := len(strconv.Itoa(max(cfg.Rows, cfg.Cols) - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width+1))
	for c := 0; c < cfg.Cols; c++ {
		sb.WriteString(" " + colorize(Cyan, fmt.Sprintf("%*d", width, c)))
	}
	sb.WriteString("\n")

	for r := 0; r < cfg.Rows; r++ {
		sb.WriteString(colorize(Cyan, fmt.Sprintf("%*d", width, r)) + " ")
		for c := 0; c < cfg.Cols; c++ {
			sb.WriteString(" " + squareText(e.Square(game.Cell{Row: r, Col: c}), width))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// squareText pads before coloring so escape codes do not break alignment
func squareText(sq minesweeper.Square, width int) string {
	pad := func(s string) string { return fmt.Sprintf("%*s", width, s) }
	switch sq.State {
	case minesweeper.Flagged:
		return colorize(Yellow, pad("F"))
	case minesweeper.Exposed:
		return colorize(Red, pad("*"))
	case minesweeper.Revealed:
		if sq.Adjacent == 0 {
			return pad(" ")
		}
		return colorize(countColors[sq.Adjacent-1], pad(strconv.Itoa(sq.Adjacent)))
	}
	return pad(".")
}

// RenderTicTacToe draws the board with X in blue and O in red.
func RenderTicTacToe(b tictactoe.Board) string {
	var sb strings.Builder
	sb.WriteString("   " + colorize(Cyan, "0   1   2") + "\n")
	for r := 0; r < tictactoe.Size; r++ {
		cells := make([]string, tictactoe.Size)
		for c := 0; c < tictactoe.Size; c++ {
			cells[c] = MarkText(b[r][c])
		}
		sb.WriteString(colorize(Cyan, strconv.Itoa(r)) + "  " + strings.Join(cells, " | ") + "\n")
		if r < tictactoe.Size-1 {
			sb.WriteString("  ---+---+---\n")
		}
	}
	return sb.String()
}

func MarkText(m tictactoe.Mark) string {
	switch m {
	case tictactoe.X:
		return colorize(Blue, "X")
	case tictactoe.O:
		return colorize(Red, "O")
	}
	return " "
}
