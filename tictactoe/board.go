package tictactoe

import (
	"strings"

	"gridgames/game"
)

const Size = 3

type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// Board is a 3x3 grid. It is a value: copies never share cells.
type Board [Size][Size]Mark

// The 8 lines that win the game: 3 rows, 3 columns, 2 diagonals
var lines = [8][Size]game.Cell{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// CheckWinner reports whether player fills any row, column or diagonal.
func CheckWinner(b Board, player Mark) bool {
	if player == Empty {
		return false
	}
	for _, line := range lines {
		if b.At(line[0]) == player && b.At(line[1]) == player && b.At(line[2]) == player {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func IsFull(b Board) bool {
	for _, row := range b {
		for _, m := range row {
			if m == Empty {
				return false
			}
		}
	}
	return true
}

// ParseBoard reads rows such as "XO.", using '.', '_' or ' ' for empty cells.
func ParseBoard(rows ...string) Board {
	if len(rows) != Size {
		panic("board needs exactly 3 rows")
	}
	var b Board
	for r, row := range rows {
		if len(row) != Size {
			panic("board row needs exactly 3 cells")
		}
		for c, ch := range row {
			switch ch {
			case 'X', 'x':
				b[r][c] = X
			case 'O', 'o':
				b[r][c] = O
			}
		}
	}
	return b
}

func (b Board) At(c game.Cell) Mark {
	return b[c.Row][c.Col]
}

// Winner returns the mark holding a full line, or Empty.
func (b Board) Winner() Mark {
	if CheckWinner(b, O) {
		return O
	}
	if CheckWinner(b, X) {
		return X
	}
	return Empty
}

// Count returns the number of cells holding m.
func (b Board) Count(m Mark) int {
	count := 0
	for _, row := range b {
		for _, v := range row {
			if v == m {
				count++
			}
		}
	}
	return count
}

// LegalMoves lists the empty cells row by row.
func (b Board) LegalMoves() []game.Cell {
	moves := make([]game.Cell, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, game.Cell{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Play places O for the maximizer and X for the minimizer on a copy of the board.
func (b Board) Play(move game.Cell, maximizer bool) game.State {
	if maximizer {
		return b.With(move, O)
	}
	return b.With(move, X)
}

// With returns a copy of the board with m placed on c.
func (b Board) With(c game.Cell, m Mark) Board {
	b[c.Row][c.Col] = m
	return b
}

// Evaluate scores finished boards: +1 when O has won, -1 when X has won,
// 0 for a full board without a winner.
func (b Board) Evaluate() (int, bool) {
	if CheckWinner(b, O) {
		return 1, true
	}
	if CheckWinner(b, X) {
		return -1, true
	}
	if IsFull(b) {
		return 0, true
	}
	return 0, false
}

func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		cells := make([]string, Size)
		for c, m := range row {
			cells[c] = m.String()
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
		if r < Size-1 {
			sb.WriteString(strings.Repeat("-", 9))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
