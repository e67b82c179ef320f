package minesweeper

type CellState int

const (
	Hidden CellState = iota
	Flagged
	Revealed
	Exposed // mine shown once the game is over
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Flagged:
		return "Flagged"
	case Revealed:
		return "Revealed"
	case Exposed:
		return "Exposed"
	}
	return "Unknown"
}

// Square is a single cell of the minefield.
type Square struct {
	IsMine   bool
	State    CellState
	Adjacent int // Mines among the 8 neighbours, set when revealed
}
