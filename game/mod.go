package game

// Cell addresses a square on a grid by row and column.
type Cell struct {
	Row int
	Col int
}

// Outcome is what a single action on a game reports back to the caller.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	case Tie:
		return "Tie"
	}
	return "Unknown"
}

// IsTerminal reports whether the game is over after this outcome.
func (o Outcome) IsTerminal() bool {
	return o != Continue
}

// State is a position in a two-player zero-sum game, from the point of view of
// a maximizing and a minimizing side.
// State should be immutable - Play always returns a new copy
type State interface {
	// LegalMoves lists the playable cells in row-major order
	LegalMoves() []Cell
	Play(move Cell, maximizer bool) State
	// Evaluate scores a finished game: positive favours the maximizer.
	// terminal is false while the game is still running.
	Evaluate() (score int, terminal bool)
}
