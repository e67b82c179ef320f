package tictactoe

import "gridgames/game"

type Status int

const (
	InProgress Status = iota
	Won
	Tied
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Tied:
		return "Tie"
	}
	return "Unknown"
}

// Result is returned by an accepted move. Winner is set only for game.Win.
type Result struct {
	Outcome game.Outcome
	Winner  Mark
}

// Engine tracks one tic-tac-toe table across games: the board, whose turn it
// is, and which side opens the next game. The AI always plays O.
type Engine struct {
	board    Board
	current  Mark
	aiStarts bool
	status   Status
	winner   Mark
}

// NewEngine returns an empty board with X (the human) to move.
func NewEngine() *Engine {
	return &Engine{current: X}
}

// ApplyMove places player's mark on (row, col). Moves off the board, on an
// occupied cell, out of turn or after the game ended are ignored and report false.
func (e *Engine) ApplyMove(row, col int, player Mark) (Result, bool) {
	if e.status != InProgress || player != e.current {
		return Result{}, false
	}
	if row < 0 || row >= Size || col < 0 || col >= Size || e.board[row][col] != Empty {
		return Result{}, false
	}

	e.board[row][col] = player
	if CheckWinner(e.board, player) {
		e.status = Won
		e.winner = player
		return Result{Outcome: game.Win, Winner: player}, true
	}
	if IsFull(e.board) {
		e.status = Tied
		return Result{Outcome: game.Tie}, true
	}

	e.current = player.Opponent()
	return Result{Outcome: game.Continue}, true
}

// Reset clears the board and hands the first move to the other side.
func (e *Engine) Reset() {
	e.board = Board{}
	e.aiStarts = !e.aiStarts
	e.current = e.FirstPlayer()
	e.status = InProgress
	e.winner = Empty
}

// FirstPlayer is the mark that opened the current game.
func (e *Engine) FirstPlayer() Mark {
	if e.aiStarts {
		return O
	}
	return X
}

func (e *Engine) Board() Board        { return e.board }
func (e *Engine) CurrentPlayer() Mark { return e.current }
func (e *Engine) Status() Status      { return e.status }
func (e *Engine) Winner() Mark        { return e.winner }
func (e *Engine) IsOver() bool        { return e.status != InProgress }
