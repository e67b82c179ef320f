package minesweeper

import (
	"fmt"
	"sort"
	"time"

	"gridgames/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// WithRand uses rng for mine placement.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithLayout places mines on the given cells instead of at random.
func WithLayout(mines ...game.Cell) Option {
	return func(e *Engine) {
		e.layout = mines
	}
}

// Engine holds a single minesweeper game. A new Engine is created per game.
type Engine struct {
	cfg      Config
	board    *game.Grid[Square]
	mines    map[game.Cell]struct{}
	revealed int
	outcome  game.Outcome
	rng      *rand.Rand
	layout   []game.Cell
}

// New validates cfg and lays out the mines.
func New(cfg Config, options ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		board: game.NewGrid[Square](cfg.Rows, cfg.Cols),
		mines: make(map[game.Cell]struct{}, cfg.Mines),
	}
	for _, option := range options {
		option(e)
	}

	if e.layout != nil {
		if err := e.setLayout(e.layout); err != nil {
			return nil, err
		}
		return e, nil
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	e.placeMines(cfg.Mines)
	return e, nil
}

// placeMines draws random cells until count distinct ones are mined.
// count must be below the number of cells, which Config.Validate guarantees.
func (e *Engine) placeMines(count int) {
	for len(e.mines) < count {
		c := game.Cell{Row: e.rng.Intn(e.cfg.Rows), Col: e.rng.Intn(e.cfg.Cols)}
		e.mines[c] = struct{}{}
	}
	for c := range e.mines {
		e.board.Ptr(c).IsMine = true
	}
}

func (e *Engine) setLayout(mines []game.Cell) error {
	if len(mines) != e.cfg.Mines {
		return fmt.Errorf("%w: got %d mines, want %d", ErrInvalidLayout, len(mines), e.cfg.Mines)
	}
	for _, c := range mines {
		if !e.board.InBounds(c) {
			return fmt.Errorf("%w: mine at (%d, %d) is off the board", ErrInvalidLayout, c.Row, c.Col)
		}
		if _, ok := e.mines[c]; ok {
			return fmt.Errorf("%w: duplicate mine at (%d, %d)", ErrInvalidLayout, c.Row, c.Col)
		}
		e.mines[c] = struct{}{}
		e.board.Ptr(c).IsMine = true
	}
	return nil
}

// Click handles a primary click: a mine loses the game, anything else is
// revealed and may win it. Clicks after the game ended or off the board are ignored.
func (e *Engine) Click(row, col int) game.Outcome {
	c := game.Cell{Row: row, Col: col}
	if e.outcome.IsTerminal() || !e.board.InBounds(c) {
		return e.outcome
	}

	if e.board.At(c).IsMine {
		e.TriggerLoss()
		return e.outcome
	}

	e.Reveal(row, col)
	if e.CheckWin() {
		e.end(game.Win)
	}
	return e.outcome
}

// Reveal opens a safe cell and floods through neighbouring cells with no
// adjacent mines. It returns the number of cells newly revealed. Mines,
// revealed cells and off-board coordinates are left alone. Flags do not block it.
func (e *Engine) Reveal(row, col int) int {
	c := game.Cell{Row: row, Col: col}
	if e.outcome.IsTerminal() || !e.board.InBounds(c) {
		return 0
	}
	before := e.revealed
	e.reveal(c)
	return e.revealed - before
}

func (e *Engine) reveal(c game.Cell) {
	sq := e.board.Ptr(c)
	if sq.IsMine || sq.State == Revealed {
		return
	}

	sq.State = Revealed
	e.revealed++
	sq.Adjacent = e.countAdjacent(c)
	if sq.Adjacent > 0 {
		return
	}

	for _, n := range e.board.Neighbors(c) {
		e.reveal(n)
	}
}

func (e *Engine) countAdjacent(c game.Cell) int {
	count := 0
	for _, n := range e.board.Neighbors(c) {
		if _, ok := e.mines[n]; ok {
			count++
		}
	}
	return count
}

// ToggleFlag switches a hidden cell between Hidden and Flagged.
func (e *Engine) ToggleFlag(row, col int) {
	c := game.Cell{Row: row, Col: col}
	if e.outcome.IsTerminal() || !e.board.InBounds(c) {
		return
	}

	sq := e.board.Ptr(c)
	switch sq.State {
	case Hidden:
		sq.State = Flagged
	case Flagged:
		sq.State = Hidden
	}
}

// CheckWin reports whether every safe cell has been revealed.
func (e *Engine) CheckWin() bool {
	return e.revealed == e.cfg.SafeCells()
}

// TriggerLoss ends the game as lost and shows every mine.
func (e *Engine) TriggerLoss() {
	if e.outcome.IsTerminal() {
		return
	}
	e.end(game.Loss)
}

func (e *Engine) end(outcome game.Outcome) {
	e.outcome = outcome
	for c := range e.mines {
		e.board.Ptr(c).State = Exposed
	}
	log.Debug().
		Str("outcome", outcome.String()).
		Int("revealed", e.revealed).
		Msgf("minesweeper game over on %dx%d board", e.cfg.Rows, e.cfg.Cols)
}

func (e *Engine) Config() Config            { return e.cfg }
func (e *Engine) Outcome() game.Outcome     { return e.outcome }
func (e *Engine) IsOver() bool              { return e.outcome.IsTerminal() }
func (e *Engine) RevealedCount() int        { return e.revealed }
func (e *Engine) Remaining() int            { return e.cfg.SafeCells() - e.revealed }
func (e *Engine) Square(c game.Cell) Square { return e.board.At(c) }

// InBounds reports whether the coordinates lie on the board.
func (e *Engine) InBounds(row, col int) bool {
	return e.board.InBounds(game.Cell{Row: row, Col: col})
}

// Flags counts the cells currently flagged.
func (e *Engine) Flags() int {
	count := 0
	for _, c := range e.board.Cells() {
		if e.board.At(c).State == Flagged {
			count++
		}
	}
	return count
}

// MinePositions lists the mined cells in row-major order.
func (e *Engine) MinePositions() []game.Cell {
	cells := make([]game.Cell, 0, len(e.mines))
	for c := range e.mines {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}
