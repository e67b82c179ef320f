package game

// Grid is a rows x cols board of values stored in row-major order.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

// NewGrid creates a grid filled with the zero value of T.
func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic("grid dimensions must be positive")
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

func (g *Grid[T]) Rows() int { return g.rows }
func (g *Grid[T]) Cols() int { return g.cols }
func (g *Grid[T]) Size() int { return len(g.cells) }

// InBounds checks if the cell lies on the grid.
func (g *Grid[T]) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid[T]) At(c Cell) T {
	return g.cells[g.index(c)]
}

// Ptr returns the stored value for in-place updates.
func (g *Grid[T]) Ptr(c Cell) *T {
	return &g.cells[g.index(c)]
}

func (g *Grid[T]) Set(c Cell, value T) {
	g.cells[g.index(c)] = value
}

// Neighbors returns the in-bounds cells among the 8 surrounding c, in row-major order.
func (g *Grid[T]) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if g.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// Cells lists every cell of the grid in row-major order.
func (g *Grid[T]) Cells() []Cell {
	cells := make([]Cell, 0, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

func (g *Grid[T]) index(c Cell) int {
	if !g.InBounds(c) {
		panic("cell out of grid bounds")
	}
	return c.Row*g.cols + c.Col
}
