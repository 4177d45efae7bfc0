package engine

import "strings"

// Grid is a mutable rows x cols store of cell symbols. All reads go
// through Peek, which bounds-checks; Set assumes the caller already
// established the coordinate is in bounds.
type Grid struct {
	cells [][]Cell
	rows  int
	cols  int
}

// NewGrid builds a Grid from layout rows. Rows must be non-empty and
// of equal length; ValidateLevel guarantees that for level input.
func NewGrid(layout []string) *Grid {
	cells := make([][]Cell, len(layout))
	for i, row := range layout {
		runes := []rune(row)
		cells[i] = make([]Cell, len(runes))
		for j, ch := range runes {
			cells[i][j] = Cell(string(ch))
		}
	}
	g := &Grid{cells: cells, rows: len(cells)}
	if g.rows > 0 {
		g.cols = len(cells[0])
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Peek returns the cell at pos and whether pos is in bounds. An
// out-of-bounds read yields the zero Cell and false, never a panic.
func (g *Grid) Peek(pos Position) (Cell, bool) {
	if pos.Row < 0 || pos.Row >= g.rows || pos.Col < 0 || pos.Col >= g.cols {
		return "", false
	}
	return g.cells[pos.Row][pos.Col], true
}

// Set replaces the cell at pos. pos must be in bounds; callers
// bounds-check via Peek first.
func (g *Grid) Set(pos Position, cell Cell) {
	g.cells[pos.Row][pos.Col] = cell
}

// Render returns the deterministic row-major string form of the grid,
// rows joined by newlines.
func (g *Grid) Render() string {
	var b strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(string(cell))
		}
	}
	return b.String()
}

// FindAll returns the coordinates of every cell equal to target, in
// row-major order.
func (g *Grid) FindAll(target Cell) []Position {
	var found []Position
	for i, row := range g.cells {
		for j, cell := range row {
			if cell == target {
				found = append(found, Position{Row: i, Col: j})
			}
		}
	}
	return found
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.rows)
	for i, row := range g.cells {
		cells[i] = make([]Cell, len(row))
		copy(cells[i], row)
	}
	return &Grid{cells: cells, rows: g.rows, cols: g.cols}
}
