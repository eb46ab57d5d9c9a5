package numbers

import "errors"

// Placement errors.
var (
	ErrOutOfRange = errors.New("numbers: cell out of range")
	ErrOccupied   = errors.New("numbers: cell already filled")
)

// Grid holds placed numbers in row-major order. Zero marks an empty cell.
type Grid struct {
	rows, cols int
	cells      []int
}

// NewGrid creates an empty rows×cols grid.
func NewGrid(rows, cols int) Grid {
	return Grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}
}

// Rows returns the row count.
func (g Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g Grid) Cols() int { return g.cols }

// At returns the value at (row, col), or 0 if empty or out of range.
func (g Grid) At(row, col int) int {
	if !g.inRange(row, col) {
		return 0
	}
	return g.cells[row*g.cols+col]
}

func (g Grid) inRange(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Place writes v at (row, col). Filled cells are never overwritten.
// The grid may be out of order afterwards; check Ascending.
func (g *Grid) Place(row, col, v int) error {
	if !g.inRange(row, col) {
		return ErrOutOfRange
	}
	idx := row*g.cols + col
	if g.cells[idx] != 0 {
		return ErrOccupied
	}
	g.cells[idx] = v
	return nil
}

// Ascending reports whether the filled cells, read row by row, never decrease.
func (g Grid) Ascending() bool {
	prev := 0
	for _, v := range g.cells {
		if v == 0 {
			continue
		}
		if v < prev {
			return false
		}
		prev = v
	}
	return true
}

// Fits reports whether v can go into the empty cell at idx without
// breaking the order.
func (g Grid) Fits(idx, v int) bool {
	if idx < 0 || idx >= len(g.cells) || g.cells[idx] != 0 {
		return false
	}
	for i := idx - 1; i >= 0; i-- {
		if g.cells[i] != 0 {
			if g.cells[i] > v {
				return false
			}
			break
		}
	}
	for i := idx + 1; i < len(g.cells); i++ {
		if g.cells[i] != 0 {
			return g.cells[i] >= v
		}
	}
	return true
}

// HasLegalCell reports whether any empty cell can take v.
func (g Grid) HasLegalCell(v int) bool {
	for i := range g.cells {
		if g.Fits(i, v) {
			return true
		}
	}
	return false
}

// Filled returns how many cells hold a number.
func (g Grid) Filled() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Full reports whether every cell is filled.
func (g Grid) Full() bool {
	return g.Filled() == len(g.cells)
}
