package tetris

import "fmt"

// MinBoardSize is the smallest legal board edge length. Anything smaller
// cannot fit every piece bounding box, so no valid game could proceed.
const MinBoardSize = 4

// Board is the bounded grid of settled blocks. It stores occupancy only;
// it has no notion of an active or upcoming piece. Mutations are split
// from queries: IsValidPosition never changes state, and Commit assumes
// the caller has already validated.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major, index y*width+x
}

// NewBoard creates an empty board. Both dimensions must be at least
// MinBoardSize.
func NewBoard(width, height int) (*Board, error) {
	if width < MinBoardSize || height < MinBoardSize {
		return nil, fmt.Errorf("board %dx%d is below the minimum %dx%d", width, height, MinBoardSize, MinBoardSize)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the cell at (x, y). Out-of-range coordinates read as empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return CellEmpty
	}
	return b.cells[y*b.width+x]
}

// Grid returns a copy of the occupancy grid, one row per slice.
func (b *Board) Grid() [][]Cell {
	rows := make([][]Cell, b.height)
	for y := range rows {
		rows[y] = make([]Cell, b.width)
		copy(rows[y], b.cells[y*b.width:(y+1)*b.width])
	}
	return rows
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsValidPosition reports whether every given cell is inside the board
// and currently empty. The same predicate backs move, rotation and spawn
// validity; it has no side effects.
func (b *Board) IsValidPosition(blocks []Point) bool {
	for _, p := range blocks {
		if !b.inBounds(p.X, p.Y) {
			return false
		}
		if b.cells[p.Y*b.width+p.X].Occupied() {
			return false
		}
	}
	return true
}

// Commit marks the given cells occupied with the given color. The caller
// is responsible for having validated the position first.
func (b *Board) Commit(blocks []Point, color Cell) {
	for _, p := range blocks {
		if b.inBounds(p.X, p.Y) {
			b.cells[p.Y*b.width+p.X] = color
		}
	}
}

// IsLineFull reports whether every cell in the row is occupied.
// Out-of-range rows are never full.
func (b *Board) IsLineFull(row int) bool {
	if row < 0 || row >= b.height {
		return false
	}
	for x := 0; x < b.width; x++ {
		if !b.cells[row*b.width+x].Occupied() {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row in a single pass, shifts the rows
// above each cleared row down by the number of cleared rows below them,
// and fills the newly exposed rows at the top with empty cells. It
// returns the number of rows cleared.
func (b *Board) ClearFullLines() int {
	cleared := 0
	dst := b.height - 1

	for src := b.height - 1; src >= 0; src-- {
		if b.IsLineFull(src) {
			cleared++
			continue
		}
		if dst != src {
			copy(b.cells[dst*b.width:(dst+1)*b.width], b.cells[src*b.width:(src+1)*b.width])
		}
		dst--
	}

	for ; dst >= 0; dst-- {
		row := b.cells[dst*b.width : (dst+1)*b.width]
		for x := range row {
			row[x] = CellEmpty
		}
	}

	return cleared
}
