package tetris

// PieceType identifies one of the seven tetromino shapes.
type PieceType uint8

const (
	I PieceType = iota
	O
	T
	S
	Z
	J
	L
)

// NumPieceTypes is the number of distinct tetromino shapes.
const NumPieceTypes = 7

// NumRotations is the number of nominal rotation states per piece type.
// Every type cycles through 4 states even when fewer are geometrically
// distinct, so the rotation state machine is uniform across all shapes.
const NumRotations = 4

func (t PieceType) String() string {
	switch t {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	}
	return "?"
}

// Cell is a single board cell: empty, or occupied tagged with the piece
// type that produced it. The tag only matters to renderers.
type Cell uint8

// CellEmpty is the zero value of Cell.
const CellEmpty Cell = 0

// CellFor returns the occupied cell value for a piece type.
func CellFor(t PieceType) Cell {
	return Cell(t) + 1
}

// Occupied reports whether the cell holds a settled block.
func (c Cell) Occupied() bool {
	return c != CellEmpty
}

// Type returns the piece type that produced an occupied cell.
// Only meaningful when Occupied is true.
func (c Cell) Type() PieceType {
	return PieceType(c - 1)
}

// Point is a cell coordinate. For local block offsets the origin is the
// top-left of the piece's bounding box; y grows downward.
type Point struct {
	X, Y int
}

// Per-type bounding box edge lengths: I uses a 4x4 box, O a 2x2 box and
// the rest 3x3 boxes.
var boundingBoxes = [NumPieceTypes]int{4, 2, 3, 3, 3, 3, 3}

// BoundingBox returns the edge length of the local bounding box for a
// piece type.
func BoundingBox(t PieceType) int {
	return boundingBoxes[t]
}

// pieceBlocks holds the occupied local offsets for every piece type and
// rotation state, in row-major scan order. I, S and Z alternate between
// two distinct geometries; O occupies the same cells in all four states.
var pieceBlocks = [NumPieceTypes][NumRotations][4]Point{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
	J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Blocks returns the occupied local offsets for the given piece type and
// rotation state. The rotation index wraps modulo NumRotations, so
// out-of-range values never fail.
func Blocks(t PieceType, rotation int) []Point {
	state := pieceBlocks[t][normalizeRotation(rotation)]
	blocks := make([]Point, len(state))
	copy(blocks, state[:])
	return blocks
}

// NextRotation returns the rotation state that follows r. Applying it
// four times from any start returns to the start.
func NextRotation(r int) int {
	return (normalizeRotation(r) + 1) % NumRotations
}

func normalizeRotation(r int) int {
	r %= NumRotations
	if r < 0 {
		r += NumRotations
	}
	return r
}

// Piece is an active falling piece: a shape type, a rotation state and a
// board-space origin for the top-left of its bounding box. It is a plain
// value; Translated and Rotated return candidates without touching the
// receiver, and the Engine decides which candidates to keep.
type Piece struct {
	Type     PieceType
	Rotation int
	X, Y     int
}

// Blocks returns the piece's occupied cells in board coordinates.
func (p Piece) Blocks() []Point {
	blocks := Blocks(p.Type, p.Rotation)
	for i := range blocks {
		blocks[i].X += p.X
		blocks[i].Y += p.Y
	}
	return blocks
}

// Translated returns a copy of the piece shifted by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece advanced to the next rotation state.
func (p Piece) Rotated() Piece {
	p.Rotation = NextRotation(p.Rotation)
	return p
}
