package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/gridfall/tetris"
	"github.com/stretchr/testify/require"
)

// sequenceGenerator deals a fixed sequence of piece types and keeps
// repeating the final element once the script runs out. It makes engine
// behavior fully predictable in tests.
type sequenceGenerator struct {
	seq []tetris.PieceType
	i   int
}

func seqGen(types ...tetris.PieceType) *sequenceGenerator {
	return &sequenceGenerator{seq: types}
}

func (g *sequenceGenerator) Next() tetris.PieceType {
	t := g.seq[g.i]
	if g.i < len(g.seq)-1 {
		g.i++
	}
	return t
}

func newTestEngine(t *testing.T, cfg tetris.Config) *tetris.Engine {
	t.Helper()
	e, err := tetris.NewEngine(cfg)
	require.NoError(t, err)
	return e
}

// fillRow commits the whole row except the listed gap columns.
func fillRow(b *tetris.Board, row int, color tetris.Cell, gaps ...int) {
	gapSet := make(map[int]bool, len(gaps))
	for _, g := range gaps {
		gapSet[g] = true
	}
	var blocks []tetris.Point
	for x := 0; x < b.Width(); x++ {
		if !gapSet[x] {
			blocks = append(blocks, tetris.Point{X: x, Y: row})
		}
	}
	b.Commit(blocks, color)
}

// renderGrid draws occupancy as text, one row per line.
func renderGrid(cells [][]tetris.Cell) string {
	var sb strings.Builder
	for _, row := range cells {
		for _, c := range row {
			if c.Occupied() {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
