package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridfall/tetris"
)

// One color per piece type, indexed by PieceType.
var pieceColors = [tetris.NumPieceTypes]imgui.Vec4{
	imgui.NewVec4(0.40, 0.75, 0.95, 1.0), // I
	imgui.NewVec4(0.95, 0.80, 0.20, 1.0), // O
	imgui.NewVec4(0.65, 0.35, 0.85, 1.0), // T
	imgui.NewVec4(0.35, 0.85, 0.35, 1.0), // S
	imgui.NewVec4(0.95, 0.45, 0.55, 1.0), // Z
	imgui.NewVec4(0.30, 0.45, 0.95, 1.0), // J
	imgui.NewVec4(0.95, 0.60, 0.20, 1.0), // L
}

var (
	emptyCellColor = imgui.NewVec4(0.12, 0.12, 0.14, 1.0)
	fullRowColor   = imgui.NewVec4(0.95, 0.95, 0.95, 1.0)
)

func colorFor(t tetris.PieceType) imgui.Vec4 {
	return pieceColors[t]
}

func NewBoardViewerComponent() BoardViewerComponent {
	return BoardViewerComponent{
		cellSize:    18,
		showFullRow: true,
	}
}

// Render draws the snapshot's settled cells and active piece as a grid
// of filled rectangles on the window draw list.
func (bv *BoardViewerComponent) Render(snap tetris.Snapshot) {
	if !imgui.BeginV("Board Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Board: %dx%d", snap.Width, snap.Height))
	imgui.Text(fmt.Sprintf("Lines cleared: %d", snap.Lines))
	if snap.GameOver {
		imgui.TextColored(imgui.NewVec4(0.95, 0.25, 0.25, 1.0), "GAME OVER")
	}
	imgui.Separator()

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := bv.cellSize

	// Cleared rows never survive a lock, so fullness is only visible when
	// the active piece is counted: highlighted rows are the ones the
	// piece would complete if it locked in place.
	activeCells := make(map[tetris.Point]bool)
	if snap.Active != nil {
		for _, p := range snap.Active.Blocks {
			activeCells[p] = true
		}
	}

	for y := 0; y < snap.Height; y++ {
		highlight := bv.showFullRow && rowFull(snap, activeCells, y)
		for x := 0; x < snap.Width; x++ {
			color := emptyCellColor
			if cell := snap.Cells[y][x]; cell.Occupied() {
				color = colorFor(cell.Type())
			} else if activeCells[tetris.Point{X: x, Y: y}] {
				color = colorFor(snap.Active.Type)
			}
			if highlight && color != emptyCellColor {
				color = fullRowColor
			}
			bv.drawCell(drawList, origin, x, y, color)
		}
	}

	// reserve the drawn area so following widgets land below the grid
	imgui.Dummy(imgui.NewVec2(float32(snap.Width)*size, float32(snap.Height)*size))

	imgui.End()
}

func rowFull(snap tetris.Snapshot, activeCells map[tetris.Point]bool, y int) bool {
	for x := 0; x < snap.Width; x++ {
		if !snap.Cells[y][x].Occupied() && !activeCells[tetris.Point{X: x, Y: y}] {
			return false
		}
	}
	return true
}

func (bv *BoardViewerComponent) drawCell(drawList *imgui.DrawList, origin imgui.Vec2, x, y int, color imgui.Vec4) {
	size := bv.cellSize
	min := imgui.NewVec2(origin.X+float32(x)*size, origin.Y+float32(y)*size)
	max := imgui.NewVec2(min.X+size-1, min.Y+size-1)
	drawList.AddRectFilled(min, max, imgui.ColorU32Vec4(color))
}
