package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridfall/tetris"
)

func NewPieceInspectorComponent() PieceInspectorComponent {
	return PieceInspectorComponent{
		previewCellSize: 14,
	}
}

// Render shows the active piece's fields and resolved block coordinates,
// and previews the lookahead piece in its local bounding box.
func (pi *PieceInspectorComponent) Render(snap tetris.Snapshot) {
	if !imgui.BeginV("Piece Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if snap.Active == nil {
		imgui.Text("No active piece")
	} else {
		imgui.Text(fmt.Sprintf("Type: %s", snap.Active.Type))
		imgui.Text(fmt.Sprintf("Rotation: %d", snap.Active.Rotation))
		imgui.Text(fmt.Sprintf("Origin: (%d, %d)", snap.Active.X, snap.Active.Y))

		if imgui.TreeNodeStr("Blocks") {
			for _, p := range snap.Active.Blocks {
				imgui.BulletText(fmt.Sprintf("(%d, %d)", p.X, p.Y))
			}
			imgui.TreePop()
		}
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next))
	pi.renderPreview(snap.Next)

	imgui.End()
}

func (pi *PieceInspectorComponent) renderPreview(t tetris.PieceType) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := pi.previewCellSize
	box := tetris.BoundingBox(t)

	for _, p := range tetris.Blocks(t, 0) {
		min := imgui.NewVec2(origin.X+float32(p.X)*size, origin.Y+float32(p.Y)*size)
		max := imgui.NewVec2(min.X+size-1, min.Y+size-1)
		drawList.AddRectFilled(min, max, imgui.ColorU32Vec4(colorFor(t)))
	}

	imgui.Dummy(imgui.NewVec2(float32(box)*size, float32(box)*size))
}
