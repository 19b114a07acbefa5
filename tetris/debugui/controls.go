package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridfall/tetris"
)

func NewControlPanelComponent(tickStep float64) ControlPanelComponent {
	return ControlPanelComponent{
		tickStep: tickStep,
	}
}

// Render draws intent buttons that drive the engine directly, which is
// handy for stepping the state machine without touching the keyboard.
func (cp *ControlPanelComponent) Render(engine *tetris.Engine) {
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Left") {
		engine.MoveLeft()
	}
	imgui.SameLine()
	if imgui.Button("Right") {
		engine.MoveRight()
	}
	imgui.SameLine()
	if imgui.Button("Rotate") {
		engine.Rotate()
	}

	if imgui.Button("Soft Drop") {
		engine.SoftDrop()
	}
	imgui.SameLine()
	if imgui.Button("Tick") {
		engine.Tick(cp.tickStep)
	}

	imgui.Separator()
	if imgui.Button("Reset") {
		engine.Reset()
	}

	imgui.End()
}
