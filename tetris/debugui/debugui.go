// Package debugui provides immediate-mode GUI inspection windows for a
// running tetris engine using Dear ImGui. It renders through an Overlay
// of deferred render items and tracks ImGui's input capture state so the
// host can decide when keyboard input belongs to the game.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiItem holds a Dear ImGui render function. Add items to an Overlay
// to have them rendered each frame.
type ImguiItem struct {
	Render func()
}

// InputCapture reports whether Dear ImGui is consuming mouse or keyboard
// input this frame. Hosts should suppress game input while ImGui wants
// the keyboard.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay collects ImguiItem render functions and executes them once per
// frame between the backend's BeginFrame and EndFrame calls.
type Overlay struct {
	items   []ImguiItem
	capture InputCapture
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers a render function with the overlay.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, ImguiItem{Render: render})
}

// Render updates the input capture state and runs all registered items.
func (o *Overlay) Render() {
	o.capture.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.capture.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// InputCapture returns the capture state recorded by the last Render.
func (o *Overlay) InputCapture() InputCapture {
	return o.capture
}
