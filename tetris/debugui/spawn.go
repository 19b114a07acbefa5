package debugui

import "github.com/plus3/gridfall/tetris"

// Attach registers the full set of inspection windows for an engine on
// the overlay. The frame timer feeds the performance window.
func Attach(overlay *Overlay, engine *tetris.Engine) {
	boardViewer := NewBoardViewerComponent()
	pieceInspector := NewPieceInspectorComponent()
	perfStats := NewPerformanceStatsComponent(120)
	controls := NewControlPanelComponent(tetris.DefaultFallInterval)
	frameTimer := NewFrameTimer()

	overlay.Add(func() {
		snap := engine.Snapshot()
		boardViewer.Render(snap)
		pieceInspector.Render(snap)
		perfStats.Render(engine.Stats(), frameTimer.GetDeltaTime())
		controls.Render(engine)
	})
}
