package debugui

// BoardViewerComponent draws the occupancy grid and the active piece as
// colored cells in an ImGui window.
type BoardViewerComponent struct {
	cellSize    float32
	showFullRow bool
}

// PieceInspectorComponent shows the active piece's type, rotation state
// and resolved block coordinates, plus a preview of the next piece.
type PieceInspectorComponent struct {
	previewCellSize float32
}

// PerformanceStatsComponent plots frame times and shows engine activity
// counters.
type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// ControlPanelComponent injects intents into the engine from buttons, as
// an alternative to keyboard input.
type ControlPanelComponent struct {
	tickStep float64
}
