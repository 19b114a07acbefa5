package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/gridfall/tetris"
)

const (
	boardOffsetX   = 20
	boardOffsetY   = 20
	sidePanelWidth = 160
)

// One color per piece type, indexed by PieceType.
var pieceColors = [tetris.NumPieceTypes]color.RGBA{
	{R: 102, G: 191, B: 255, A: 255}, // I
	{R: 253, G: 249, B: 0, A: 255},   // O
	{R: 135, G: 60, B: 190, A: 255},  // T
	{R: 0, G: 228, B: 48, A: 255},    // S
	{R: 255, G: 109, B: 194, A: 255}, // Z
	{R: 0, G: 121, B: 241, A: 255},   // J
	{R: 255, G: 161, B: 0, A: 255},   // L
}

var (
	wellColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	gridColor = color.RGBA{R: 50, G: 50, B: 58, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.engine.Snapshot()
	cell := float32(g.cfg.CellSize)

	// well background
	vector.DrawFilledRect(screen,
		boardOffsetX, boardOffsetY,
		float32(snap.Width)*cell, float32(snap.Height)*cell,
		wellColor, false)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if c := snap.Cells[y][x]; c.Occupied() {
				g.drawCell(screen, x, y, pieceColors[c.Type()])
			}
		}
	}

	if snap.Active != nil {
		for _, p := range snap.Active.Blocks {
			g.drawCell(screen, p.X, p.Y, pieceColors[snap.Active.Type])
		}
	}

	g.drawSidePanel(screen, snap)

	if snap.GameOver {
		midX := boardOffsetX + snap.Width*g.cfg.CellSize/2 - 40
		midY := boardOffsetY + snap.Height*g.cfg.CellSize/2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", midX, midY)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", midX-20, midY+20)
	}

	if g.cfg.Debug {
		g.backend.Draw(screen)
	}
}

func (g *Game) drawCell(screen *ebiten.Image, x, y int, c color.RGBA) {
	cell := float32(g.cfg.CellSize)
	px := boardOffsetX + float32(x)*cell
	py := boardOffsetY + float32(y)*cell
	vector.DrawFilledRect(screen, px, py, cell-1, cell-1, c, false)
	vector.StrokeRect(screen, px, py, cell-1, cell-1, 1, gridColor, false)
}

func (g *Game) drawSidePanel(screen *ebiten.Image, snap tetris.Snapshot) {
	panelX := boardOffsetX + snap.Width*g.cfg.CellSize + 20

	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, boardOffsetY)

	cell := float32(g.cfg.CellSize)
	previewY := float32(boardOffsetY + 20)
	for _, p := range tetris.Blocks(snap.Next, 0) {
		px := float32(panelX) + float32(p.X)*cell
		py := previewY + float32(p.Y)*cell
		vector.DrawFilledRect(screen, px, py, cell-1, cell-1, pieceColors[snap.Next], false)
	}

	linesY := boardOffsetY + 20 + 5*g.cfg.CellSize
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", snap.Lines), panelX, linesY)
}
