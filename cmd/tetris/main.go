package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/gridfall/tetris"
	"github.com/plus3/gridfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/gridfall/tetris/debugui/ebiten"
)

type config struct {
	BoardWidth   int     `env:"TETRIS_BOARD_WIDTH" envDefault:"10"`
	BoardHeight  int     `env:"TETRIS_BOARD_HEIGHT" envDefault:"20"`
	FallInterval float64 `env:"TETRIS_FALL_INTERVAL" envDefault:"1.0"`
	Seed         uint64  `env:"TETRIS_SEED"`
	CellSize     int     `env:"TETRIS_CELL_SIZE" envDefault:"30"`
	Debug        bool    `env:"TETRIS_DEBUG"`
}

func parseConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	return cfg, nil
}

// Held-key repeat timings, in seconds.
const (
	repeatDelay  = 0.2
	repeatRate   = 0.05
	softDropRate = 0.05
	frameDt      = 1.0 / 60.0
)

// Game drives the engine from keyboard input and renders its snapshot.
type Game struct {
	cfg    config
	engine *tetris.Engine

	overlay *debugui.Overlay
	backend debugui_ebiten.ImguiBackend

	moveLeftTime  float64
	moveRightTime float64
	downTime      float64
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.cfg.Debug {
		g.backend.BeginFrame()
	}

	if !g.cfg.Debug || !g.overlay.InputCapture().WantCaptureKeyboard {
		g.handleInput()
	}

	g.engine.Tick(frameDt)

	if g.cfg.Debug {
		g.overlay.Render()
		g.backend.EndFrame()
	}

	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.engine.GameOver() {
		g.engine.Reset()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.moveLeftTime = 0
		g.engine.MoveLeft()
	} else if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.moveLeftTime += frameDt
		if g.moveLeftTime > repeatDelay {
			g.moveLeftTime -= repeatRate
			g.engine.MoveLeft()
		}
	} else {
		g.moveLeftTime = 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.moveRightTime = 0
		g.engine.MoveRight()
	} else if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.moveRightTime += frameDt
		if g.moveRightTime > repeatDelay {
			g.moveRightTime -= repeatRate
			g.engine.MoveRight()
		}
	} else {
		g.moveRightTime = 0
	}

	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.downTime += frameDt
		if g.downTime > softDropRate {
			g.downTime = 0
			g.engine.SoftDrop()
		}
	} else {
		g.downTime = 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.engine.Rotate()
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Debug {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return g.screenSize()
}

func (g *Game) screenSize() (int, int) {
	w := boardOffsetX*2 + g.cfg.BoardWidth*g.cfg.CellSize + sidePanelWidth
	h := boardOffsetY*2 + g.cfg.BoardHeight*g.cfg.CellSize
	return w, h
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	engine, err := tetris.NewEngine(tetris.Config{
		Width:        cfg.BoardWidth,
		Height:       cfg.BoardHeight,
		FallInterval: cfg.FallInterval,
		Seed:         cfg.Seed,
	})
	if err != nil {
		log.Fatalf("Invalid game configuration: %v", err)
	}

	game := &Game{cfg: cfg, engine: engine}

	if cfg.Debug {
		imguiBackend := ebitenbackend.NewEbitenBackend()
		w, h := game.screenSize()
		imguiBackend.CreateWindow("Tetris", w, h)
		imgui.CurrentIO().SetIniFilename("")

		game.backend = debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend}
		game.overlay = debugui.NewOverlay()
		debugui.Attach(game.overlay, engine)
	}

	w, h := game.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Tetris")

	log.Printf("Starting game: board %dx%d, seed %d", cfg.BoardWidth, cfg.BoardHeight, cfg.Seed)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
