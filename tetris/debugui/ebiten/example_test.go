package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gridfall/tetris"
	"github.com/plus3/gridfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/gridfall/tetris/debugui/ebiten"
)

// Game implements ebiten.Game and layers the ImGui debug overlay on top
// of the engine.
type Game struct {
	engine  *tetris.Engine
	overlay *debugui.Overlay
	backend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before rendering overlay items
	g.backend.BeginFrame()

	g.engine.Tick(1.0 / 60.0)
	g.overlay.Render()

	// End ImGui frame after all items rendered
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Tetris Debug Overlay", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	engine, err := tetris.NewEngine(tetris.Config{Seed: 1})
	if err != nil {
		panic(err)
	}

	// Register all inspection windows for the engine
	overlay := debugui.NewOverlay()
	debugui.Attach(overlay, engine)

	game := &Game{
		engine:  engine,
		overlay: overlay,
		backend: debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
