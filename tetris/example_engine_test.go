package tetris_test

import (
	"fmt"

	"github.com/plus3/gridfall/tetris"
)

// fixedGenerator always deals the same piece type. Examples use scripted
// generators so their output never depends on a random stream.
type fixedGenerator struct {
	t tetris.PieceType
}

func (g fixedGenerator) Next() tetris.PieceType { return g.t }

func printGrid(snap tetris.Snapshot) {
	for _, row := range snap.Cells {
		for _, cell := range row {
			if cell.Occupied() {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
}

// ExampleEngine drops a single O piece to the floor of a small board.
// The piece spawns top-center and a blocked downward step locks it into
// the grid.
func ExampleEngine() {
	engine, err := tetris.NewEngine(tetris.Config{
		Width:     6,
		Height:    6,
		Generator: fixedGenerator{t: tetris.O},
	})
	if err != nil {
		panic(err)
	}

	for engine.SoftDrop() {
	}

	printGrid(engine.Snapshot())
	// Output:
	// ......
	// ......
	// ......
	// ......
	// .##...
	// .##...
}

// ExampleEngine_lineClear completes the bottom two rows of a 4x4 board
// with two O pieces. The lock sequence commits the piece, clears every
// full row and compacts the rows above, all in one step.
func ExampleEngine_lineClear() {
	engine, err := tetris.NewEngine(tetris.Config{
		Width:     4,
		Height:    4,
		Generator: fixedGenerator{t: tetris.O},
	})
	if err != nil {
		panic(err)
	}

	// left half
	for engine.SoftDrop() {
	}

	// right half
	engine.MoveRight()
	engine.MoveRight()
	for engine.SoftDrop() {
	}

	fmt.Println("lines cleared:", engine.Lines())
	printGrid(engine.Snapshot())
	// Output:
	// lines cleared: 2
	// ....
	// ....
	// ....
	// ....
}

// ExampleEngine_gameOver stacks pieces in the spawn columns until a new
// piece no longer fits. Game over is terminal: every further intent is
// ignored until Reset.
func ExampleEngine_gameOver() {
	engine, err := tetris.NewEngine(tetris.Config{
		Width:     4,
		Height:    4,
		Generator: fixedGenerator{t: tetris.O},
	})
	if err != nil {
		panic(err)
	}

	for !engine.GameOver() {
		engine.SoftDrop()
	}

	fmt.Println("game over:", engine.GameOver())
	fmt.Println("moved:", engine.MoveLeft())

	engine.Reset()
	fmt.Println("game over after reset:", engine.GameOver())
	// Output:
	// game over: true
	// moved: false
	// game over after reset: false
}

// ExampleBagGenerator shows the bag property: every run of seven draws
// contains each of the seven piece types exactly once.
func ExampleBagGenerator() {
	gen := tetris.NewBagGenerator(42)

	seen := make(map[tetris.PieceType]bool)
	for i := 0; i < tetris.NumPieceTypes; i++ {
		seen[gen.Next()] = true
	}

	fmt.Println("distinct types in one bag:", len(seen))
	// Output:
	// distinct types in one bag: 7
}
