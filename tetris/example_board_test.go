package tetris_test

import (
	"fmt"

	"github.com/plus3/gridfall/tetris"
)

// ExampleBoard_ClearFullLines fills the floor of a small board, leaves a
// partial row above it and clears. The full row vanishes and the partial
// row drops onto the floor.
func ExampleBoard_ClearFullLines() {
	board, err := tetris.NewBoard(5, 5)
	if err != nil {
		panic(err)
	}

	floor := []tetris.Point{{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}}
	board.Commit(floor, tetris.CellFor(tetris.I))
	board.Commit([]tetris.Point{{X: 2, Y: 3}}, tetris.CellFor(tetris.T))

	fmt.Println("cleared:", board.ClearFullLines())
	fmt.Println("marker landed:", board.Cell(2, 4).Occupied())
	fmt.Println("row above empty:", !board.Cell(2, 3).Occupied())
	// Output:
	// cleared: 1
	// marker landed: true
	// row above empty: true
}

// ExampleBoard_IsValidPosition shows the single predicate that backs
// move, rotation and spawn validity: cells must be inside the grid and
// empty.
func ExampleBoard_IsValidPosition() {
	board, err := tetris.NewBoard(10, 20)
	if err != nil {
		panic(err)
	}
	board.Commit([]tetris.Point{{X: 5, Y: 19}}, tetris.CellFor(tetris.Z))

	fmt.Println(board.IsValidPosition([]tetris.Point{{X: 4, Y: 19}}))
	fmt.Println(board.IsValidPosition([]tetris.Point{{X: 5, Y: 19}}))
	fmt.Println(board.IsValidPosition([]tetris.Point{{X: 10, Y: 19}}))
	// Output:
	// true
	// false
	// false
}
