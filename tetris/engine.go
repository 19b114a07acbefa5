// Package tetris implements a deterministic falling-block puzzle engine:
// piece geometry and rotation, a bounded occupancy grid, collision-aware
// movement, line clearing and the spawn/lock/game-over state machine.
//
// The engine is single-threaded and synchronous. Every operation runs to
// completion without blocking, time is an elapsed-duration input to Tick
// rather than a clock read, and randomness comes from a seedable
// Generator, so a fixed sequence of intents and tick values always
// replays to the same state. Hosts that drive the engine from multiple
// goroutines must serialize their calls.
package tetris

import "fmt"

// Default board dimensions and gravity interval, matching the classic
// 10x20 well with one downward step per second.
const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultFallInterval = 1.0
)

// Config configures an Engine. The zero value selects the defaults.
type Config struct {
	// Width and Height are the board dimensions in cells. Both must be
	// at least MinBoardSize. Zero selects DefaultWidth/DefaultHeight.
	Width  int
	Height int

	// FallInterval is the gravity period in seconds: how much elapsed
	// time Tick must accumulate per automatic downward step. Zero
	// selects DefaultFallInterval; negative values are rejected.
	FallInterval float64

	// Seed seeds the default bag generator. Ignored when Generator is
	// set.
	Seed uint64

	// Generator overrides the piece source. Reset keeps consuming an
	// injected generator rather than rewinding it.
	Generator Generator
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.FallInterval == 0 {
		c.FallInterval = DefaultFallInterval
	}
	return c
}

// Stats counts engine activity since construction or the last Reset.
type Stats struct {
	PiecesSpawned int64
	LinesCleared  int64
}

// Engine orchestrates the board, the active piece and the generator into
// the game state machine. It exclusively owns all of them; callers
// interact through intents and read state through Snapshot.
type Engine struct {
	cfg      Config
	board    *Board
	gen      Generator
	active   Piece
	next     PieceType
	gameOver bool
	fallTime float64
	stats    Stats
}

// NewEngine creates an engine with a freshly spawned active piece and a
// filled lookahead. Invalid dimensions or a negative fall interval fail
// fast: no game could proceed from such a configuration.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()

	if cfg.FallInterval <= 0 {
		return nil, fmt.Errorf("fall interval %v is not positive", cfg.FallInterval)
	}

	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	e := &Engine{cfg: cfg, board: board}
	e.gen = cfg.Generator
	if e.gen == nil {
		e.gen = NewBagGenerator(cfg.Seed)
	}
	e.start()
	return e, nil
}

func (e *Engine) start() {
	e.fallTime = 0
	e.stats = Stats{}
	e.next = e.gen.Next()
	e.spawn()
}

// spawn promotes the lookahead to the active piece at the spawn origin
// (top-center, rotation 0) and refills the lookahead. A spawn placement
// that is already blocked ends the game before the piece exists to the
// outside world.
func (e *Engine) spawn() {
	t := e.next
	e.next = e.gen.Next()
	e.active = Piece{Type: t, X: e.board.Width()/2 - 2, Y: 0}

	if !e.board.IsValidPosition(e.active.Blocks()) {
		e.gameOver = true
		return
	}
	e.stats.PiecesSpawned++
}

// MoveLeft attempts to shift the active piece one column left. It
// reports whether the piece moved; a blocked move is a no-op.
func (e *Engine) MoveLeft() bool {
	return e.tryMove(-1, 0)
}

// MoveRight attempts to shift the active piece one column right.
func (e *Engine) MoveRight() bool {
	return e.tryMove(1, 0)
}

// Rotate attempts to advance the active piece to its next rotation state
// at the unchanged origin. There is no wall-kick fallback: a blocked
// rotation leaves the piece exactly as it was.
func (e *Engine) Rotate() bool {
	if e.gameOver {
		return false
	}
	candidate := e.active.Rotated()
	if !e.board.IsValidPosition(candidate.Blocks()) {
		return false
	}
	e.active = candidate
	return true
}

// SoftDrop forces one downward step. A drop blocked by the floor or by
// settled blocks locks the piece immediately, exactly like a blocked
// gravity step. It reports whether the piece moved down.
func (e *Engine) SoftDrop() bool {
	if e.gameOver {
		return false
	}
	return e.descend()
}

// Tick advances game time by dt seconds. Each whole fall interval
// accumulated consumes one interval (the remainder carries over) and
// attempts one downward step, so partial ticks sum correctly and a large
// dt cannot tunnel the piece through settled blocks.
func (e *Engine) Tick(dt float64) {
	if e.gameOver || dt <= 0 {
		return
	}

	e.fallTime += dt
	for e.fallTime >= e.cfg.FallInterval {
		e.fallTime -= e.cfg.FallInterval
		e.descend()
		if e.gameOver {
			e.fallTime = 0
			return
		}
	}
}

// Reset discards all state and starts a fresh game. With the default
// generator the piece sequence replays from the configured seed.
func (e *Engine) Reset() {
	board, err := NewBoard(e.cfg.Width, e.cfg.Height)
	if err != nil {
		// cfg was validated at construction
		panic(err)
	}
	e.board = board
	if e.cfg.Generator == nil {
		e.gen = NewBagGenerator(e.cfg.Seed)
	}
	e.gameOver = false
	e.start()
}

func (e *Engine) tryMove(dx, dy int) bool {
	if e.gameOver {
		return false
	}
	candidate := e.active.Translated(dx, dy)
	if !e.board.IsValidPosition(candidate.Blocks()) {
		return false
	}
	e.active = candidate
	return true
}

// descend attempts one downward step and runs the lock sequence when the
// step is blocked: commit the piece, clear full lines, spawn the next
// piece. The three steps are atomic from the caller's perspective.
func (e *Engine) descend() bool {
	if e.tryMove(0, 1) {
		return true
	}
	e.board.Commit(e.active.Blocks(), CellFor(e.active.Type))
	e.stats.LinesCleared += int64(e.board.ClearFullLines())
	e.spawn()
	return false
}

// GameOver reports whether the game has reached its terminal state. All
// intents are ignored until Reset.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Lines returns the total number of lines cleared this game.
func (e *Engine) Lines() int {
	return int(e.stats.LinesCleared)
}

// NextPiece returns the type in the lookahead buffer.
func (e *Engine) NextPiece() PieceType {
	return e.next
}

// Stats returns activity counters for the current game.
func (e *Engine) Stats() Stats {
	return e.stats
}

// ActivePiece is the resolved view of the falling piece in a Snapshot.
type ActivePiece struct {
	Type     PieceType
	Rotation int
	X, Y     int
	Blocks   []Point
}

// Snapshot is a self-consistent, read-only copy of the visible game
// state. Renderers consume it every frame; it never aliases engine
// internals, so it stays valid across subsequent intents.
type Snapshot struct {
	Width    int
	Height   int
	Cells    [][]Cell
	Active   *ActivePiece
	Next     PieceType
	Lines    int
	GameOver bool
}

// Snapshot captures the current game state. After game over the active
// piece is omitted: the failed spawn was never placed.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Width:    e.board.Width(),
		Height:   e.board.Height(),
		Cells:    e.board.Grid(),
		Next:     e.next,
		Lines:    int(e.stats.LinesCleared),
		GameOver: e.gameOver,
	}
	if !e.gameOver {
		snap.Active = &ActivePiece{
			Type:     e.active.Type,
			Rotation: e.active.Rotation,
			X:        e.active.X,
			Y:        e.active.Y,
			Blocks:   e.active.Blocks(),
		}
	}
	return snap
}
