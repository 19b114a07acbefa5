package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/gridfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for both the engine and the intent stream; a run is fully determined by it.")
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	fallInterval := flag.Float64("fall-interval", 0.05, "Gravity period in seconds. Small values churn the lock sequence harder.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting engine stress test...")

	// 1. Setup a seeded engine and an independent seeded intent stream
	engine, err := tetris.NewEngine(tetris.Config{
		Width:        *width,
		Height:       *height,
		FallInterval: *fallInterval,
		Seed:         *seed,
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	intents := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Width:          *width,
		Height:         *height,
		FallInterval:   *fallInterval,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	pieceCounts := intmap.New[int64, int64](tetris.NumPieceTypes)
	clearCounts := intmap.New[int64, int64](8)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastSpawned := engine.Stats().PiecesSpawned
	lastLines := engine.Stats().LinesCleared
	recordActivePiece(engine, pieceCounts)

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			applyRandomIntent(engine, intents)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalIntents++

			stats := engine.Stats()
			if stats.PiecesSpawned > lastSpawned {
				report.PiecesLocked += stats.PiecesSpawned - lastSpawned
				recordActivePiece(engine, pieceCounts)
			}
			if delta := stats.LinesCleared - lastLines; delta > 0 {
				report.LinesCleared += delta
				bump(clearCounts, delta)
			}
			lastSpawned = stats.PiecesSpawned
			lastLines = stats.LinesCleared

			if engine.GameOver() {
				report.GamesPlayed++
				engine.Reset()
				lastSpawned = engine.Stats().PiecesSpawned
				lastLines = engine.Stats().LinesCleared
				recordActivePiece(engine, pieceCounts)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.FinalizeHistograms(pieceCounts, clearCounts)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// applyRandomIntent drives the engine with one randomly chosen operation.
// Gravity ticks dominate so games actually progress toward locks.
func applyRandomIntent(engine *tetris.Engine, rng *rand.Rand) {
	switch rng.IntN(10) {
	case 0:
		engine.MoveLeft()
	case 1:
		engine.MoveRight()
	case 2:
		engine.Rotate()
	case 3:
		engine.SoftDrop()
	default:
		engine.Tick(1.0 / 60.0)
	}
}

// recordActivePiece counts the freshly spawned piece type.
func recordActivePiece(engine *tetris.Engine, pieceCounts *intmap.Map[int64, int64]) {
	snap := engine.Snapshot()
	if snap.Active == nil {
		return
	}
	bump(pieceCounts, int64(snap.Active.Type))
}

func bump(m *intmap.Map[int64, int64], key int64) {
	if prev, ok := m.Get(key); ok {
		m.Put(key, prev+1)
	} else {
		m.Put(key, 1)
	}
}
