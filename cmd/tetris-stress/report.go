package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/gridfall/tetris"
)

type Report struct {
	// Configuration
	Duration     time.Duration
	Seed         uint64
	Width        int
	Height       int
	FallInterval float64

	// Results
	TotalIntents   int64
	PiecesLocked   int64
	LinesCleared   int64
	GamesPlayed    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	PieceHistogram []HistogramEntry
	ClearHistogram []HistogramEntry
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// HistogramEntry is one preformatted histogram row for the report template.
type HistogramEntry struct {
	Label string
	Count int64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// FinalizeHistograms flattens the counting maps into ordered rows.
// Piece keys are PieceType values; clear keys are lines-per-clear sizes.
func (r *Report) FinalizeHistograms(pieceCounts, clearCounts *intmap.Map[int64, int64]) {
	for t := int64(0); t < tetris.NumPieceTypes; t++ {
		count, _ := pieceCounts.Get(t)
		r.PieceHistogram = append(r.PieceHistogram, HistogramEntry{
			Label: tetris.PieceType(t).String(),
			Count: count,
		})
	}

	for size := int64(1); size <= 4; size++ {
		count, _ := clearCounts.Get(size)
		r.ClearHistogram = append(r.ClearHistogram, HistogramEntry{
			Label: fmt.Sprintf("%d-line", size),
			Count: count,
		})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Engine Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Board:** {{.Width}}x{{.Height}}
- **Fall Interval:** {{.FallInterval}}s

## Simulation Results
- **Total Intents:** {{.TotalIntents}}
- **Pieces Locked:** {{.PiecesLocked}}
- **Lines Cleared:** {{.LinesCleared}}
- **Games Played:** {{.GamesPlayed}}
- **Total Test Time:** {{.TotalTime}}
- **Intent Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Piece Distribution
{{range .PieceHistogram}}- {{.Label}}: {{.Count}}
{{end}}
## Clear Sizes
{{range .ClearHistogram}}- {{.Label}}: {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
