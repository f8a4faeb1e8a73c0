package engine

import (
	"math"
	"sort"

	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// Wave pacing, in ticks. The sweep crosses the whole board in waveSteps
// advances; the traveling highlight trails trailRatio of the board behind the
// front before fading.
const (
	waveStepTicks = 1
	waveSteps     = 45
	trailRatio    = 6
)

// waveState tracks a celebration sweep in flight: every cell ordered by its
// projection onto a randomized angle through the board center, a moving front
// index, and the repeating task that advances it.
type waveState struct {
	order []puzzle.Coord
	rank  map[puzzle.Coord]int
	front int
	trail int
	task  *Task
}

// StartCelebration begins a celebration wave across the whole board: cells
// light up in order of projected distance along a random angle through the
// center, producing a traveling diagonal highlight. A wave already in flight
// is restarted. The wave clears itself when the sweep completes; puzzle
// change cancels it via Reset.
func (e *Effects) StartCelebration() {
	if e.wave != nil && e.wave.task.Active() {
		e.wave.task.Cancel()
	}
	if e.size <= 0 {
		return
	}

	angle := e.rng.Float64() * 2 * math.Pi
	dx, dy := math.Cos(angle), math.Sin(angle)
	center := float64(e.size-1) / 2

	order := make([]puzzle.Coord, 0, e.size*e.size)
	for r := 0; r < e.size; r++ {
		for c := 0; c < e.size; c++ {
			order = append(order, puzzle.Coord{Row: r, Col: c})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return waveKey(order[i], center, dx, dy) < waveKey(order[j], center, dx, dy)
	})

	rank := make(map[puzzle.Coord]int, len(order))
	for i, c := range order {
		rank[c] = i
	}

	w := &waveState{
		order: order,
		rank:  rank,
		trail: len(order)/trailRatio + 1,
	}
	perStep := len(order)/waveSteps + 1
	w.task = e.runner.Every(waveStepTicks, func() {
		w.front += perStep
		if w.front > len(w.order)+w.trail {
			w.task.Cancel()
			e.wave = nil
		}
	})
	e.wave = w
}

// CelebrationActive reports whether a wave is still sweeping.
func (e *Effects) CelebrationActive() bool {
	return e.wave != nil
}

// Celebrating reports whether a cell is inside the traveling highlight band.
func (e *Effects) Celebrating(c puzzle.Coord) bool {
	w := e.wave
	if w == nil {
		return false
	}
	r, ok := w.rank[c]
	if !ok {
		return false
	}
	return r < w.front && r >= w.front-w.trail
}

// waveKey is the projection of a cell onto the wave's sweep direction.
func waveKey(c puzzle.Coord, center, dx, dy float64) float64 {
	return (float64(c.Col)-center)*dx + (float64(c.Row)-center)*dy
}
