package engine

import (
	"math/rand"

	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

// Hint reveal levels for the progressive hint.
const (
	HintLevelNone   = 0
	HintLevelFirst  = 1 // first letter's cell
	HintLevelSecond = 2 // one additional random cell
	HintLevelFull   = 3 // entire phrase path blinks
)

// blinkSeconds is how long a hint blink stays lit.
const blinkSeconds = 1.5

// Effects owns the timed visual feedback for one puzzle: hint blinks,
// progressive hint reveals, and the celebration wave. It is purely
// presentational; nothing here feeds back into selection or matching. All
// timing runs on the tick Runner, so a puzzle change clears everything with
// one Reset.
type Effects struct {
	runner   Runner
	rng      *rand.Rand
	size     int
	tickRate int

	blinkTicks int
	blinkCells map[puzzle.Coord]bool
	blinkTask  *Task

	hintText  string
	hintLevel int
	hintCells map[puzzle.Coord]bool

	wave *waveState
}

// NewEffects creates the effect state for a size x size board.
func NewEffects(size, tickRate int, rng *rand.Rand) *Effects {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Effects{
		rng:        rng,
		size:       size,
		tickRate:   tickRate,
		blinkTicks: int(blinkSeconds * float64(tickRate)),
		blinkCells: make(map[puzzle.Coord]bool),
		hintCells:  make(map[puzzle.Coord]bool),
	}
}

// SetBlinkSeconds overrides the default blink duration. Non-positive values
// are ignored.
func (e *Effects) SetBlinkSeconds(secs float64) {
	if secs > 0 {
		e.blinkTicks = int(secs * float64(e.tickRate))
	}
}

// Tick advances all pending effect timers by one simulation tick.
func (e *Effects) Tick() {
	e.runner.Tick()
}

// Reset cancels every pending effect and clears all visual state, for puzzle
// change or restart.
func (e *Effects) Reset(size int) {
	e.runner.CancelAll()
	e.size = size
	e.blinkCells = make(map[puzzle.Coord]bool)
	e.blinkTask = nil
	e.hintText = ""
	e.hintLevel = HintLevelNone
	e.hintCells = make(map[puzzle.Coord]bool)
	e.wave = nil
}

// BlinkPhrase lights up the phrase's full coordinate set for a fixed duration,
// then clears. A second blink before the first expires cancels the pending
// clear and replaces the highlight outright, so no stale cells survive.
func (e *Effects) BlinkPhrase(p puzzle.Phrase) {
	if e.blinkTask.Active() {
		e.blinkTask.Cancel()
	}
	e.blinkCells = p.Cells()
	e.blinkTask = e.runner.After(e.blinkTicks, func() {
		e.blinkCells = make(map[puzzle.Coord]bool)
	})
}

// ClearHints drops all hint highlights immediately. Idempotent: a second call
// is a no-op.
func (e *Effects) ClearHints() {
	if e.blinkTask.Active() {
		e.blinkTask.Cancel()
	}
	e.blinkTask = nil
	e.blinkCells = make(map[puzzle.Coord]bool)
	e.hintText = ""
	e.hintLevel = HintLevelNone
	e.hintCells = make(map[puzzle.Coord]bool)
}

// AdvanceHint steps the progressive three-level reveal for the given phrase
// and returns the level now active. Switching to a different phrase restarts
// at level one. Advancing past level three stays at three; each transition is
// idempotent for the same phrase and level.
func (e *Effects) AdvanceHint(p puzzle.Phrase) int {
	if p.Text != e.hintText {
		e.hintText = p.Text
		e.hintLevel = HintLevelNone
		e.hintCells = make(map[puzzle.Coord]bool)
	}

	switch e.hintLevel {
	case HintLevelNone:
		e.hintLevel = HintLevelFirst
		if len(p.Coordinates) > 0 {
			e.hintCells[p.Coordinates[0]] = true
		}
	case HintLevelFirst:
		e.hintLevel = HintLevelSecond
		if c, ok := e.pickUnrevealed(p); ok {
			e.hintCells[c] = true
		}
	default:
		e.hintLevel = HintLevelFull
		for _, c := range p.Coordinates {
			e.hintCells[c] = true
		}
		e.BlinkPhrase(p)
	}
	return e.hintLevel
}

// HintLevel returns the progressive hint level active for the given phrase
// text, or zero.
func (e *Effects) HintLevel(text string) int {
	if text != e.hintText {
		return HintLevelNone
	}
	return e.hintLevel
}

// pickUnrevealed selects a random phrase cell not yet revealed.
func (e *Effects) pickUnrevealed(p puzzle.Phrase) (puzzle.Coord, bool) {
	var candidates []puzzle.Coord
	for _, c := range p.Coordinates {
		if !e.hintCells[c] {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return puzzle.Coord{}, false
	}
	return candidates[e.rng.Intn(len(candidates))], true
}

// Blinking reports whether a cell is currently highlighted by a hint.
func (e *Effects) Blinking(c puzzle.Coord) bool {
	return e.blinkCells[c] || e.hintCells[c]
}
