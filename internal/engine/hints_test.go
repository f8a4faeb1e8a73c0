package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

func newTestEffects(size int) *Effects {
	// tickRate 10 keeps blink durations short: 1.5s is 15 ticks.
	return NewEffects(size, 10, rand.New(rand.NewSource(42)))
}

func tick(e *Effects, n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

func TestBlinkPhraseExpires(t *testing.T) {
	e := newTestEffects(3)
	p := catPhrase()

	e.BlinkPhrase(p)
	for _, c := range p.Coordinates {
		if !e.Blinking(c) {
			t.Fatalf("cell %v should blink right after BlinkPhrase", c)
		}
	}

	tick(e, 14)
	if !e.Blinking(p.Coordinates[0]) {
		t.Error("blink expired one tick early")
	}
	tick(e, 1)
	if e.Blinking(p.Coordinates[0]) {
		t.Error("blink should have expired after 15 ticks")
	}
}

// A second blink before the first expires replaces the highlight and restarts
// the clock; the superseded clear must not wipe the new highlight early.
func TestBlinkPhraseSupersedes(t *testing.T) {
	e := newTestEffects(5)
	first := puzzle.Phrase{Text: "AB", Coordinates: []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1)}}
	second := puzzle.Phrase{Text: "CD", Coordinates: []puzzle.Coord{puzzle.At(4, 4), puzzle.At(4, 3)}}

	e.BlinkPhrase(first)
	tick(e, 10)
	e.BlinkPhrase(second)

	if e.Blinking(puzzle.At(0, 0)) {
		t.Error("old highlight should be gone immediately")
	}
	tick(e, 10) // the first blink's clear would have fired by now
	if !e.Blinking(puzzle.At(4, 4)) {
		t.Error("superseded timer cleared the new highlight")
	}
	tick(e, 5)
	if e.Blinking(puzzle.At(4, 4)) {
		t.Error("second blink ran past its own duration")
	}
}

func TestClearHintsIdempotent(t *testing.T) {
	e := newTestEffects(3)
	p := catPhrase()
	e.BlinkPhrase(p)
	e.AdvanceHint(p)

	e.ClearHints()
	for _, c := range p.Coordinates {
		if e.Blinking(c) {
			t.Fatalf("cell %v still highlighted after ClearHints", c)
		}
	}
	if e.HintLevel(p.Text) != HintLevelNone {
		t.Error("hint level should reset")
	}

	e.ClearHints() // second clear is a no-op
	tick(e, 20)    // and no stale timer resurrects anything
	for _, c := range p.Coordinates {
		if e.Blinking(c) {
			t.Fatalf("cell %v re-highlighted after clear", c)
		}
	}
}

func TestAdvanceHintProgression(t *testing.T) {
	e := newTestEffects(3)
	p := catPhrase()

	if lvl := e.AdvanceHint(p); lvl != HintLevelFirst {
		t.Fatalf("first advance: level = %d", lvl)
	}
	if !e.Blinking(p.Coordinates[0]) {
		t.Error("level one should reveal the first letter's cell")
	}

	if lvl := e.AdvanceHint(p); lvl != HintLevelSecond {
		t.Fatalf("second advance: level = %d", lvl)
	}
	revealed := 0
	for _, c := range p.Coordinates {
		if e.Blinking(c) {
			revealed++
		}
	}
	if revealed != 2 {
		t.Errorf("level two revealed %d cells, expected 2", revealed)
	}

	if lvl := e.AdvanceHint(p); lvl != HintLevelFull {
		t.Fatalf("third advance: level = %d", lvl)
	}
	for _, c := range p.Coordinates {
		if !e.Blinking(c) {
			t.Errorf("level three should reveal cell %v", c)
		}
	}

	// Past level three stays pinned at three.
	if lvl := e.AdvanceHint(p); lvl != HintLevelFull {
		t.Errorf("fourth advance: level = %d", lvl)
	}
}

func TestAdvanceHintSwitchingPhraseRestarts(t *testing.T) {
	e := newTestEffects(5)
	first := catPhrase()
	second := puzzle.Phrase{
		Text:        "DOG",
		Coordinates: []puzzle.Coord{puzzle.At(2, 0), puzzle.At(2, 1), puzzle.At(2, 2)},
	}

	e.AdvanceHint(first)
	e.AdvanceHint(first)
	if lvl := e.AdvanceHint(second); lvl != HintLevelFirst {
		t.Fatalf("switching phrases should restart at level one, got %d", lvl)
	}
	if e.HintLevel(first.Text) != HintLevelNone {
		t.Error("old phrase should report no active hint")
	}
	if e.Blinking(first.Coordinates[1]) {
		t.Error("old phrase's reveals should be dropped")
	}
}

func TestResetCancelsEverything(t *testing.T) {
	e := newTestEffects(3)
	p := catPhrase()
	e.BlinkPhrase(p)
	e.AdvanceHint(p)
	e.StartCelebration()

	e.Reset(5)
	if e.CelebrationActive() {
		t.Error("reset should stop the celebration wave")
	}
	tick(e, 50) // no cancelled timer may fire
	for _, c := range p.Coordinates {
		if e.Blinking(c) {
			t.Fatalf("cell %v highlighted after reset", c)
		}
	}
}

func TestCelebrationSweepsWholeBoard(t *testing.T) {
	e := newTestEffects(4)
	e.StartCelebration()
	if !e.CelebrationActive() {
		t.Fatal("wave should be active after start")
	}

	lit := make(map[puzzle.Coord]bool)
	for i := 0; i < 200 && e.CelebrationActive(); i++ {
		e.Tick()
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if e.Celebrating(puzzle.At(r, c)) {
					lit[puzzle.At(r, c)] = true
				}
			}
		}
	}

	if e.CelebrationActive() {
		t.Fatal("wave never finished")
	}
	if len(lit) != 16 {
		t.Errorf("wave lit %d of 16 cells", len(lit))
	}
	if e.Celebrating(puzzle.At(0, 0)) {
		t.Error("cells should stop glowing once the wave completes")
	}
}
