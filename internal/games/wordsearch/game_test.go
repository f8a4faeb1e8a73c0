package wordsearch

import (
	"testing"

	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/engine"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 60,
		Seed:     12345,
	}
}

// newTestGame builds a game around a small fixed puzzle so tests can drag
// with known coordinates.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())

	grid := puzzle.Grid{
		{'C', 'A', 'T'},
		{'X', 'O', 'Y'},
		{'D', 'O', 'G'},
	}
	g.puz = &puzzle.Puzzle{
		Grid: grid,
		Phrases: []puzzle.Phrase{
			{
				Text:        "CAT",
				Coordinates: []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2)},
				Direction:   puzzle.Horizontal,
			},
			{
				Text:        "DOG",
				Coordinates: []puzzle.Coord{puzzle.At(2, 0), puzzle.At(2, 1), puzzle.At(2, 2)},
				Direction:   puzzle.Horizontal,
			},
		},
	}
	g.found = make(map[string]bool)
	g.foundCells = make(map[puzzle.Coord]bool)
	g.effects.Reset(3)
	g.fitLayout()
	g.selector = engine.NewSelector(g.metrics, g.puz.Phrases)
	g.selector.OnFound = g.onWordFound
	return g
}

// cellXY returns the screen position of a cell's center.
func cellXY(g *Game, row, col int) (int, int) {
	x := g.metrics.OriginX + col*g.metrics.CellW + g.metrics.CellW/2
	y := g.metrics.OriginY + row*g.metrics.CellH + g.metrics.CellH/2
	return x, y
}

// drag presses at the first cell, moves through the rest, and releases.
func drag(g *Game, cells ...puzzle.Coord) {
	in := core.NewInputFrame()
	for i, c := range cells {
		x, y := cellXY(g, c.Row, c.Col)
		if i == 0 {
			in.Point(core.PointerEvent{Kind: core.PointerPress, X: x, Y: y})
		} else {
			in.Point(core.PointerEvent{Kind: core.PointerMove, X: x, Y: y})
		}
	}
	in.Point(core.PointerEvent{Kind: core.PointerRelease})
	g.Step(in)
}

func TestResetDeterministic(t *testing.T) {
	g1 := New()
	g2 := New()
	g1.Reset(testConfig())
	g2.Reset(testConfig())

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Letters != s2.Letters {
		t.Error("same seed should generate identical grids")
	}
	if s1.WordsTotal != s2.WordsTotal {
		t.Errorf("word counts differ: %d vs %d", s1.WordsTotal, s2.WordsTotal)
	}

	g3 := New()
	cfg := testConfig()
	cfg.Seed = 54321
	g3.Reset(cfg)
	if g3.Snapshot().Letters == s1.Letters {
		t.Error("different seeds should generate different grids")
	}
}

func TestDragFindsWord(t *testing.T) {
	g := newTestGame(t)

	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))

	if !g.found["CAT"] {
		t.Fatal("dragging across CAT should find it")
	}
	if g.score != 3*g.cfg.Scoring.LetterPoints {
		t.Errorf("score = %d, expected %d", g.score, 3*g.cfg.Scoring.LetterPoints)
	}
	if !g.foundCells[puzzle.At(0, 1)] {
		t.Error("found word's cells should be recorded")
	}
}

func TestDragBackwardFindsWord(t *testing.T) {
	g := newTestGame(t)

	drag(g, puzzle.At(2, 2), puzzle.At(2, 1), puzzle.At(2, 0))
	if !g.found["DOG"] {
		t.Error("dragging backward across DOG should find it")
	}
}

func TestRefindingWordDoesNotRescore(t *testing.T) {
	g := newTestGame(t)

	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))
	scoreAfterFirst := g.score

	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))
	if g.score != scoreAfterFirst {
		t.Errorf("re-finding a word changed the score: %d -> %d", scoreAfterFirst, g.score)
	}
	if len(g.found) != 1 {
		t.Errorf("found count = %d, expected 1", len(g.found))
	}
}

func TestHintCostsPoints(t *testing.T) {
	g := newTestGame(t)
	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))
	scoreBefore := g.score

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	g.Step(in)

	if g.hintsUsed != 1 {
		t.Errorf("hintsUsed = %d, expected 1", g.hintsUsed)
	}
	if g.score != scoreBefore-g.cfg.Scoring.HintPenalty {
		t.Errorf("score = %d, expected %d", g.score, scoreBefore-g.cfg.Scoring.HintPenalty)
	}
	if g.hintWord != "DOG" {
		t.Errorf("hint should target the only remaining word, got %q", g.hintWord)
	}
}

func TestHintScoreNeverNegative(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	for i := 0; i < 10; i++ {
		g.Step(in.Clone())
	}
	if g.score < 0 {
		t.Errorf("score went negative: %d", g.score)
	}
}

func TestHintStopsAtFullReveal(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	for i := 0; i < 5; i++ {
		g.Step(in.Clone())
	}

	if g.hintsUsed != g.cfg.Hints.MaxPerWord {
		t.Errorf("hintsUsed = %d, expected cap of %d", g.hintsUsed, g.cfg.Hints.MaxPerWord)
	}
	if g.effects.HintLevel(g.hintWord) != engine.HintLevelFull {
		t.Errorf("hint should be pinned at full reveal, got level %d", g.effects.HintLevel(g.hintWord))
	}
}

func TestFindingHintedWordClearsHint(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	g.Step(in)
	target := g.hintWord
	if target == "" {
		t.Fatal("hint should pick a target")
	}

	p := g.puz.PhraseByText(target)
	drag(g, p.Coordinates[0], p.Coordinates[1], p.Coordinates[2])

	if g.hintWord != "" {
		t.Error("finding the hinted word should clear the hint target")
	}
	if g.effects.HintLevel(target) != engine.HintLevelNone {
		t.Error("hint reveals should be cleared")
	}
}

func TestWinRunsCelebrationThenGameOver(t *testing.T) {
	g := newTestGame(t)

	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))
	drag(g, puzzle.At(2, 0), puzzle.At(2, 1), puzzle.At(2, 2))

	if !g.won {
		t.Fatal("finding every word should win the game")
	}
	if g.gameOver {
		t.Fatal("game over should wait for the celebration to finish")
	}

	empty := core.NewInputFrame()
	for i := 0; i < 300 && !g.gameOver; i++ {
		g.Step(empty)
	}
	if !g.gameOver {
		t.Error("game should end once the celebration completes")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))
	drag(g, puzzle.At(2, 0), puzzle.At(2, 1), puzzle.At(2, 2))

	empty := core.NewInputFrame()
	for i := 0; i < 300 && !g.gameOver; i++ {
		g.Step(empty)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.gameOver || g.won {
		t.Error("restart should start a fresh game")
	}
	if len(g.found) != 0 || g.score != 0 {
		t.Error("restart should clear progress")
	}
}

func TestResizeDebounce(t *testing.T) {
	g := newTestGame(t)
	before := g.metrics

	g.Resize(200, 60)
	if g.metrics != before {
		t.Fatal("layout should not change until the debounce drains")
	}

	empty := core.NewInputFrame()
	debounce := g.cfg.Timing.ResizeDebounceMs * g.tickRate / 1000
	for i := 0; i < debounce; i++ {
		g.Step(empty)
	}
	if g.screenW != 200 || g.screenH != 60 {
		t.Error("screen dimensions should be applied after the debounce")
	}
	if g.metrics == before {
		t.Error("layout should refit for the new screen size")
	}
}

func TestResizeCancelsDrag(t *testing.T) {
	g := newTestGame(t)

	x, y := cellXY(g, 0, 0)
	in := core.NewInputFrame()
	in.Point(core.PointerEvent{Kind: core.PointerPress, X: x, Y: y})
	g.Step(in)
	if !g.selector.Selecting() {
		t.Fatal("press should start a gesture")
	}

	g.Resize(200, 60)
	if g.selector.Selecting() {
		t.Error("resize should abandon the gesture")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.paused {
		t.Fatal("pause action should pause the game")
	}

	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))
	if len(g.found) != 0 {
		t.Error("pointer input should be ignored while paused")
	}

	g.Step(in.Clone())
	if g.paused {
		t.Error("second pause action should unpause")
	}
}

func TestStateReportsProgress(t *testing.T) {
	g := newTestGame(t)
	drag(g, puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2))

	st := g.State()
	if st.WordsFound != 1 || st.WordsTotal != 2 {
		t.Errorf("state progress = %d/%d, expected 1/2", st.WordsFound, st.WordsTotal)
	}
	if st.Score != g.score {
		t.Errorf("state score = %d, expected %d", st.Score, g.score)
	}
}
