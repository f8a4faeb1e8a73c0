package crossword

import (
	"testing"

	"github.com/vovakirdan/wordgrid/internal/core"
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

// newTestGame builds a game around a tiny fixed crossword: CAT across the top
// row crossing COW down the first column.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())

	grid := puzzle.NewGrid(5)
	grid[0][0], grid[0][1], grid[0][2] = 'C', 'A', 'T'
	grid[1][0], grid[2][0] = 'O', 'W'

	g.puz = &puzzle.Puzzle{
		Grid: grid,
		Phrases: []puzzle.Phrase{
			{
				Text:        "CAT",
				Coordinates: []puzzle.Coord{puzzle.At(0, 0), puzzle.At(0, 1), puzzle.At(0, 2)},
				Direction:   puzzle.Across,
				Number:      1,
				Clue:        "feline",
			},
			{
				Text:        "COW",
				Coordinates: []puzzle.Coord{puzzle.At(0, 0), puzzle.At(1, 0), puzzle.At(2, 0)},
				Direction:   puzzle.Down,
				Number:      1,
				Clue:        "bovine",
			},
		},
	}
	g.entered = make(map[puzzle.Coord]rune)
	g.revealed = make(map[puzzle.Coord]bool)
	g.solved = make(map[string]bool)
	g.solvedCells = make(map[puzzle.Coord]bool)
	g.effects.Reset(5)
	g.fitLayout()
	g.cursor = puzzle.At(0, 0)
	g.typingDir = puzzle.Across
	return g
}

func typeWord(g *Game, word string) {
	for _, r := range word {
		in := core.NewInputFrame()
		in.Type(r)
		g.Step(in)
	}
}

func TestResetDeterministic(t *testing.T) {
	g1 := New()
	g2 := New()
	g1.Reset(testConfig())
	g2.Reset(testConfig())

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.WordsTotal != s2.WordsTotal || s1.GridSize != s2.GridSize {
		t.Error("same seed should generate identical crosswords")
	}
	if s1.WordsTotal == 0 {
		t.Error("generated crossword should place at least one word")
	}
}

func TestTypingSolvesWord(t *testing.T) {
	g := newTestGame(t)

	typeWord(g, "cat")

	if !g.solved["CAT"] {
		t.Fatal("typing the answer should solve the clue")
	}
	if g.score != 3*g.cfg.Scoring.LetterPoints {
		t.Errorf("score = %d, expected %d", g.score, 3*g.cfg.Scoring.LetterPoints)
	}
	// Cursor clamps at the word's last cell.
	if g.cursor != puzzle.At(0, 2) {
		t.Errorf("cursor = %v, expected (0,2)", g.cursor)
	}
}

func TestWrongAnswerNotSolved(t *testing.T) {
	g := newTestGame(t)

	typeWord(g, "car")
	if g.solved["CAT"] {
		t.Error("wrong answer should not solve the clue")
	}
	if g.score != 0 {
		t.Errorf("wrong answer scored %d points", g.score)
	}

	// Correcting the last letter solves it.
	typeWord(g, "t")
	if !g.solved["CAT"] {
		t.Error("correcting the wrong letter should solve the clue")
	}
}

func TestCrossingLetterShared(t *testing.T) {
	g := newTestGame(t)

	typeWord(g, "cat")

	// The C at (0,0) also belongs to COW; typing the rest completes it.
	g.cursor = puzzle.At(1, 0)
	g.typingDir = puzzle.Down
	typeWord(g, "ow")

	if !g.solved["COW"] {
		t.Error("crossing letter should count for both words")
	}
	if !g.won {
		t.Error("solving every word should win the game")
	}
}

func TestToggleDirection(t *testing.T) {
	g := newTestGame(t)

	// (0,0) has words both ways.
	in := core.NewInputFrame()
	in.Set(core.ActionToggleDir)
	g.Step(in)
	if g.typingDir != puzzle.Down {
		t.Errorf("toggle at a crossing should switch to down, got %v", g.typingDir)
	}

	// (0,1) only has the across word; toggle must not strand the cursor.
	g.cursor = puzzle.At(0, 1)
	g.typingDir = puzzle.Across
	g.Step(in.Clone())
	if g.typingDir != puzzle.Across {
		t.Error("toggle should be refused when no crossing word exists")
	}
}

func TestCursorMovementSkipsBlocked(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.cursor != puzzle.At(0, 1) {
		t.Errorf("cursor = %v, expected (0,1)", g.cursor)
	}

	// No open cell below (0,1); cursor stays.
	in = core.NewInputFrame()
	in.Set(core.ActionDown)
	g.Step(in)
	if g.cursor != puzzle.At(0, 1) {
		t.Errorf("cursor moved into blocked cells: %v", g.cursor)
	}

	// Down from (0,0) walks the COW column.
	g.cursor = puzzle.At(0, 0)
	g.Step(in.Clone())
	if g.cursor != puzzle.At(1, 0) {
		t.Errorf("cursor = %v, expected (1,0)", g.cursor)
	}
}

func TestEraseStepsBack(t *testing.T) {
	g := newTestGame(t)

	typeWord(g, "ca")
	if g.cursor != puzzle.At(0, 2) {
		t.Fatalf("cursor = %v after typing two letters", g.cursor)
	}

	// Cursor cell is empty, so erase steps back and clears the A.
	in := core.NewInputFrame()
	in.Set(core.ActionErase)
	g.Step(in)
	if g.cursor != puzzle.At(0, 1) {
		t.Errorf("erase should step back, cursor = %v", g.cursor)
	}
	if _, ok := g.entered[puzzle.At(0, 1)]; ok {
		t.Error("erase should clear the previous letter")
	}
}

func TestRevealLetterHint(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	g.Step(in)

	if g.entered[puzzle.At(0, 0)] != 'C' {
		t.Error("hint should fill in the correct letter")
	}
	if !g.revealed[puzzle.At(0, 0)] {
		t.Error("revealed cell should be locked")
	}
	if g.hintsUsed != 1 {
		t.Errorf("hintsUsed = %d, expected 1", g.hintsUsed)
	}

	// A revealed cell cannot be erased or overwritten.
	in = core.NewInputFrame()
	in.Set(core.ActionErase)
	g.Step(in)
	if g.entered[puzzle.At(0, 0)] != 'C' {
		t.Error("revealed letter should survive erase")
	}

	g.cursor = puzzle.At(0, 0)
	typeWord(g, "x")
	if g.entered[puzzle.At(0, 0)] != 'C' {
		t.Error("revealed letter should survive typing")
	}
}

func TestRevealLimitPerWord(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	g.Step(in)

	// One reveal per word: a second reveal in the same word is refused.
	g.cursor = puzzle.At(0, 1)
	g.Step(in.Clone())

	if g.hintsUsed != 1 {
		t.Errorf("hintsUsed = %d, expected the per-word limit of 1", g.hintsUsed)
	}
	if _, ok := g.entered[puzzle.At(0, 1)]; ok {
		t.Error("second reveal in the same word should do nothing")
	}
}

func TestPointerMovesCursor(t *testing.T) {
	g := newTestGame(t)

	x := g.metrics.OriginX + 0*g.metrics.CellW + g.metrics.CellW/2
	y := g.metrics.OriginY + 1*g.metrics.CellH + g.metrics.CellH/2
	in := core.NewInputFrame()
	in.Point(core.PointerEvent{Kind: core.PointerPress, X: x, Y: y})
	g.Step(in)
	if g.cursor != puzzle.At(1, 0) {
		t.Errorf("click should move the cursor, got %v", g.cursor)
	}

	// Clicking the cursor's own cell toggles direction.
	g.cursor = puzzle.At(0, 0)
	g.typingDir = puzzle.Across
	x = g.metrics.OriginX + g.metrics.CellW/2
	y = g.metrics.OriginY + g.metrics.CellH/2
	in = core.NewInputFrame()
	in.Point(core.PointerEvent{Kind: core.PointerPress, X: x, Y: y})
	g.Step(in)
	if g.typingDir != puzzle.Down {
		t.Error("clicking the cursor's cell should toggle direction")
	}
}

func TestWinCelebrationThenGameOver(t *testing.T) {
	g := newTestGame(t)

	typeWord(g, "cat")
	g.cursor = puzzle.At(1, 0)
	g.typingDir = puzzle.Down
	typeWord(g, "ow")

	if !g.won || g.gameOver {
		t.Fatal("win should start the celebration before game over")
	}
	if !g.effects.CelebrationActive() {
		t.Error("celebration wave should be running")
	}

	empty := core.NewInputFrame()
	for i := 0; i < 300 && !g.gameOver; i++ {
		g.Step(empty)
	}
	if !g.gameOver {
		t.Error("game should end once the celebration completes")
	}
}

func TestSolvedWordBlinks(t *testing.T) {
	g := newTestGame(t)
	typeWord(g, "cat")

	if !g.effects.Blinking(puzzle.At(0, 1)) {
		t.Error("solving a word should blink its cells")
	}

	// Blink expires on its own (1.5s at 60 ticks/s).
	empty := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(empty)
	}
	if g.effects.Blinking(puzzle.At(0, 1)) {
		t.Error("blink should expire")
	}
}
