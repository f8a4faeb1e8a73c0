// Package crossword implements the crossword game: words cross on a sparse
// grid, the player navigates with a cursor and types letters, and each clue's
// answer is validated against its placement.
package crossword

import (
	"math/rand"
	"unicode"

	"github.com/vovakirdan/wordgrid/internal/config"
	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/engine"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
	"github.com/vovakirdan/wordgrid/internal/registry"
)

// Game implements the Crossword game.
type Game struct {
	cfg       config.CrosswordConfig
	rng       *rand.Rand
	tick      uint64
	score     int
	hintsUsed int

	// Puzzle state
	puz         *puzzle.Puzzle
	entered     map[puzzle.Coord]rune
	revealed    map[puzzle.Coord]bool // hint-revealed cells, cannot be erased
	solved      map[string]bool
	solvedCells map[puzzle.Coord]bool

	// Cursor state
	cursor    puzzle.Coord
	typingDir puzzle.Direction // Across or Down

	// Layout and effects
	metrics engine.Metrics
	effects *engine.Effects

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Resize debounce
	resizeW     int
	resizeH     int
	resizeTicks int

	// Game state flags
	won         bool
	gameOver    bool
	paused      bool
	tooSmall    bool
	celebrating bool
}

// Package-level variables for config/difficulty (set by CLI flags before Reset).
var (
	configPath       string
	difficultyPreset string
	packName         string
	boardSize        int
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetPack overrides the word pack name or path.
func SetPack(pack string) {
	packName = pack
}

// SetSize overrides the board side length; zero keeps the configured size.
func SetSize(size int) {
	boardSize = size
}

// New creates a new Crossword game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("crossword", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "crossword"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Crossword"
}

// AcceptsText marks the game as letter-entry driven; the platform routes
// typed letters to it instead of treating them as shortcuts.
func (g *Game) AcceptsText() bool {
	return true
}

// Reset initializes/restarts the game with a freshly generated crossword.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCrossword(configPath)
	if err != nil {
		cfg = config.DefaultCrosswordConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrosswordPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	if packName != "" {
		cfg.Words.Pack = packName
	}
	if boardSize > 0 {
		cfg.Board.Size = boardSize
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.hintsUsed = 0
	g.entered = make(map[puzzle.Coord]rune)
	g.revealed = make(map[puzzle.Coord]bool)
	g.solved = make(map[string]bool)
	g.solvedCells = make(map[puzzle.Coord]bool)
	g.won = false
	g.gameOver = false
	g.paused = false
	g.celebrating = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tickRate = rc.TickRate
	g.resizeTicks = 0

	g.puz = puzzle.GenerateCrossword(g.pickEntries(), cfg.Board.Size, rc.Seed)
	g.effects = engine.NewEffects(cfg.Board.Size, rc.TickRate, g.rng)
	g.effects.SetBlinkSeconds(cfg.Hints.BlinkSecs)
	g.fitLayout()

	// Start on the first across clue, reading order.
	g.typingDir = puzzle.Across
	if len(g.puz.Phrases) > 0 {
		g.cursor = g.puz.Phrases[0].Coordinates[0]
	}
}

// pickEntries shuffles the pack and takes the configured word count.
func (g *Game) pickEntries() []puzzle.CrosswordEntry {
	pack, err := puzzle.LoadPack(g.cfg.Words.Pack)
	if err != nil {
		pack, _ = puzzle.LoadPack("animals")
	}
	entries := append([]puzzle.CrosswordEntry(nil), pack.Entries...)
	g.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	if n := g.cfg.Words.Count; n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// fitLayout recomputes board metrics for the current screen size.
func (g *Game) fitLayout() {
	size := g.puz.Grid.Size()
	g.tooSmall = g.screenW < size*3 || g.screenH < size+clueReserve
	g.metrics = engine.FitMetrics(g.screenW, g.screenH-clueReserve, size)
}

// Resize schedules a debounced layout refit.
func (g *Game) Resize(w, h int) {
	g.resizeW = w
	g.resizeH = h
	g.resizeTicks = 6 // ~100ms at 60 ticks/s
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.resizeTicks > 0 {
		g.resizeTicks--
		if g.resizeTicks == 0 {
			g.screenW = g.resizeW
			g.screenH = g.resizeH
			g.fitLayout()
		}
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.effects.Tick()

	if g.won {
		if g.celebrating && !g.effects.CelebrationActive() {
			g.celebrating = false
			g.gameOver = true
		}
		return core.StepResult{State: g.State()}
	}

	g.processPointer(input.Pointer)
	g.processActions(input)
	for _, r := range input.Runes {
		g.typeLetter(r)
	}

	return core.StepResult{State: g.State()}
}

// processPointer moves the cursor to a clicked cell; clicking the cursor's
// cell toggles the typing direction, mirroring the Tab key.
func (g *Game) processPointer(events []core.PointerEvent) {
	for _, e := range events {
		if e.Kind != core.PointerPress {
			continue
		}
		cell, ok := g.metrics.CellAt(e.X, e.Y)
		if !ok || !g.isOpen(cell) {
			continue
		}
		if cell == g.cursor {
			g.toggleDirection()
		} else {
			g.cursor = cell
		}
	}
}

// processActions handles cursor movement, direction toggle, erase and hint.
func (g *Game) processActions(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case input.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case input.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case input.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if input.Has(core.ActionToggleDir) {
		g.toggleDirection()
	}
	if input.Has(core.ActionErase) {
		g.eraseCell()
	}
	if input.Has(core.ActionHint) {
		g.revealLetter()
	}
}

// isOpen reports whether the cell is part of any placed word.
func (g *Game) isOpen(c puzzle.Coord) bool {
	return g.puz.Grid.Letter(c) != 0
}

// moveCursor steps the cursor in the given direction, skipping blocked cells
// until the next open one. The cursor stays put when no open cell exists that
// way.
func (g *Game) moveCursor(dr, dc int) {
	next := g.cursor.Add(dr, dc)
	for next.In(g.puz.Grid.Size()) {
		if g.isOpen(next) {
			g.cursor = next
			return
		}
		next = next.Add(dr, dc)
	}
}

// toggleDirection switches between across and down typing, but only when the
// cursor's cell actually has a word in the other direction.
func (g *Game) toggleDirection() {
	other := puzzle.Across
	if g.typingDir == puzzle.Across {
		other = puzzle.Down
	}
	if g.phraseAt(g.cursor, other) != nil {
		g.typingDir = other
	}
}

// phraseAt returns the phrase running through the cell in the given
// direction, or nil.
func (g *Game) phraseAt(c puzzle.Coord, dir puzzle.Direction) *puzzle.Phrase {
	for i := range g.puz.Phrases {
		p := &g.puz.Phrases[i]
		if p.Direction != dir {
			continue
		}
		for _, pc := range p.Coordinates {
			if pc == c {
				return p
			}
		}
	}
	return nil
}

// activePhrase is the word the cursor is typing into right now. Falls back to
// the crossing word when the cell has no word in the typing direction.
func (g *Game) activePhrase() *puzzle.Phrase {
	if p := g.phraseAt(g.cursor, g.typingDir); p != nil {
		return p
	}
	other := puzzle.Across
	if g.typingDir == puzzle.Across {
		other = puzzle.Down
	}
	return g.phraseAt(g.cursor, other)
}

// typeLetter writes a letter at the cursor and advances along the active
// word. Hint-revealed cells are locked and skipped over.
func (g *Game) typeLetter(r rune) {
	if !unicode.IsLetter(r) || !g.isOpen(g.cursor) {
		return
	}
	if !g.revealed[g.cursor] {
		g.entered[g.cursor] = unicode.ToUpper(r)
		g.checkSolved(g.cursor)
	}
	g.advanceCursor(1)
}

// eraseCell clears the cursor's letter, or steps back onto the previous
// letter when the cell is already empty. Revealed cells cannot be erased.
func (g *Game) eraseCell() {
	if _, ok := g.entered[g.cursor]; ok && !g.revealed[g.cursor] {
		delete(g.entered, g.cursor)
		return
	}
	g.advanceCursor(-1)
	if !g.revealed[g.cursor] {
		delete(g.entered, g.cursor)
	}
}

// advanceCursor moves the cursor along the active word by delta positions,
// clamped to the word's ends.
func (g *Game) advanceCursor(delta int) {
	p := g.activePhrase()
	if p == nil {
		return
	}
	for i, c := range p.Coordinates {
		if c == g.cursor {
			next := core.Clamp(i+delta, 0, len(p.Coordinates)-1)
			g.cursor = p.Coordinates[next]
			return
		}
	}
}

// revealLetter fills in the correct letter at the cursor and locks the cell.
// Costs points; revealing an already-correct cell is a no-op, and each word
// only allows a limited number of reveals.
func (g *Game) revealLetter() {
	if !g.isOpen(g.cursor) || g.revealed[g.cursor] {
		return
	}
	answer := g.puz.Grid.Letter(g.cursor)
	if g.entered[g.cursor] == answer {
		return
	}
	if limit := g.cfg.Hints.MaxPerWord; limit > 0 {
		if p := g.activePhrase(); p != nil && g.revealCount(p) >= limit {
			return
		}
	}
	g.entered[g.cursor] = answer
	g.revealed[g.cursor] = true
	g.hintsUsed++
	g.score -= g.cfg.Scoring.HintPenalty
	if g.score < 0 {
		g.score = 0
	}
	g.checkSolved(g.cursor)
}

// revealCount returns how many of the word's cells were hint-revealed.
func (g *Game) revealCount(p *puzzle.Phrase) int {
	n := 0
	for _, c := range p.Coordinates {
		if g.revealed[c] {
			n++
		}
	}
	return n
}

// checkSolved validates every unsolved word through the changed cell. A word
// whose cells all hold the right letters is scored and blinked; solving the
// last one starts the celebration.
func (g *Game) checkSolved(changed puzzle.Coord) {
	for i := range g.puz.Phrases {
		p := &g.puz.Phrases[i]
		if g.solved[p.Text] || !containsCoord(p.Coordinates, changed) {
			continue
		}
		if !g.phraseCorrect(p) {
			continue
		}
		g.solved[p.Text] = true
		for _, c := range p.Coordinates {
			g.solvedCells[c] = true
		}
		g.score += len([]rune(p.Text)) * g.cfg.Scoring.LetterPoints
		g.effects.BlinkPhrase(*p)
	}

	if len(g.solved) == len(g.puz.Phrases) && len(g.puz.Phrases) > 0 {
		g.won = true
		g.celebrating = true
		g.effects.StartCelebration()
	}
}

// phraseCorrect reports whether every cell of the word holds its answer.
func (g *Game) phraseCorrect(p *puzzle.Phrase) bool {
	for _, c := range p.Coordinates {
		if g.entered[c] != g.puz.Grid.Letter(c) {
			return false
		}
	}
	return true
}

func containsCoord(coords []puzzle.Coord, c puzzle.Coord) bool {
	for _, pc := range coords {
		if pc == c {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		WordsFound: len(g.solved),
		WordsTotal: len(g.puz.Phrases),
		HintsUsed:  g.hintsUsed,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}
