// Package wordsearch implements the classic word-search game: every cell is a
// letter, hidden words run in straight lines in any of eight directions, and
// the player finds them by dragging across the grid.
package wordsearch

import (
	"math/rand"

	"github.com/vovakirdan/wordgrid/internal/config"
	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/engine"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
	"github.com/vovakirdan/wordgrid/internal/registry"
)

// Game implements the Word Search game.
type Game struct {
	cfg       config.WordsearchConfig
	rng       *rand.Rand
	tick      uint64
	score     int
	hintsUsed int

	// Puzzle state
	puz        *puzzle.Puzzle
	found      map[string]bool
	foundCells map[puzzle.Coord]bool
	hintWord   string // current progressive-hint target

	// Interaction
	metrics  engine.Metrics
	selector *engine.Selector
	effects  *engine.Effects

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Resize debounce: pending dimensions applied after the counter drains.
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

// New creates a new Word Search game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("wordsearch", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wordsearch"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Word Search"
}

// Reset initializes/restarts the game with a freshly generated puzzle.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadWordsearch(configPath)
	if err != nil {
		cfg = config.DefaultWordsearchConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWordsearchPreset(&cfg, config.DifficultyPreset(difficultyPreset))
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
	g.found = make(map[string]bool)
	g.foundCells = make(map[puzzle.Coord]bool)
	g.hintWord = ""
	g.won = false
	g.gameOver = false
	g.paused = false
	g.celebrating = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tickRate = rc.TickRate
	g.resizeTicks = 0

	g.puz = puzzle.Generate(g.pickWords(), cfg.Board.Size, rc.Seed)

	g.effects = engine.NewEffects(cfg.Board.Size, rc.TickRate, g.rng)
	g.effects.SetBlinkSeconds(cfg.Hints.BlinkSecs)
	g.fitLayout()
	g.selector = engine.NewSelector(g.metrics, g.puz.Phrases)
	g.selector.OnFound = g.onWordFound
}

// pickWords shuffles the pack and takes the configured word count.
func (g *Game) pickWords() []string {
	pack, err := puzzle.LoadPack(g.cfg.Words.Pack)
	if err != nil {
		pack, _ = puzzle.LoadPack("animals")
	}
	words := pack.Words()
	g.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if n := g.cfg.Words.Count; n > 0 && n < len(words) {
		words = words[:n]
	}
	return words
}

// fitLayout recomputes board metrics for the current screen size.
func (g *Game) fitLayout() {
	size := g.puz.Grid.Size()
	g.tooSmall = g.screenW < size*3 || g.screenH < size+8
	g.metrics = engine.FitMetrics(g.screenW, g.screenH-wordListHeight(g.puz), size)
	if g.selector != nil {
		g.selector.SetMetrics(g.metrics)
	}
}

// Resize schedules a layout refit. The refit is debounced so a drag-resize
// storm settles into one recompute; any gesture in flight is abandoned
// immediately since its geometry is already stale.
func (g *Game) Resize(w, h int) {
	g.resizeW = w
	g.resizeH = h
	debounce := g.cfg.Timing.ResizeDebounceMs * g.tickRate / 1000
	if debounce < 1 {
		debounce = 1
	}
	g.resizeTicks = debounce
	if g.selector != nil {
		g.selector.Cancel()
	}
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
		if g.paused {
			g.selector.Cancel()
		}
	}

	// Drain the resize debounce even while paused; layout must match screen.
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

	// The celebration wave runs out before the game is declared over.
	if g.won {
		if g.celebrating && !g.effects.CelebrationActive() {
			g.celebrating = false
			g.gameOver = true
		}
		return core.StepResult{State: g.State()}
	}

	for _, e := range input.Pointer {
		switch e.Kind {
		case core.PointerPress:
			g.selector.PointerDown(e.X, e.Y)
		case core.PointerMove:
			g.selector.PointerMove(e.X, e.Y)
		case core.PointerRelease:
			g.selector.PointerUp()
		}
	}

	if input.Has(core.ActionHint) {
		g.advanceHint()
	}

	return core.StepResult{State: g.State()}
}

// onWordFound handles a committed match. Re-selecting an already-found word
// just blinks it again; a new find scores, records the cells, and clears any
// hint that pointed at it.
func (g *Game) onWordFound(text string) {
	p := g.puz.PhraseByText(text)
	if p == nil {
		return
	}
	if g.found[text] {
		g.effects.BlinkPhrase(*p)
		return
	}

	g.found[text] = true
	for _, c := range p.Coordinates {
		g.foundCells[c] = true
	}
	g.score += len([]rune(text)) * g.cfg.Scoring.LetterPoints
	g.effects.BlinkPhrase(*p)

	if g.hintWord == text {
		g.hintWord = ""
		g.effects.ClearHints()
		g.effects.BlinkPhrase(*p)
	}

	if len(g.found) == len(g.puz.Phrases) {
		g.won = true
		g.celebrating = true
		g.selector.Cancel()
		g.effects.StartCelebration()
	}
}

// advanceHint steps the progressive hint for the current target word,
// picking a random unfound word when there is no target yet.
func (g *Game) advanceHint() {
	if g.hintWord == "" || g.found[g.hintWord] {
		g.hintWord = g.pickHintWord()
		if g.hintWord == "" {
			return
		}
	}
	p := g.puz.PhraseByText(g.hintWord)
	if p == nil {
		return
	}
	if limit := g.cfg.Hints.MaxPerWord; limit > 0 && g.effects.HintLevel(g.hintWord) >= limit {
		return
	}
	g.effects.AdvanceHint(*p)
	g.hintsUsed++
	g.score -= g.cfg.Scoring.HintPenalty
	if g.score < 0 {
		g.score = 0
	}
}

// pickHintWord selects a random word not yet found.
func (g *Game) pickHintWord() string {
	var remaining []string
	for _, p := range g.puz.Phrases {
		if !g.found[p.Text] {
			remaining = append(remaining, p.Text)
		}
	}
	if len(remaining) == 0 {
		return ""
	}
	return remaining[g.rng.Intn(len(remaining))]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		WordsFound: len(g.found),
		WordsTotal: len(g.puz.Phrases),
		HintsUsed:  g.hintsUsed,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}

// wordListHeight is the vertical space the word list needs below the board.
func wordListHeight(p *puzzle.Puzzle) int {
	if p == nil {
		return 0
	}
	return (len(p.Phrases) + wordsPerRow - 1) / wordsPerRow
}
