package wordsearch

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCelebrating GameStateType = "celebrating"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	GridSize     int
	Letters      string // grid contents in row-major order
	WordsTotal   int
	WordsFound   int
	Score        int
	HintsUsed    int
	SelectionLen int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.celebrating:
		state = StateCelebrating
	}

	var letters []rune
	size := g.puz.Grid.Size()
	for r := 0; r < size; r++ {
		letters = append(letters, g.puz.Grid[r]...)
	}

	return Snapshot{
		Tick:         g.tick,
		GridSize:     size,
		Letters:      string(letters),
		WordsTotal:   len(g.puz.Phrases),
		WordsFound:   len(g.found),
		Score:        g.score,
		HintsUsed:    g.hintsUsed,
		SelectionLen: len(g.selector.Path()),
		State:        state,
	}
}
