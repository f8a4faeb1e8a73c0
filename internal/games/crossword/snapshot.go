package crossword

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
	Tick        uint64
	GridSize    int
	WordsTotal  int
	WordsSolved int
	Entered     int // cells the player has filled
	Score       int
	HintsUsed   int
	CursorRow   int
	CursorCol   int
	State       GameStateType
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

	return Snapshot{
		Tick:        g.tick,
		GridSize:    g.puz.Grid.Size(),
		WordsTotal:  len(g.puz.Phrases),
		WordsSolved: len(g.solved),
		Entered:     len(g.entered),
		Score:       g.score,
		HintsUsed:   g.hintsUsed,
		CursorRow:   g.cursor.Row,
		CursorCol:   g.cursor.Col,
		State:       state,
	}
}
