package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordgrid/internal/config"
	"github.com/vovakirdan/wordgrid/internal/core"
	"github.com/vovakirdan/wordgrid/internal/games/crossword"
	"github.com/vovakirdan/wordgrid/internal/games/wordsearch"
	"github.com/vovakirdan/wordgrid/internal/platform/tui"
	"github.com/vovakirdan/wordgrid/internal/puzzle"
	"github.com/vovakirdan/wordgrid/internal/registry"
	"github.com/vovakirdan/wordgrid/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPack       string
	flagSize       int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle.

Word search controls:
  Mouse drag   - Select a word in the grid
  H/?          - Hint (costs points)
  P/Esc        - Pause
  R            - Restart (after the puzzle ends)
  Q/Ctrl+C     - Quit

Crossword controls:
  Letters      - Fill the current cell
  Arrows       - Move the cursor
  Tab          - Switch between across and down
  Backspace    - Erase
  ?            - Reveal the current letter (costs points)
  Ctrl+P       - Pause, Ctrl+R - Restart, Ctrl+C - Quit

Difficulty presets:
  easy   - Small grid, few words
  normal - Medium grid
  hard   - Large grid, many words

Examples:
  wordgrid play wordsearch
  wordgrid play wordsearch --difficulty hard --pack kitchen
  wordgrid play crossword --difficulty easy
  wordgrid play wordsearch --config ./my-wordsearch.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Word pack to draw words from")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board side length in cells (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wordgrid list' to see available puzzles.")
		os.Exit(1)
	}

	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}

	if flagPack != "" {
		if _, err := puzzle.LoadPack(flagPack); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'wordgrid packs' to see available packs.")
			os.Exit(1)
		}
	}

	// Create runtime config, starting from defaults and fitting the terminal
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Set config path, difficulty and pack for games before creation
	switch gameID {
	case "wordsearch":
		wordsearch.SetConfigPath(flagConfig)
		wordsearch.SetDifficultyPreset(flagDifficulty)
		wordsearch.SetPack(flagPack)
		wordsearch.SetSize(flagSize)
	case "crossword":
		crossword.SetConfigPath(flagConfig)
		crossword.SetDifficultyPreset(flagDifficulty)
		crossword.SetPack(flagPack)
		crossword.SetSize(flagSize)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
