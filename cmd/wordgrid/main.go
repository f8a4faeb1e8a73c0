// wordgrid is a terminal word-puzzle platform: word search and crossword.
//
// Usage:
//
//	wordgrid list              - List available puzzles
//	wordgrid play <game>       - Play a puzzle
//	wordgrid menu              - Start menu to pick puzzles interactively
//	wordgrid serve             - Start SSH server for remote play
//	wordgrid scores <game>     - Show best results for a puzzle
//	wordgrid packs             - List available word packs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible puzzles
//	--db <path>     - Set database path (default: ~/.wordgrid/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/wordgrid/internal/games/crossword"
	_ "github.com/vovakirdan/wordgrid/internal/games/wordsearch"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordgrid",
	Short: "Wordgrid - Word puzzles in your terminal",
	Long: `Wordgrid is a terminal word-puzzle platform. Drag across a letter
grid to find hidden words, or fill crosswords with the keyboard.

Available commands:
  list     - Show all available puzzles
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  serve    - Start SSH server for remote play
  scores   - View best results
  packs    - List available word packs

Examples:
  wordgrid list
  wordgrid play wordsearch
  wordgrid play crossword --difficulty hard
  wordgrid menu
  wordgrid serve --ssh :2222
  wordgrid scores wordsearch`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordgrid/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(packsCmd)
}
