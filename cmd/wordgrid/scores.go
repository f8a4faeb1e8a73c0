package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordgrid/internal/registry"
	"github.com/vovakirdan/wordgrid/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best results",
	Long: `Display the top 10 results for the specified puzzle, or a summary
across all puzzles when no puzzle is given.

Examples:
  wordgrid scores
  wordgrid scores wordsearch
  wordgrid scores crossword`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wordgrid list' to see available puzzles.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top results
	results, err := store.TopResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	// Display results
	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordgrid play %s' to set the first best score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-5s  %-6s  %s\n", "Rank", "Score", "Words", "Hints", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	// Print results
	for i, r := range results {
		words := fmt.Sprintf("%d/%d", r.WordsFound, r.WordsTotal)
		duration := fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-7s  %-5d  %-6s  %s\n", i+1, r.Score, words, r.HintsUsed, duration, dateStr)
	}

	// Show aggregate stats
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d  Best: %d  Average: %.1f  Words found: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.WordsFound)
	}
}

// runScoresSummary prints per-game aggregate stats across all puzzles.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Results summary")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %-6s  %s\n", "Game", "Played", "Best", "Average", "Words", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %-6s  %s\n", "----", "------", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		gs := stats[id]
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %-6d  %s\n",
			gs.GameID, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.WordsFound,
			gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
