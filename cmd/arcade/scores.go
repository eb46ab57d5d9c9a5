package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Conner685/Comp2522TermProject/internal/registry"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, followed by
totals across every saved session.

Examples:
  arcade scores vortex
  arcade scores vortex --store flat
  arcade scores vortex --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every saved score for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s\n", info.Title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := "-"
		if !entry.CreatedAt.IsZero() {
			dateStr = entry.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	stats, err := store.GameStats(gameID)
	if err != nil {
		return
	}
	fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
