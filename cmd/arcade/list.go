package main

import (
	"fmt"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/Conner685/Comp2522TermProject/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-3s  %-*s  %s\n", maxIDLen, "ID", "Key", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-3s  %-*s  %s\n", maxIDLen, "--", "---", maxTitleLen, "-----", "-----------")

	for _, g := range games {
		key := "-"
		if g.Key != 0 {
			key = string(unicode.ToUpper(g.Key))
		}
		fmt.Printf("  %-*s  %-3s  %-*s  %s\n", maxIDLen, g.ID, key, maxTitleLen, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
