package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered runner mode with its recorded runs and best score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	// Stats are optional; the list works without a database
	var stats map[string]*storage.ModeStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.AllModeStats()
		store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range modes {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %5s  %5s\n", maxIDLen, "ID", maxTitleLen, "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-*s  %5s  %5s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "----")

	for _, g := range modes {
		runs, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			runs, best = st.Runs, st.BestScore
		}
		fmt.Printf("  %-*s  %-*s  %5d  %5d\n", maxIDLen, g.ID, maxTitleLen, g.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' to start running.")
}
