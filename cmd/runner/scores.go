package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresAll    bool
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs for the specified mode, with aggregate stats.

Examples:
  runner scores classic
  runner scores double --all
  runner scores classic --player alice
  runner scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's runs")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	var runs []storage.RunRecord
	switch {
	case flagScoresPlayer != "":
		runs, err = store.PlayerRuns(modeID, flagScoresPlayer, 10)
	case flagScoresAll:
		runs, err = store.AllRuns(modeID)
	default:
		runs, err = store.TopRuns(modeID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagScoresPlayer != "" {
		fmt.Printf("Best Runs - %s (%s)\n", title, flagScoresPlayer)
	} else {
		fmt.Printf("Best Runs - %s\n", title)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to set the first score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %s\n", i+1, r.Score, r.Player, dateStr)
	}

	fmt.Println()
	if stats, err := store.ModeStats(modeID); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, stats.BestScore, stats.AvgScore)
	}
	if flagScoresPlayer != "" {
		if best, err := store.PlayerBest(modeID, flagScoresPlayer); err == nil {
			fmt.Printf("Best for %s: %d\n", flagScoresPlayer, best)
		}
	}
}
