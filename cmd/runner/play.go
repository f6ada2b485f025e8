package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Start running",
	Long: `Start an endless run in the specified mode.

Controls:
  Space/Up/W  - Jump (press again in the air in double mode)
  P/Esc       - Pause
  R           - Restart the run
  Ctrl+S      - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C    - Quit

Falling off the bottom ends the run and starts a new one; every finished
run is recorded.

Difficulty options:
  easy   - Slower scrolling, wider platforms, shorter gaps
  normal - The configured values
  hard   - Faster scrolling, narrower platforms, longer gaps

Examples:
  runner play classic
  runner play double --difficulty hard
  runner play classic --config ./my-runner.yaml
  runner play classic --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available modes.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	closeLog := setupTUILogging()
	runErr := tui.Run(game, store, cfg)
	closeLog()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
