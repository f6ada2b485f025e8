// runner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner list              - List available modes
//	runner play <mode>       - Start running
//	runner menu              - Pick a mode interactively
//	runner serve             - Start SSH server for remote play
//	runner scores <mode>     - Show best runs for a mode
//	runner config [mode]     - Print the effective (or default) config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible platform layouts
//	--db <path>           - Set database path (default: ~/.runner/scores.db)
//	--config <path>       - Custom runner config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "TUI Runner - an endless runner in your terminal",
	Long: `TUI Runner streams platforms at you from the right; jump the gaps,
and if you fall the run starts over.

Available commands:
  list     - Show all modes
  play     - Start a run in a specific mode
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the effective config

Examples:
  runner list
  runner play classic
  runner play double --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner scores classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd == configCmd {
			// config reports load errors itself, and --defaults must work
			// even when the file on disk is broken.
			return setConfigFlags()
		}
		return applyConfigFlags()
	},
}

// setConfigFlags hands --config and --difficulty to the runner package.
func setConfigFlags() error {
	if flagDifficulty != "" && config.ParseDifficulty(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	return nil
}

// applyConfigFlags sets the config flags and resolves every mode's config,
// so an invalid file fails the command before any screen is drawn.
func applyConfigFlags() error {
	if err := setConfigFlags(); err != nil {
		return err
	}
	if err := runner.CheckConfig(); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger for w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// setupTUILogging routes game and TUI diagnostics to ~/.runner/runner.log
// while the alternate screen owns the terminal. The returned func closes
// the file.
func setupTUILogging() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return func() {}
	}

	logger := newLogger(f, "runner")
	runner.SetLogger(logger)
	tui.SetLogger(logger)
	return func() { f.Close() }
}
