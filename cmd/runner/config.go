package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective runner config",
	Long: `Prints the configuration a mode would run with, after the config file,
the difficulty preset and the mode's own overrides are applied.

With --defaults, prints the built-in default file instead; redirect it to
~/.runner/configs/runner.yaml to start a config of your own.

Examples:
  runner config
  runner config double --difficulty hard
  runner config --defaults > ~/.runner/configs/runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	mode := runner.Modes[0]
	if len(args) == 1 {
		m, ok := runner.FindMode(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q (run 'runner list')", args[0])
		}
		mode = m
	}

	cfg, err := runner.New(mode).LoadConfig()
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("runner: encoding config: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "# mode: %s\n", mode.ID)
	_, err = out.Write(data)
	return err
}
