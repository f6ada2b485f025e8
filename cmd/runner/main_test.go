package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const badConfig = "player:\n  max_jumps: 0\nplatforms:\n  spawn_range: [350, 100]\n"

// isolate points HOME and the working directory at empty temp dirs and
// restores the global flags afterwards.
func isolate(t *testing.T) (home string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	prevConfig, prevDifficulty, prevDefaults := flagConfig, flagDifficulty, flagDefaults
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagDefaults = prevConfig, prevDifficulty, prevDefaults
	})
	return home
}

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyConfigFlags(t *testing.T) {
	tests := []struct {
		name       string
		userFile   string
		customFile string
		difficulty string
		wantErr    bool
		invalid    bool
	}{
		{name: "defaults"},
		{name: "valid custom file", customFile: "player:\n  jump_force: 600\n"},
		{name: "invalid custom file", customFile: badConfig, wantErr: true, invalid: true},
		{name: "invalid user file", userFile: badConfig, wantErr: true, invalid: true},
		{name: "custom file wins over broken user file", userFile: badConfig, customFile: "player:\n  gravity: 900\n"},
		{name: "unknown difficulty", difficulty: "nightmare", wantErr: true},
		{name: "known difficulty", difficulty: "hard"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := isolate(t)
			flagConfig, flagDifficulty = "", tc.difficulty
			if tc.userFile != "" {
				writeFile(t, filepath.Join(home, ".runner", "configs", "runner.yaml"), tc.userFile)
			}
			if tc.customFile != "" {
				flagConfig = writeFile(t, filepath.Join(t.TempDir(), "custom.yaml"), tc.customFile)
			}

			err := applyConfigFlags()
			if (err != nil) != tc.wantErr {
				t.Fatalf("applyConfigFlags() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.invalid && !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestInvalidConfigStopsCommand(t *testing.T) {
	isolate(t)
	bad := writeFile(t, filepath.Join(t.TempDir(), "bad.yaml"), badConfig)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list", "--config", bad})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	err := rootCmd.Execute()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("Execute() error = %v, expected ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestConfigDefaultsIgnoresBrokenFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".runner", "configs", "runner.yaml"), badConfig)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--defaults"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if out.String() != string(config.DefaultYAML()) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestConfigPrintsModeOverride(t *testing.T) {
	isolate(t)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"config", "double", "--defaults=false"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config double failed: %v", err)
	}

	cfg, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("output is not a config: %v\n%s", err, out.String())
	}
	if cfg.Player.MaxJumps != 2 {
		t.Errorf("max_jumps = %d, expected 2", cfg.Player.MaxJumps)
	}
}
