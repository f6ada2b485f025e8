package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig:\n got  %+v\n want %+v", cfg, DefaultRunnerConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
platforms:
  spawn_range: [50, 60]
player:
  max_jumps: 3
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Platforms.SpawnRange != (Range{50, 60}) {
		t.Errorf("spawn_range = %v, expected [50 60]", cfg.Platforms.SpawnRange)
	}
	if cfg.Player.MaxJumps != 3 {
		t.Errorf("max_jumps = %d, expected 3", cfg.Player.MaxJumps)
	}
	// Untouched keys keep their defaults
	if cfg.Platforms.StartSpeed != 500 || cfg.Viewport.Width != 1334 {
		t.Errorf("defaults should survive a partial file, got %+v", cfg)
	}
}

func TestParseRejectsBadRangeShape(t *testing.T) {
	_, err := Parse([]byte("platforms:\n  size_range: [1, 2, 3]\n"))
	if err == nil {
		t.Fatal("a three-element range should not parse")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero max jumps", func(c *RunnerConfig) { c.Player.MaxJumps = 0 }},
		{"inverted spawn range", func(c *RunnerConfig) { c.Platforms.SpawnRange = Range{350, 100} }},
		{"inverted size range", func(c *RunnerConfig) { c.Platforms.SizeRange = Range{500, 300} }},
		{"zero-width platforms", func(c *RunnerConfig) { c.Platforms.SizeRange = Range{0, 300} }},
		{"negative gap", func(c *RunnerConfig) { c.Platforms.SpawnRange = Range{-10, 100} }},
		{"zero speed", func(c *RunnerConfig) { c.Platforms.StartSpeed = 0 }},
		{"zero viewport", func(c *RunnerConfig) { c.Viewport.Height = 0 }},
		{"platforms below viewport", func(c *RunnerConfig) { c.Platforms.VerticalPos = 1.2 }},
		{"no gravity", func(c *RunnerConfig) { c.Player.Gravity = 0 }},
		{"player off screen", func(c *RunnerConfig) { c.Player.StartX = 5000 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidateAllowsDegenerateRanges(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Platforms.SpawnRange = Range{200, 200}
	cfg.Platforms.SizeRange = Range{400, 400}
	if err := cfg.Validate(); err != nil {
		t.Errorf("min == max should be accepted: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(path, []byte("player:\n  jump_force: 650\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.JumpForce != 650 {
		t.Errorf("jump_force = %v, expected 650", cfg.Player.JumpForce)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  max_jumps: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom file should wrap ErrInvalidConfig, got %v", err)
	}
}

// isolateSearchPaths points the home and working directories at empty temp
// dirs so Load only sees the files a test writes.
func isolateSearchPaths(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	isolateSearchPaths(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadSearchPathOrder(t *testing.T) {
	home, work := isolateSearchPaths(t)
	writeConfig(t, filepath.Join(work, "configs", configFile), "player:\n  jump_force: 600\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.JumpForce != 600 {
		t.Errorf("local file should apply, jump_force = %v", cfg.Player.JumpForce)
	}

	writeConfig(t, filepath.Join(home, ".runner", "configs", configFile), "player:\n  jump_force: 700\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.JumpForce != 700 {
		t.Errorf("user file should win over local file, jump_force = %v", cfg.Player.JumpForce)
	}
}

func TestLoadRejectsInvalidSearchPathFile(t *testing.T) {
	tests := []struct {
		name string
		path func(home, work string) string
	}{
		{"user file", func(home, _ string) string { return filepath.Join(home, ".runner", "configs", configFile) }},
		{"local file", func(_, work string) string { return filepath.Join(work, "configs", configFile) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home, work := isolateSearchPaths(t)
			path := tc.path(home, work)
			writeConfig(t, path, "player:\n  max_jumps: 0\nplatforms:\n  spawn_range: [350, 100]\n")

			_, err := Load("")
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error should name the file %s: %v", path, err)
			}
		})
	}
}

func TestLoadRejectsMalformedSearchPathFile(t *testing.T) {
	_, work := isolateSearchPaths(t)
	writeConfig(t, filepath.Join(work, "configs", configFile), "player: [not, a, map\n")

	if _, err := Load(""); err == nil {
		t.Error("malformed local file should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should keep the loaded values")
	}

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Platforms.StartSpeed >= base.Platforms.StartSpeed {
		t.Error("easy should scroll slower")
	}
	if easy.Platforms.SizeRange.Min() <= base.Platforms.SizeRange.Min() {
		t.Error("easy should use wider platforms")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Platforms.StartSpeed <= base.Platforms.StartSpeed {
		t.Error("hard should scroll faster")
	}
	if hard.Platforms.SpawnRange.Max() <= base.Platforms.SpawnRange.Max() {
		t.Error("hard should open wider gaps")
	}

	for _, cfg := range []RunnerConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if ParseDifficulty("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParseDifficulty("fixed") != "" || ParseDifficulty("") != "" {
		t.Error("unknown presets should map to empty")
	}
}
