package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: Viewport{
			Width:  1334,
			Height: 750,
		},
		Platforms: PlatformOptions{
			StartSpeed:  500,
			SpawnRange:  Range{100, 350},
			SizeRange:   Range{300, 500},
			Height:      32,
			VerticalPos: 0.8,
		},
		Player: PlayerOptions{
			Gravity:   1000,
			JumpForce: 500,
			StartX:    200,
			Width:     48,
			Height:    48,
			MaxJumps:  1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

// ApplyPreset rewrites the single configured speed/size/gap values for a
// difficulty preset. Normal keeps the loaded values.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.StartSpeed *= 0.8
		cfg.Platforms.SizeRange = Range{cfg.Platforms.SizeRange.Min() * 1.2, cfg.Platforms.SizeRange.Max() * 1.2}
		cfg.Platforms.SpawnRange = Range{cfg.Platforms.SpawnRange.Min() * 0.8, cfg.Platforms.SpawnRange.Max() * 0.8}
	case DifficultyHard:
		cfg.Platforms.StartSpeed *= 1.25
		cfg.Platforms.SizeRange = Range{cfg.Platforms.SizeRange.Min() * 0.75, cfg.Platforms.SizeRange.Max() * 0.75}
		cfg.Platforms.SpawnRange = Range{cfg.Platforms.SpawnRange.Min() * 1.2, cfg.Platforms.SpawnRange.Max() * 1.2}
	}
}
