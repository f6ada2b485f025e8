// Package config provides YAML-based configuration loading and validation
// for the runner.
package config

// Range is an inclusive [min, max] interval, written in YAML as a
// two-element sequence: [100, 350].
type Range [2]float64

// Min returns the lower bound.
func (r Range) Min() float64 { return r[0] }

// Max returns the upper bound.
func (r Range) Max() float64 { return r[1] }

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r[0] && v <= r[1]
}

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Viewport  Viewport        `yaml:"viewport"`
	Platforms PlatformOptions `yaml:"platforms"`
	Player    PlayerOptions   `yaml:"player"`
}

// Viewport is the simulated world size in pixels. The terminal renderer
// scales it to whatever screen it gets.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformOptions defines the platform stream parameters.
type PlatformOptions struct {
	StartSpeed  float64 `yaml:"start_speed"`  // px/s
	SpawnRange  Range   `yaml:"spawn_range"`  // gap target between platforms, px
	SizeRange   Range   `yaml:"size_range"`   // platform width, px
	Height      float64 `yaml:"height"`       // px
	VerticalPos float64 `yaml:"vertical_pos"` // fraction of viewport height
}

// PlayerOptions defines player physics parameters.
type PlayerOptions struct {
	Gravity   float64 `yaml:"gravity"`    // px/s²
	JumpForce float64 `yaml:"jump_force"` // px/s
	StartX    float64 `yaml:"start_x"`    // px
	Width     float64 `yaml:"width"`      // px
	Height    float64 `yaml:"height"`     // px
	MaxJumps  int     `yaml:"max_jumps"`  // ground jump + air jumps
}

// PlatformY returns the fixed vertical centre of every platform.
func (c RunnerConfig) PlatformY() float64 {
	return c.Viewport.Height * c.Platforms.VerticalPos
}

// PlayerStartY returns the vertical centre the player spawns at.
func (c RunnerConfig) PlayerStartY() float64 {
	return c.Viewport.Height / 2
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Empty or unknown values
// yield "" and leave the loaded config untouched.
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
