package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for any configuration the runner
// cannot play correctly.
var ErrInvalidConfig = errors.New("invalid runner config")

// Validate rejects values that would produce silently wrong gameplay.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	ordered := func(name string, r Range) {
		if r.Min() < 0 {
			errs = append(errs, fmt.Errorf("%s min must not be negative, got %v", name, r.Min()))
		}
		if r.Min() > r.Max() {
			errs = append(errs, fmt.Errorf("%s is inverted: [%v, %v]", name, r.Min(), r.Max()))
		}
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("platforms.start_speed", c.Platforms.StartSpeed)
	positive("platforms.height", c.Platforms.Height)
	ordered("platforms.spawn_range", c.Platforms.SpawnRange)
	ordered("platforms.size_range", c.Platforms.SizeRange)
	if c.Platforms.SizeRange.Min() <= 0 {
		errs = append(errs, fmt.Errorf("platforms.size_range min must be positive, got %v", c.Platforms.SizeRange.Min()))
	}
	if c.Platforms.VerticalPos <= 0 || c.Platforms.VerticalPos >= 1 {
		errs = append(errs, fmt.Errorf("platforms.vertical_pos must be in (0, 1), got %v", c.Platforms.VerticalPos))
	}
	positive("player.gravity", c.Player.Gravity)
	positive("player.jump_force", c.Player.JumpForce)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	if c.Player.StartX < 0 || c.Player.StartX > c.Viewport.Width {
		errs = append(errs, fmt.Errorf("player.start_x must lie inside the viewport, got %v", c.Player.StartX))
	}
	if c.Player.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("player.max_jumps must be at least 1, got %d", c.Player.MaxJumps))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
