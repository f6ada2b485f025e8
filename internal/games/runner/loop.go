package runner

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// distancePerPoint converts scrolled pixels into score points.
const distancePerPoint = 10

// TickResult reports what happened during one RunLoop tick.
type TickResult struct {
	// Restarted is set when the player fell and the run was reset. The
	// remaining fields then describe the run that just ended.
	Restarted bool
	Run       int
	Distance  float64
}

// Score converts the ended run's distance into points.
func (r TickResult) Score() int {
	return int(r.Distance / distancePerPoint)
}

// RunLoop advances one endless run per tick: death check, scroll, spawn,
// physics. It is not safe for concurrent use; one tick at a time.
type RunLoop struct {
	cfg     config.RunnerConfig
	stream  *PlatformStream
	jump    *JumpController
	physics Physics
	player  Body
	logger  *log.Logger

	distance float64
	run      int
}

// Option configures a RunLoop.
type Option func(*RunLoop)

// WithLogger routes restart diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(rl *RunLoop) {
		if l != nil {
			rl.logger = l
		}
	}
}

// WithPhysics replaces the default resolv-backed physics.
func WithPhysics(p Physics) Option {
	return func(rl *RunLoop) {
		if p != nil {
			rl.physics = p
		}
	}
}

// NewRunLoop validates cfg and starts the first run.
func NewRunLoop(cfg config.RunnerConfig, seed int64, opts ...Option) (*RunLoop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	rl := &RunLoop{
		cfg:    cfg,
		stream: NewPlatformStream(cfg, rand.New(rand.NewSource(seed))),
		jump:   NewJumpController(cfg.Player.MaxJumps, cfg.Player.JumpForce),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(rl)
	}
	if rl.physics == nil {
		rl.physics = NewArcadePhysics(cfg)
	}
	rl.player = rl.physics.Player()

	rl.Restart()
	return rl, nil
}

// Tick advances the scene by dt seconds.
func (rl *RunLoop) Tick(dt float64) TickResult {
	if _, y := rl.player.Position(); y > rl.cfg.Viewport.Height {
		ended := TickResult{Restarted: true, Run: rl.run, Distance: rl.distance}
		rl.logger.Debug("player fell", "run", ended.Run, "distance", int(ended.Distance), "platforms", rl.stream.Allocated())
		rl.Restart()
		return ended
	}

	_, y := rl.player.Position()
	rl.player.SetPosition(rl.cfg.Player.StartX, y)

	speed := rl.cfg.Platforms.StartSpeed
	minGap := rl.stream.Advance(dt, speed)
	rl.distance += speed * dt

	if minGap > rl.stream.NextGapTarget() {
		width := rl.stream.RollWidth()
		rl.stream.Spawn(width, rl.cfg.Viewport.Width+width/2)
	}

	rl.physics.Step(dt, rl.stream.Active())
	rl.jump.Observe(rl.player.TouchingGround())

	return TickResult{Run: rl.run, Distance: rl.distance}
}

// RequestJump forwards a discrete jump request to the jump controller.
func (rl *RunLoop) RequestJump() bool {
	return rl.jump.RequestJump(rl.player)
}

// Restart resets the whole run: player, platforms and jump charges, then
// lays one viewport-wide platform under the screen centre.
func (rl *RunLoop) Restart() {
	rl.stream.Reset()

	rl.player.SetPosition(rl.cfg.Player.StartX, rl.cfg.PlayerStartY())
	rl.player.SetVelocityX(0)
	rl.player.SetVelocityY(0)
	rl.player.SetGravity(rl.cfg.Player.Gravity)
	rl.jump.Reset()

	rl.distance = 0
	rl.run++

	w := rl.cfg.Viewport.Width
	rl.stream.Spawn(w, w/2)
}

// Config returns the configuration the loop runs with.
func (rl *RunLoop) Config() config.RunnerConfig {
	return rl.cfg
}

// Stream exposes the platform stream for rendering and inspection.
func (rl *RunLoop) Stream() *PlatformStream {
	return rl.stream
}

// Jump exposes the jump controller for the HUD.
func (rl *RunLoop) Jump() *JumpController {
	return rl.jump
}

// Player returns the player body.
func (rl *RunLoop) Player() Body {
	return rl.player
}

// Run returns the 1-based number of the current run.
func (rl *RunLoop) Run() int {
	return rl.run
}

// Distance returns the pixels scrolled in the current run.
func (rl *RunLoop) Distance() float64 {
	return rl.distance
}

// Score returns the current run's distance in points.
func (rl *RunLoop) Score() int {
	return int(rl.distance / distancePerPoint)
}
