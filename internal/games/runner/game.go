// Package runner implements a side-scrolling endless runner: platforms
// stream in from the right, the player jumps the gaps, and falling off the
// bottom restarts the run.
package runner

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Visual characters for rendering
const (
	PlatformTop  = '▀'
	PlatformBody = '█'
	PlayerChar   = '█'
	GroundChar   = '·'
)

// Mode is a registered variant of the runner.
type Mode struct {
	ID       string
	Title    string
	MaxJumps int // 0 keeps the loaded config value
}

// Modes lists the variants registered with the registry.
var Modes = []Mode{
	{ID: "classic", Title: "Classic Runner"},
	{ID: "double", Title: "Double Jump", MaxJumps: 2},
}

// FindMode looks up a registered variant by ID.
func FindMode(id string) (Mode, bool) {
	for _, m := range Modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// Game adapts a RunLoop to the registry.Game interface.
type Game struct {
	mode    Mode
	loop    *RunLoop
	banner  Banner
	runtime core.RuntimeConfig
	paused  bool
	best    int
	dt      float64
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path set via CLI.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a runner game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// LoadConfig resolves the configuration for this mode: file or defaults,
// then the difficulty preset, then the mode's jump override. The result is
// validated after the overrides are applied.
func (g *Game) LoadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.mode.MaxJumps > 0 {
		cfg.Player.MaxJumps = g.mode.MaxJumps
	}
	if err := cfg.Validate(); err != nil {
		return config.RunnerConfig{}, fmt.Errorf("mode %s: %w", g.mode.ID, err)
	}
	return cfg, nil
}

// CheckConfig resolves the configuration of every mode and returns the
// first error. Commands call it before starting a session so a bad file is
// reported on the terminal instead of changing the game.
func CheckConfig() error {
	for _, m := range Modes {
		if _, err := New(m).LoadConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Reset initializes or restarts the session. Configuration is checked at
// startup; if the file turns bad while a server is running, the session
// falls back to the defaults rather than refusing to start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.DeltaTime()

	cfg, err := g.LoadConfig()
	if err != nil {
		logger.Error("config rejected, falling back to defaults", "mode", g.mode.ID, "error", err)
		cfg = config.DefaultRunnerConfig()
		if g.mode.MaxJumps > 0 {
			cfg.Player.MaxJumps = g.mode.MaxJumps
		}
	}
	loop, err := NewRunLoop(cfg, runtime.Seed, WithLogger(logger))
	if err != nil {
		panic(fmt.Sprintf("runner: default config invalid: %v", err))
	}

	g.loop = loop
	g.banner.Hide()
	g.paused = false
	g.best = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.loop.Restart()
		g.banner.Hide()
	}
	// Every press is its own request; a double tap inside one tick spends
	// the ground jump and the air jump.
	for i := 0; i < in.Count(core.ActionJump); i++ {
		g.loop.RequestJump()
	}

	res := g.loop.Tick(g.dt)
	g.banner.Update(g.dt)

	result := core.StepResult{}
	if res.Restarted {
		result.RunEnded = true
		result.RunScore = res.Score()
		g.best = core.Max(g.best, result.RunScore)
		g.banner.Show(fmt.Sprintf("FELL! %d pts", result.RunScore))
	}
	g.best = core.Max(g.best, g.loop.Score())

	result.State = g.State()
	return result
}

// Loop exposes the underlying run loop.
func (g *Game) Loop() *RunLoop {
	return g.loop
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	cfg := g.loop.Config()
	sx := float64(dst.Width()) / cfg.Viewport.Width
	sy := float64(dst.Height()-1) / cfg.Viewport.Height
	const top = 1 // HUD row

	// Faint floor line at the platform level so gaps read as gaps
	floorY := top + int(math.Floor((cfg.PlatformY()-cfg.Platforms.Height/2)*sy))
	dst.DrawHLine(0, floorY, dst.Width(), GroundChar, core.ColorGray)

	for _, p := range g.loop.Stream().Active() {
		r := p.Bounds().Scale(sx, sy)
		r.Y += top
		dst.DrawRect(r, PlatformBody, core.ColorGray)
		dst.DrawHLine(r.X, r.Y, r.W, PlatformTop, core.ColorGreen)
	}

	px, py := g.loop.Player().Position()
	player := core.RectF{CX: px, CY: py, W: cfg.Player.Width, H: cfg.Player.Height}.Scale(sx, sy)
	player.Y += top
	color := core.ColorYellow
	if g.loop.Jump().State() == Airborne {
		color = core.ColorOrange
	}
	dst.DrawRect(player, PlayerChar, color)

	hud := fmt.Sprintf(" %s  Dist: %d  Best: %d  Run: %d  Jumps: %d/%d ",
		g.mode.Title, g.loop.Score(), g.best, g.loop.Run(), g.loop.Jump().JumpsLeft(), cfg.Player.MaxJumps)
	dst.DrawTextColored(1, 0, hud, core.ColorCyan)

	if g.banner.Visible() {
		row := top + int(g.banner.Progress()*float64(dst.Height()/3))
		dst.DrawTextCentered(row, " "+g.banner.Text()+" ", core.ColorRed)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.loop.Score(),
		Best:   g.best,
		Runs:   g.loop.Run(),
		Paused: g.paused,
	}
}

// Register every mode with the registry
func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game {
			return New(m)
		})
	}
}
