package runner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.runner config out of the test
	g := New(mode)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	tests := []struct {
		id       string
		maxJumps int
	}{
		{"classic", 1},
		{"double", 2},
	}

	for _, tt := range tests {
		if !registry.Exists(tt.id) {
			t.Fatalf("mode %q not registered", tt.id)
		}
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q): %v", tt.id, err)
		}
		g.Reset(core.DefaultConfig())

		rg, ok := g.(*Game)
		if !ok {
			t.Fatalf("Create(%q) returned %T", tt.id, g)
		}
		if got := rg.Loop().Config().Player.MaxJumps; got != tt.maxJumps {
			t.Errorf("%s: max jumps = %d, expected %d", tt.id, got, tt.maxJumps)
		}
	}
}

func TestGameReportsRunEnded(t *testing.T) {
	g := newTestGame(t, Modes[0])

	for i := 0; i < 60; i++ {
		if res := g.Step(frame()); res.RunEnded {
			t.Fatalf("run ended early at tick %d", i)
		}
	}
	score := g.State().Score
	if score == 0 {
		t.Fatal("score should grow while running")
	}

	g.Loop().Player().SetPosition(200, 800)
	res := g.Step(frame())

	if !res.RunEnded || res.RunScore != score {
		t.Errorf("RunEnded=%v RunScore=%d, expected true/%d", res.RunEnded, res.RunScore, score)
	}
	if res.State.Runs != 2 || res.State.Score != 0 {
		t.Errorf("state after fall: runs=%d score=%d, expected 2/0", res.State.Runs, res.State.Score)
	}
	if res.State.Best != score {
		t.Errorf("best = %d, expected %d", res.State.Best, score)
	}
	if !g.banner.Visible() {
		t.Error("restart banner should be shown")
	}

	if next := g.Step(frame()); next.RunEnded {
		t.Error("run end should be reported once")
	}
}

func TestGameRestartAction(t *testing.T) {
	g := newTestGame(t, Modes[0])
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}

	res := g.Step(frame(core.ActionRestart))

	if res.RunEnded {
		t.Error("a manual restart is not a finished run")
	}
	if res.State.Runs != 2 {
		t.Errorf("runs = %d, expected 2", res.State.Runs)
	}
}

func TestGamePauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, Modes[0])
	g.Step(frame())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	x := g.Loop().Stream().Active()[0].X
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionJump))
	}
	if got := g.Loop().Stream().Active()[0].X; got != x {
		t.Errorf("platform moved while paused: %v -> %v", x, got)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
	if got := g.Loop().Stream().Active()[0].X; got >= x {
		t.Error("platforms should scroll again after resuming")
	}
}

func TestGameDeterminism(t *testing.T) {
	a := newTestGame(t, Modes[1])
	b := newTestGame(t, Modes[1])

	for i := 0; i < 900; i++ {
		var in core.InputFrame
		if i%40 == 0 || i%40 == 12 {
			in = frame(core.ActionJump)
		} else {
			in = frame()
		}
		if ra, rb := a.Step(in), b.Step(in); ra != rb {
			t.Fatalf("tick %d: results diverged", i)
		}
	}

	sa := core.NewScreen(80, 24)
	sb := core.NewScreen(80, 24)
	a.Render(sa)
	b.Render(sb)
	if sa.String() != sb.String() {
		t.Error("renders diverged for the same seed and inputs")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, Modes[1])
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"Double Jump", "Dist:", "Best:", "Run: 1", "Jumps:"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	var tops, player int
	for y := 1; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			c := scr.GetCell(x, y)
			if c.Rune == PlatformTop {
				tops++
			}
			if c.Rune == PlayerChar && (c.Color == core.ColorYellow || c.Color == core.ColorOrange) {
				player++
			}
		}
	}
	if tops == 0 {
		t.Error("no platform drawn")
	}
	if player == 0 {
		t.Error("no player drawn")
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t, Modes[0])
	g.Step(frame(core.ActionPause))

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("paused overlay not drawn")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, Modes[0])

	// Must not panic
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(5, 1))
	g.Render(core.NewScreen(3, 3))
}

func TestBannerLifecycle(t *testing.T) {
	var b Banner
	if b.Visible() {
		t.Fatal("zero banner should be hidden")
	}

	b.Show("FELL! 42 pts")
	if !b.Visible() || b.Text() != "FELL! 42 pts" || b.Progress() != 0 {
		t.Fatal("banner should start visible at the top")
	}

	b.Update(bannerDrop)
	if p := b.Progress(); p < 0.99 {
		t.Errorf("progress after the drop = %v, expected 1", p)
	}
	if !b.Visible() {
		t.Error("banner should still be held")
	}

	b.Update(bannerHold)
	if b.Visible() {
		t.Error("banner should hide after the hold")
	}

	b.Show("again")
	b.Hide()
	if b.Visible() {
		t.Error("Hide should remove the banner")
	}
}

// useConfigFile points the package at a config file with the given body for
// the duration of the test.
func useConfigFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	prev := configPath
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath(prev) })
}

const invalidConfig = "player:\n  max_jumps: 0\nplatforms:\n  spawn_range: [350, 100]\n"

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	useConfigFile(t, invalidConfig)

	if _, err := New(Modes[0]).LoadConfig(); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("LoadConfig() error = %v, expected ErrInvalidConfig", err)
	}
	if err := CheckConfig(); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("CheckConfig() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadConfigAppliesModeOverride(t *testing.T) {
	useConfigFile(t, "player:\n  max_jumps: 3\n  jump_force: 620\n")

	if err := CheckConfig(); err != nil {
		t.Fatalf("CheckConfig() failed: %v", err)
	}
	tests := []struct {
		mode     Mode
		maxJumps int
	}{
		{Modes[0], 3},
		{Modes[1], 2},
	}
	for _, tt := range tests {
		cfg, err := New(tt.mode).LoadConfig()
		if err != nil {
			t.Fatalf("%s: LoadConfig() failed: %v", tt.mode.ID, err)
		}
		if cfg.Player.MaxJumps != tt.maxJumps || cfg.Player.JumpForce != 620 {
			t.Errorf("%s: max_jumps=%d jump_force=%v, expected %d/620",
				tt.mode.ID, cfg.Player.MaxJumps, cfg.Player.JumpForce, tt.maxJumps)
		}
	}
}

func TestResetFallsBackWhenConfigTurnsBad(t *testing.T) {
	useConfigFile(t, invalidConfig)

	g := newTestGame(t, Modes[1])
	cfg := g.Loop().Config()
	if cfg.Platforms.SpawnRange != config.DefaultRunnerConfig().Platforms.SpawnRange {
		t.Errorf("spawn range = %v, expected defaults", cfg.Platforms.SpawnRange)
	}
	if cfg.Player.MaxJumps != 2 {
		t.Errorf("mode override should survive the fallback, max_jumps = %d", cfg.Player.MaxJumps)
	}
}

func TestDoubleTapWithinOneTick(t *testing.T) {
	tests := []struct {
		mode      Mode
		jumpsUsed int
	}{
		{Modes[0], 1},
		{Modes[1], 2},
	}

	for _, tt := range tests {
		t.Run(tt.mode.ID, func(t *testing.T) {
			g := newTestGame(t, tt.mode)
			for i := 0; i < 60; i++ {
				g.Step(frame())
			}
			if g.Loop().Jump().State() != Grounded {
				t.Fatal("player should have landed on the first platform")
			}

			g.Step(frame(core.ActionJump, core.ActionJump))

			if got := g.Loop().Jump().JumpsUsed(); got != tt.jumpsUsed {
				t.Errorf("jumps used = %d, expected %d", got, tt.jumpsUsed)
			}
			if g.Loop().Jump().State() != Airborne {
				t.Error("player should be airborne after the tap")
			}
		})
	}
}
