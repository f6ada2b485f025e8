// Package registry maps runner mode IDs to factories. Modes register
// themselves in init(), so the CLI and TUI can list and create them without
// importing each one by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is what the platform layer drives. Implementations hold pure logic;
// input mapping, timing and terminal output live in the platform layer.
type Game interface {
	// ID is the stable identifier used on the CLI and as the score board key.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a mode.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     []GameInfo // registration order
)

// Register adds a factory. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f
	infos = append(infos, GameInfo{ID: id, Title: f().Title()})
}

// List returns every registered mode in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(infos))
	copy(out, infos)
	return out
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
