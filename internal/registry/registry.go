// Package registry holds the factory for the game the frontends drive.
// The game package registers itself in init(), so the CLI and frontends
// only depend on the Game interface and never import the simulation.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/flappy/internal/core"
)

// ErrNotRegistered is returned by New before any game has registered.
var ErrNotRegistered = errors.New("registry: no game registered")

// Game is the interface frontends drive. Games contain pure logic with no
// external dependencies (especially no Bubble Tea or Ebiten); the platform
// handles input mapping, timing, and display.
type Game interface {
	// ID returns the game identifier used in log fields.
	ID() string

	// Title returns a human-readable name for window titles.
	Title() string

	// Reset initializes the game state.
	// Called once at start; restarting after game over is the game's own
	// state transition. The RuntimeConfig provides field size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a character screen.
	Render(dst *core.Screen)

	// Snapshot returns a copy of the world for frontends that draw it
	// themselves.
	Snapshot() core.Snapshot

	// ToggleDebug flips the hitbox overlay without touching the simulation.
	ToggleDebug()

	// State returns the current game state (score, game over).
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu      sync.RWMutex
	factory Factory
	gameID  string
)

// Register installs the game factory. Typically called from the game's
// init() function. Panics if a game is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if factory != nil {
		panic(fmt.Sprintf("registry: cannot register %q, %q already registered", id, gameID))
	}
	factory, gameID = f, id
}

// New creates a fresh instance of the registered game.
func New() (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	if factory == nil {
		return nil, ErrNotRegistered
	}
	return factory(), nil
}
