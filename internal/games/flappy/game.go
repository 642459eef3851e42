// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in scrolling
// pipes. The simulation is tick-based and deterministic for a given seed.
package flappy

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/registry"
)

// Package-level configuration used by the registry factory.
var gameConfig = config.DefaultFlappyConfig()

// SetConfig sets the configuration for games created by the registry.
func SetConfig(cfg config.FlappyConfig) {
	gameConfig = cfg
}

// Game implements the simulation controller. It owns the actor, the
// obstacle list and the score; nothing else mutates them.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	geom    Geometry

	actor     *Actor
	obstacles []*Obstacle // Spawn order, which is also ascending x
	score     int
	phase     core.Phase
	debug     bool // Hitbox overlay

	tick          uint64 // Ticks since Reset, across rounds
	lastSpawnTick uint64 // Tick of the last spawn or round start
	round         int    // 1-based round counter
}

// New creates a new game instance using the given configuration.
// Reset must be called before Step.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes the game: new RNG from the seed, tick counter at zero,
// and a fresh round. The tick rate is kept for frontends only; it does not
// change how far the world moves per tick.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.FieldW <= 0 || rc.FieldH <= 0 {
		rc.FieldW, rc.FieldH = g.cfg.Field.Width, g.cfg.Field.Height
	}
	if rc.TickRate <= 0 {
		rc.TickRate = g.cfg.Field.TickRate
	}
	g.runtime = rc
	g.debug = rc.Debug || g.cfg.Debug
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.geom = NewGeometry(g.cfg, rc.FieldH)
	g.tick = 0
	g.round = 0
	g.newRound()
}

// newRound replaces the world: new actor at the spawn point, a single
// obstacle ahead of it, score zero, spawn timer restarted at the current
// tick.
func (g *Game) newRound() {
	w, h := float64(g.runtime.FieldW), float64(g.runtime.FieldH)
	g.actor = NewActor(w/4, h/2, g.cfg.Physics, g.cfg.Actor)
	g.obstacles = []*Obstacle{NewObstacle(w+g.cfg.Obstacles.FirstOffset, &g.geom, g.rng)}
	g.score = 0
	g.phase = core.PhaseRunning
	g.lastSpawnTick = g.tick
	g.round++
}

// Step advances the game by one tick.
//
// While running, a jump input kicks the actor and the world advances. Once
// the round is over, ticks are no-ops until a jump input restarts the round;
// the restarting tick does not advance physics.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseGameOver {
		if in.Has(core.ActionJump) {
			g.newRound()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.actor.Jump()
	}

	g.tick++

	g.actor.Tick()

	// The tick keeps going after an out-of-bounds hit so the final frame
	// shows obstacles where they would have been.
	if g.actor.OutOfBounds(float64(g.runtime.FieldH)) {
		g.phase = core.PhaseGameOver
	}

	if g.tick-g.lastSpawnTick > g.cfg.Obstacles.SpawnIntervalTicks() {
		g.obstacles = append(g.obstacles, NewObstacle(float64(g.runtime.FieldW), &g.geom, g.rng))
		g.lastSpawnTick = g.tick
	}

	// Iterate a copy so removals do not skip the next obstacle.
	for _, o := range slices.Clone(g.obstacles) {
		o.Tick()

		if o.CollidesWith(g.actor) {
			g.phase = core.PhaseGameOver
		}

		if o.Offscreen() {
			g.obstacles = slices.DeleteFunc(g.obstacles, func(p *Obstacle) bool { return p == o })
		}

		if o.PassedBy(g.actor.X()) {
			g.score++
		}
	}

	return core.StepResult{
		State: g.State(),
		Ended: g.phase == core.PhaseGameOver,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == core.PhaseGameOver,
	}
}

// ToggleDebug flips the hitbox overlay. It does not affect the simulation.
func (g *Game) ToggleDebug() {
	g.debug = !g.debug
}

// Phase returns the current round state.
func (g *Game) Phase() core.Phase {
	return g.phase
}

var _ registry.Game = (*Game)(nil)

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New(gameConfig)
	})
}
