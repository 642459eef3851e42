package flappy

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = 42
	return rc
}

func newTestGame(cfg config.FlappyConfig) *Game {
	g := New(cfg)
	g.Reset(testRuntime())
	return g
}

// hoverConfig disables gravity and spawning so a single obstacle can be
// scrolled past a stationary actor.
func hoverConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.SpawnIntervalMS = 1_000_000
	return cfg
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// screenText joins rows [y0, y1) of the screen without colors.
func screenText(s *core.Screen, y0, y1 int) string {
	var sb strings.Builder
	for y := y0; y < y1; y++ {
		for x := range s.Width() {
			sb.WriteRune(s.GetCell(x, y).Rune)
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func assertFreshRound(t *testing.T, g *Game) {
	t.Helper()
	if g.Phase() != core.PhaseRunning {
		t.Errorf("phase = %v, expected running", g.Phase())
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
	if len(g.obstacles) != 1 {
		t.Fatalf("obstacles = %d, expected exactly 1", len(g.obstacles))
	}
	if g.obstacles[0].X != 1000 || g.obstacles[0].Passed {
		t.Errorf("first obstacle = %+v, expected unpassed at x=1000", g.obstacles[0])
	}
	if g.actor.X() != 200 || g.actor.Y() != 300 {
		t.Errorf("actor at (%v, %v), expected spawn (200, 300)", g.actor.X(), g.actor.Y())
	}
	if g.actor.Velocity() != 0 {
		t.Errorf("actor velocity = %v, expected 0", g.actor.Velocity())
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig())
	assertFreshRound(t, g)

	if g.State().GameOver {
		t.Error("new game should not be over")
	}
}

func TestGameResetDefaultsFieldFromConfig(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})

	s := g.Snapshot()
	if s.FieldW != 800 || s.FieldH != 600 {
		t.Errorf("field = %vx%v, expected 800x600 from config", s.FieldW, s.FieldH)
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig())

	g.Step(jump())

	if g.actor.Velocity() != -9.5 {
		t.Errorf("velocity after jump tick = %v, expected -9.5", g.actor.Velocity())
	}
	if g.actor.Y() != 290.5 {
		t.Errorf("y after jump tick = %v, expected 290.5", g.actor.Y())
	}
}

func TestGameFallToGameOverFreezesWorld(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig())

	ticks := 0
	var result core.StepResult
	for !result.State.GameOver {
		result = g.Step(core.NewInputFrame())
		ticks++
		if ticks > 100 {
			t.Fatal("actor never left the field")
		}
	}

	// y = 300 + 0.25*k*(k+1) first exceeds 570 at k = 33.
	if ticks != 33 {
		t.Errorf("game over after %d ticks, expected 33", ticks)
	}
	if !result.Ended {
		t.Error("the transition tick should report Ended")
	}
	if g.actor.Y()+g.actor.Radius() <= 600 {
		t.Errorf("actor should be past the bottom edge, y=%v", g.actor.Y())
	}

	frozen := g.Snapshot()
	for i := 0; i < 50; i++ {
		r := g.Step(core.NewInputFrame())
		if r.Ended || r.Restarted {
			t.Fatalf("tick %d after game over should be a no-op, got %+v", i, r)
		}
	}
	if after := g.Snapshot(); !reflect.DeepEqual(frozen, after) {
		t.Errorf("world changed during game over:\n before=%+v\n after=%+v", frozen, after)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig())
	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}
	g.score = 7
	round := g.round

	result := g.Step(jump())

	if !result.Restarted {
		t.Error("jump during game over should restart")
	}
	if result.State.GameOver || result.State.Score != 0 {
		t.Errorf("state after restart = %+v", result.State)
	}
	assertFreshRound(t, g)
	if g.round != round+1 {
		t.Errorf("round = %d, expected %d", g.round, round+1)
	}
	if g.lastSpawnTick != g.tick {
		t.Errorf("spawn timer should restart at the current tick: lastSpawnTick=%d tick=%d", g.lastSpawnTick, g.tick)
	}
}

func TestGameSpawnInterval(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	g := newTestGame(cfg)

	// 1500ms at the reference rate is 90 ticks; the spawn comes on the
	// first tick past that.
	for i := 0; i < 90; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.obstacles) != 1 {
		t.Fatalf("obstacles after 90 ticks = %d, expected 1", len(g.obstacles))
	}

	g.Step(core.NewInputFrame())
	if len(g.obstacles) != 2 {
		t.Fatalf("obstacles after 91 ticks = %d, expected 2", len(g.obstacles))
	}
	if last := g.obstacles[1]; last.X != 797 {
		t.Errorf("spawned obstacle x = %v, expected 797 (spawned at 800 and advanced)", last.X)
	}

	for i := 0; i < 90; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.obstacles) != 2 {
		t.Fatalf("obstacles after 181 ticks = %d, expected 2", len(g.obstacles))
	}
	g.Step(core.NewInputFrame())
	if len(g.obstacles) != 3 {
		t.Fatalf("obstacles after 182 ticks = %d, expected 3", len(g.obstacles))
	}

	xs := make([]float64, 0, len(g.obstacles))
	for _, o := range g.obstacles {
		xs = append(xs, o.X)
	}
	if !slices.IsSorted(xs) {
		t.Errorf("obstacles should be in ascending x order, got %v", xs)
	}
}

func TestGameSpawnSpacingIgnoresTickRate(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0

	for _, rate := range []int{30, 60, 120} {
		t.Run(fmt.Sprintf("%d_tps", rate), func(t *testing.T) {
			rc := testRuntime()
			rc.TickRate = rate
			g := New(cfg)
			g.Reset(rc)

			for range 182 {
				g.Step(core.NewInputFrame())
			}
			if len(g.obstacles) != 3 {
				t.Fatalf("obstacles after 182 ticks = %d, expected 3", len(g.obstacles))
			}
			if a, b := g.obstacles[1].X, g.obstacles[2].X; a != 524 || b != 797 {
				t.Errorf("spawned obstacles at x=%v and x=%v, expected 524 and 797", a, b)
			}
			if gap := g.obstacles[2].X - g.obstacles[1].X; gap != 273 {
				t.Errorf("pipe spacing = %v, expected 273", gap)
			}
		})
	}
}

func TestGameScoresOncePerObstacle(t *testing.T) {
	g := newTestGame(hoverConfig())
	g.obstacles[0].GapY = 250 // actor box 288..312 sits inside the opening

	scoredAt := 0
	for tick := 1; tick <= 400; tick++ {
		result := g.Step(core.NewInputFrame())
		if result.State.GameOver {
			t.Fatalf("unexpected game over at tick %d", tick)
		}
		switch result.State.Score {
		case 0:
			if scoredAt != 0 {
				t.Fatalf("score went back to 0 at tick %d", tick)
			}
		case 1:
			if scoredAt == 0 {
				scoredAt = tick
			}
		default:
			t.Fatalf("score = %d at tick %d, expected at most 1", result.State.Score, tick)
		}
	}

	// Right edge 1070-3k first drops below x=200 at k = 291.
	if scoredAt != 291 {
		t.Errorf("scored at tick %d, expected 291", scoredAt)
	}
	if len(g.obstacles) != 0 {
		t.Errorf("obstacle should have been removed once off-screen, %d left", len(g.obstacles))
	}
}

func TestGameCollisionEndsRound(t *testing.T) {
	g := newTestGame(hoverConfig())
	g.obstacles[0].GapY = 400 // the upper segment covers the actor

	for tick := 1; tick <= 300; tick++ {
		result := g.Step(core.NewInputFrame())
		if result.State.GameOver {
			// Padded left edge x+25 first passes the actor's right edge 212 at k = 272.
			if tick != 272 {
				t.Errorf("collision at tick %d, expected 272", tick)
			}
			if !result.Ended {
				t.Error("collision tick should report Ended")
			}
			return
		}
	}
	t.Fatal("actor never hit the obstacle")
}

func TestGameRemovalDoesNotSkipOthers(t *testing.T) {
	g := newTestGame(hoverConfig())
	geom := &g.geom
	g.obstacles = []*Obstacle{
		{X: -72, GapY: 250, geom: geom}, // removed this tick
		{X: 100, GapY: 250, geom: geom}, // passes this tick
		{X: 500, GapY: 250, geom: geom},
	}

	result := g.Step(core.NewInputFrame())

	if len(g.obstacles) != 2 {
		t.Fatalf("obstacles = %d, expected 2", len(g.obstacles))
	}
	if g.obstacles[0].X != 97 || g.obstacles[1].X != 497 {
		t.Errorf("remaining obstacles should all advance, got x=%v and x=%v", g.obstacles[0].X, g.obstacles[1].X)
	}
	if result.State.Score != 2 {
		// both the removed obstacle and the next one are behind the actor
		t.Errorf("score = %d, expected 2", result.State.Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%18 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() core.Snapshot {
		g := newTestGame(config.DefaultFlappyConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs should give the same world:\n run1=%+v\n run2=%+v", s1, s2)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig())
	s := g.Snapshot()
	s.Obstacles[0].X = -500

	if g.obstacles[0].X != 1000 {
		t.Error("mutating a snapshot should not affect the game")
	}
	if s.Phase != core.PhaseRunning || s.Round != 1 {
		t.Errorf("snapshot phase/round = %v/%d", s.Phase, s.Round)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Actor (200, 300) maps to cell (20, 12) on an 80x24 screen.
	if c := screen.GetCell(20, 12); c.Rune != ActorChar {
		t.Errorf("actor should be drawn at (20, 12), got %q", c.Rune)
	}
	if row := screenText(screen, 0, 1); !strings.Contains(row, "Score: 0") {
		t.Errorf("HUD should show the score, row 0 = %q", row)
	}
	if strings.Contains(screenText(screen, 0, screen.Height()), "GAME OVER") {
		t.Error("running game should not show the game over box")
	}
}

func TestGameRenderObstacleAndDebug(t *testing.T) {
	cfg := hoverConfig()
	cfg.Debug = true
	g := newTestGame(cfg)
	g.obstacles[0].X = 400

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Pipe columns 40..46, upper segment rows above the gap.
	if r := screen.GetCell(41, 2).Rune; r != DebugChar && r != PipeChar {
		t.Errorf("expected pipe at (41, 2), got %q", r)
	}
	if !strings.ContainsRune(screenText(screen, 0, screen.Height()), DebugChar) {
		t.Error("debug overlay should draw collision rectangles")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(config.DefaultFlappyConfig())
	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screenText(screen, 0, screen.Height())
	for _, want := range []string{"GAME OVER", "Final Score: 0", "Press SPACE to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen should contain %q", want)
		}
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.New()
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}
	if _, ok := g.(*Game); !ok {
		t.Fatalf("registered game is %T, expected *Game", g)
	}
	if g.Title() != "Flappy Bird" {
		t.Errorf("Title() = %q", g.Title())
	}
	g.Reset(testRuntime())
	if g.State().GameOver {
		t.Error("registered game should start running")
	}
}

func TestToggleDebugDoesNotAffectSimulation(t *testing.T) {
	plain := newTestGame(config.DefaultFlappyConfig())
	toggled := newTestGame(config.DefaultFlappyConfig())
	toggled.ToggleDebug()

	for i := 0; i < 20; i++ {
		plain.Step(core.NewInputFrame())
		toggled.Step(core.NewInputFrame())
	}

	a, b := plain.Snapshot(), toggled.Snapshot()
	if a.Debug || !b.Debug {
		t.Fatalf("debug flags = %v/%v, expected false/true", a.Debug, b.Debug)
	}
	b.Debug = false
	if !reflect.DeepEqual(a, b) {
		t.Error("the overlay should not change the world")
	}
}
