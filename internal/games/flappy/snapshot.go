package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() core.Snapshot {
	a := g.actor
	s := core.Snapshot{
		Tick:   g.tick,
		Round:  g.round,
		Phase:  g.phase,
		Score:  g.score,
		FieldW: float64(g.runtime.FieldW),
		FieldH: float64(g.runtime.FieldH),
		Debug:  g.debug,
		Actor: core.ActorView{
			X:        a.X(),
			Y:        a.Y(),
			Velocity: a.Velocity(),
			Rotation: a.Rotation(),
			Radius:   a.Radius(),
			Bounds:   a.Bounds(),
		},
		Obstacles: make([]core.ObstacleView, 0, len(g.obstacles)),
	}
	for _, o := range g.obstacles {
		upper, lower := o.Bounds()
		s.Obstacles = append(s.Obstacles, core.ObstacleView{
			X:         o.X,
			GapY:      o.GapY,
			Width:     g.geom.Width,
			GapHeight: g.geom.GapHeight,
			Passed:    o.Passed,
			Upper:     upper,
			Lower:     lower,
		})
	}
	return s
}
