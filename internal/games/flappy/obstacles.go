package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Geometry holds the dimensions shared by every obstacle of a game.
type Geometry struct {
	Width     float64
	GapHeight float64
	HPad      float64 // Collision inset from each side
	VPad      float64 // Collision inset from the gap edges
	Speed     float64 // Leftward movement per tick
	FieldH    float64
	Margin    int // Minimum segment height above and below the gap
}

// NewGeometry derives obstacle geometry from the configuration.
func NewGeometry(cfg config.FlappyConfig, fieldH int) Geometry {
	return Geometry{
		Width:     cfg.Obstacles.Width,
		GapHeight: cfg.Obstacles.GapHeight,
		HPad:      cfg.Obstacles.HorizontalPadding,
		VPad:      cfg.Obstacles.VerticalPadding,
		Speed:     cfg.Physics.ScrollSpeed,
		FieldH:    float64(fieldH),
		Margin:    cfg.Obstacles.SpawnMargin,
	}
}

// GapRange returns the inclusive range the gap top is drawn from.
// ok is false when the field is too small for the margins; lo == hi then
// holds the clamped position.
func (g Geometry) GapRange() (lo, hi int, ok bool) {
	lo = g.Margin
	hi = int(g.FieldH) - g.Margin - int(math.Ceil(g.GapHeight))
	if hi >= lo {
		return lo, hi, true
	}
	// Degenerate: center the gap, never above the top of the field.
	mid := int((g.FieldH - g.GapHeight) / 2)
	if mid < 0 {
		mid = 0
	}
	return mid, mid, false
}

// Obstacle is a pair of blocking segments with a passable gap between them.
type Obstacle struct {
	X      float64 // Left edge of the visual pipe
	GapY   float64 // Top edge of the opening; it spans [GapY, GapY+GapHeight]
	Passed bool    // Set once when the actor has cleared the trailing edge

	geom *Geometry
}

// NewObstacle creates an obstacle at x with a gap drawn uniformly from the
// geometry's gap range.
func NewObstacle(x float64, geom *Geometry, rng *rand.Rand) *Obstacle {
	lo, hi, _ := geom.GapRange()
	gapY := lo
	if hi > lo {
		gapY = lo + rng.Intn(hi-lo+1)
	}
	return &Obstacle{
		X:    x,
		GapY: float64(gapY),
		geom: geom,
	}
}

// Tick moves the obstacle left by the scroll speed.
func (o *Obstacle) Tick() {
	o.X -= o.geom.Speed
}

// Bounds returns the upper and lower collision rectangles. Either may be
// empty when padding consumes the whole segment.
func (o *Obstacle) Bounds() (upper, lower core.Rect) {
	g := o.geom
	x := o.X + g.HPad
	w := g.Width - g.HPad*2

	upper = core.NewRect(x, 0, w, o.GapY-g.VPad)

	lowerY := o.GapY + g.GapHeight + g.VPad
	lower = core.NewRect(x, lowerY, w, g.FieldH-lowerY)
	return upper, lower
}

// CollidesWith reports whether the actor's box overlaps either segment.
func (o *Obstacle) CollidesWith(a *Actor) bool {
	box := a.Bounds()
	upper, lower := o.Bounds()
	return box.Intersects(upper) || box.Intersects(lower)
}

// Offscreen reports whether the trailing edge has left the field.
func (o *Obstacle) Offscreen() bool {
	return o.X+o.geom.Width < 0
}

// PassedBy marks the obstacle passed the first time its right edge is left
// of actorX and reports true only on that call.
func (o *Obstacle) PassedBy(actorX float64) bool {
	if o.Passed || o.X+o.geom.Width >= actorX {
		return false
	}
	o.Passed = true
	return true
}
