package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Actor is the player sprite. Its x position never changes after spawn;
// gravity and jumps act on the vertical axis only.
type Actor struct {
	x, y     float64
	velocity float64 // Positive = falling
	rotation float64 // Degrees, visual only

	physics config.PhysicsConfig
	shape   config.ActorConfig
}

// NewActor creates an actor at rest at (x, y).
func NewActor(x, y float64, physics config.PhysicsConfig, shape config.ActorConfig) *Actor {
	return &Actor{
		x:       x,
		y:       y,
		physics: physics,
		shape:   shape,
	}
}

// X returns the fixed horizontal position.
func (a *Actor) X() float64 { return a.x }

// Y returns the vertical position of the sprite center.
func (a *Actor) Y() float64 { return a.y }

// Velocity returns the current vertical velocity.
func (a *Actor) Velocity() float64 { return a.velocity }

// Rotation returns the visual tilt in degrees, within [-max, +max].
func (a *Actor) Rotation() float64 { return a.rotation }

// Radius returns the visual radius.
func (a *Actor) Radius() float64 { return a.shape.VisualRadius }

// Jump overwrites the velocity with the jump impulse. It never accumulates
// with the previous velocity.
func (a *Actor) Jump() {
	a.velocity = a.physics.JumpImpulse
}

// Tick advances one step: velocity first, then position.
func (a *Actor) Tick() {
	a.velocity += a.physics.Gravity
	a.y += a.velocity
	limit := a.shape.MaxRotation
	a.rotation = core.ClampF(-a.velocity*a.shape.RotationGain, -limit, limit)
}

// Bounds returns the collision box, smaller than the visual sprite.
func (a *Actor) Bounds() core.Rect {
	return core.RectAround(a.x, a.y, a.shape.CollisionHalfSize)
}

// OutOfBounds reports whether the visual extent crosses the top or bottom
// of a field of the given height.
func (a *Actor) OutOfBounds(fieldH float64) bool {
	r := a.shape.VisualRadius
	return a.y-r < 0 || a.y+r > fieldH
}
