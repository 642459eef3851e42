package core

// Phase is the round state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ActorView is a read-only copy of the actor for renderers.
type ActorView struct {
	X, Y     float64
	Velocity float64
	Rotation float64 // Degrees, positive = nose up
	Radius   float64
	Bounds   Rect
}

// ObstacleView is a read-only copy of one obstacle for renderers.
type ObstacleView struct {
	X, GapY      float64
	Width        float64
	GapHeight    float64
	Passed       bool
	Upper, Lower Rect // Collision rectangles
}

// Snapshot captures the complete game state for rendering, determinism
// testing and replay. It shares no memory with the game.
type Snapshot struct {
	Tick      uint64
	Round     int
	Phase     Phase
	Score     int
	FieldW    float64
	FieldH    float64
	Debug     bool
	Actor     ActorView
	Obstacles []ObstacleView
}
