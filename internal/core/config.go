package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Field dimensions are logical pixels; frontends scale them to their surface.
type RuntimeConfig struct {
	FieldW   int   // Logical field width
	FieldH   int   // Logical field height
	TickRate int   // Frontend pacing in ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Draw raw collision rectangles atop sprites
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   800,
		FieldH:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall-clock time between ticks.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Restarted bool // The tick performed a full world reset
	Ended     bool // The round transitioned to game over during this tick
}
