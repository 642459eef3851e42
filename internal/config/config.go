// Package config provides YAML-based game configuration loading and
// validation for the flappy tunables.
package config

import (
	"errors"
	"fmt"
)

// ReferenceTickRate is the rate the per-tick physics values are tuned for.
// Millisecond settings are converted to ticks at this rate, so the world
// plays the same whatever rate a frontend paces it at.
const ReferenceTickRate = 60

// FlappyConfig contains all tunables for the game. Values are read once at
// startup and are not mutated while a game is running.
type FlappyConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Actor     ActorConfig    `yaml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Assets    AssetsConfig   `yaml:"assets"`
	Debug     bool           `yaml:"debug"` // Draw collision rectangles atop sprites
}

// FieldConfig defines the logical play field and the rate frontends pace
// ticks at. Changing TickRate speeds the whole game up or down.
type FieldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity after a jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle movement per tick
}

// ActorConfig defines the player sprite geometry.
type ActorConfig struct {
	VisualRadius      float64 `yaml:"visual_radius"`       // Used for drawing and bounds death
	CollisionHalfSize float64 `yaml:"collision_half_size"` // Used for obstacle hits
	RotationGain      float64 `yaml:"rotation_gain"`
	MaxRotation       float64 `yaml:"max_rotation"` // Degrees
}

// ObstacleConfig defines obstacle geometry and spawning.
type ObstacleConfig struct {
	Width             float64 `yaml:"width"`
	GapHeight         float64 `yaml:"gap_height"`
	SpawnMargin       int     `yaml:"spawn_margin"` // Minimum segment height above and below the gap
	SpawnIntervalMS   int     `yaml:"spawn_interval_ms"`
	FirstOffset       float64 `yaml:"first_offset"` // Distance past the right edge of the pre-spawned obstacle
	HorizontalPadding float64 `yaml:"horizontal_padding"`
	VerticalPadding   float64 `yaml:"vertical_padding"`
}

// AssetsConfig locates the optional sprite images.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// SpawnIntervalTicks returns the spawn interval in ticks at
// ReferenceTickRate, rounded to the nearest tick and at least one.
func (o ObstacleConfig) SpawnIntervalTicks() uint64 {
	ticks := (o.SpawnIntervalMS*ReferenceTickRate + 500) / 1000
	return uint64(max(ticks, 1))
}

// Validate checks that the configuration can drive a simulation.
// A gap range that is too small for the field is not an error; the
// obstacle spawner clamps it.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Field.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Field.TickRate))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width must be positive, got %v", c.Obstacles.Width))
	}
	if c.Obstacles.GapHeight <= 0 {
		errs = append(errs, fmt.Errorf("gap_height must be positive, got %v", c.Obstacles.GapHeight))
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS))
	}
	if c.Actor.VisualRadius <= 0 || c.Actor.CollisionHalfSize <= 0 {
		errs = append(errs, errors.New("actor sizes must be positive"))
	}
	if c.Actor.MaxRotation < 0 {
		errs = append(errs, fmt.Errorf("max_rotation must not be negative, got %v", c.Actor.MaxRotation))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
