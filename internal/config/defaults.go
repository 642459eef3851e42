package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration: an 800x600 field
// at 60 ticks per second.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -10,
			ScrollSpeed: 3,
		},
		Actor: ActorConfig{
			VisualRadius:      30,
			CollisionHalfSize: 12,
			RotationGain:      3,
			MaxRotation:       25,
		},
		Obstacles: ObstacleConfig{
			Width:             70,
			GapHeight:         100,
			SpawnMargin:       150,
			SpawnIntervalMS:   1500,
			FirstOffset:       200,
			HorizontalPadding: 25,
			VerticalPadding:   20,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
