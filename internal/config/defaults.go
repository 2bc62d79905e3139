package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default game configuration.
// Kept in sync with defaults/frogger.yaml as the last-resort fallback.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Board: BoardConfig{
			Columns:     7,
			Lanes:       4,
			CarsPerLane: 2,
		},
		Traffic: TrafficConfig{
			BaseSpeed:     0.12,
			LaneIncrement: 0.03,
			SpeedJitter:   0.5,
			WrapMargin:    0.5,
		},
		Collision: CollisionConfig{
			OverlapThreshold: 0.7,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFroggerYAML
}
