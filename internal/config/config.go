// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// FroggerConfig contains all tunable parameters for the game.
type FroggerConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Traffic    TrafficConfig    `yaml:"traffic"`
	Collision  CollisionConfig  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the fixed board layout.
// There is exactly one layout per game; difficulty never changes it.
type BoardConfig struct {
	Columns     int `yaml:"columns"`
	Lanes       int `yaml:"lanes"`
	CarsPerLane int `yaml:"cars_per_lane"`
}

// TrafficConfig defines car generation and movement parameters.
// Car speed for a lane is drawn as
//
//	(1 + jitter·U) × (base_speed + lane·lane_increment)
//
// with U uniform in [0, 1), signed by the lane's direction.
type TrafficConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`     // Cells per tick for lane 0, before jitter
	LaneIncrement float64 `yaml:"lane_increment"` // Speed added per lane index
	SpeedJitter   float64 `yaml:"speed_jitter"`   // Max fractional random speed bonus
	WrapMargin    float64 `yaml:"wrap_margin"`    // Edge buffer before a car recycles
}

// CollisionConfig defines the agent-vs-car overlap test.
type CollisionConfig struct {
	// OverlapThreshold is the column distance below which the agent and a
	// car count as collided. Below 1.0 because a car's visual footprint is
	// narrower than a full cell.
	OverlapThreshold float64 `yaml:"overlap_threshold"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to traffic speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
