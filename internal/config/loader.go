package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFrogger loads the game configuration.
// Search order: customPath -> ~/.frogger/config.yaml -> ./configs/frogger.yaml -> embedded default
func LoadFrogger(customPath string) (FroggerConfig, error) {
	var cfg FroggerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/frogger.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFroggerYAML, &cfg); err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// sanitize enforces the structural minimums the grid model requires.
func sanitize(cfg FroggerConfig) FroggerConfig {
	if cfg.Board.Columns < 1 {
		cfg.Board.Columns = 1
	}
	if cfg.Board.Lanes < 1 {
		cfg.Board.Lanes = 1
	}
	if cfg.Board.CarsPerLane < 1 {
		cfg.Board.CarsPerLane = 1
	}
	if cfg.Collision.OverlapThreshold <= 0 {
		cfg.Collision.OverlapThreshold = DefaultFroggerConfig().Collision.OverlapThreshold
	}
	if cfg.Traffic.WrapMargin <= 0 {
		cfg.Traffic.WrapMargin = DefaultFroggerConfig().Traffic.WrapMargin
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", filename)
}

// ApplyFroggerPreset modifies the config based on a difficulty preset.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
