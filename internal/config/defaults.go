package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:    40,
			Height:   20,
			CellSize: 1.0,
		},
		Snake: SnakeStart{
			StartX: 0,
			StartY: 0,
			Length: 3,
		},
		Tick: TickConfig{
			Interval:    150 * time.Millisecond,
			MinInterval: 60 * time.Millisecond,
		},
		Food: FoodConfig{
			Policy: FoodPolicyStrict,
			Margin: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
