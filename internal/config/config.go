// Package config provides YAML-based configuration loading and difficulty
// management for the snake simulation.
package config

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all load-time configuration for a simulation run.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Snake      SnakeStart       `yaml:"snake"`
	Tick       TickConfig       `yaml:"tick"`
	Food       FoodConfig       `yaml:"food"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playing field. Walls sit at ±width/2 and ±height/2.
type GridConfig struct {
	Width    int     `yaml:"width"`     // Full extent in cells
	Height   int     `yaml:"height"`    // Full extent in cells
	CellSize float64 `yaml:"cell_size"` // World units per cell
}

// SnakeStart defines where and how long the snake is created.
// The head sits at (start_x, start_y) with the body trailing to the left.
type SnakeStart struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Length int `yaml:"length"`
}

// TickConfig defines the movement cadence.
type TickConfig struct {
	Interval    time.Duration `yaml:"interval"`     // Time between movement steps
	MinInterval time.Duration `yaml:"min_interval"` // Floor once difficulty speeds the snake up
}

// FoodPolicy selects which cells the food spawner may choose.
type FoodPolicy string

const (
	// FoodPolicyStrict excludes cells occupied by the snake.
	FoodPolicyStrict FoodPolicy = "strict"
	// FoodPolicyMinimal picks any interior cell, even under the snake.
	FoodPolicyMinimal FoodPolicy = "minimal"
)

// FoodConfig defines food spawning parameters.
type FoodConfig struct {
	Policy FoodPolicy `yaml:"policy"`
	Margin int        `yaml:"margin"` // Extra cells kept clear next to the walls
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Food eaten / ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// GridModel returns the grid described by the config.
func (c SnakeConfig) GridModel() core.Grid {
	return core.Grid{
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
		CellSize: c.Grid.CellSize,
	}
}

// Start returns the initial head cell.
func (c SnakeConfig) Start() core.Cell {
	return core.Cell{X: c.Snake.StartX, Y: c.Snake.StartY}
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
