package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads the snake configuration. Values missing from a file keep their defaults.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse overlays YAML data on the hardcoded defaults.
func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ParsePreset converts a CLI value into a preset. An empty string is valid and
// means "leave the config alone".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the base cadence based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Tick.Interval = 200 * time.Millisecond
	case DifficultyHard:
		cfg.Tick.Interval = 100 * time.Millisecond
	}
}

// Validate reports the first impossible value in cfg.
func (c SnakeConfig) Validate() error {
	g := c.GridModel()

	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("%w: grid %dx%d must be at least 4x4", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %v must be positive", ErrInvalid, c.Grid.CellSize)
	}
	if c.Snake.Length < 2 {
		return fmt.Errorf("%w: snake length %d must be at least 2", ErrInvalid, c.Snake.Length)
	}

	head := c.Start()
	tail := head
	tail.X -= c.Snake.Length - 1
	if g.OnWall(head) || g.OnWall(tail) {
		return fmt.Errorf("%w: snake from %v to %v does not fit inside the walls", ErrInvalid, tail, head)
	}

	if c.Tick.Interval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalid, c.Tick.Interval)
	}
	if c.Tick.MinInterval <= 0 || c.Tick.MinInterval > c.Tick.Interval {
		return fmt.Errorf("%w: min_interval %v must be positive and not above interval %v",
			ErrInvalid, c.Tick.MinInterval, c.Tick.Interval)
	}

	switch c.Food.Policy {
	case FoodPolicyStrict, FoodPolicyMinimal:
	default:
		return fmt.Errorf("%w: unknown food policy %q", ErrInvalid, c.Food.Policy)
	}
	if c.Food.Margin < 0 {
		return fmt.Errorf("%w: food margin %d must not be negative", ErrInvalid, c.Food.Margin)
	}
	if g.Interior(c.Food.Margin).Empty() {
		return fmt.Errorf("%w: food margin %d leaves no cells to spawn in", ErrInvalid, c.Food.Margin)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}

	return nil
}
