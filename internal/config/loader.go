package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/nagapatha/internal/core"
	"github.com/vovakirdan/nagapatha/internal/engine"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.nagapatha/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnake decodes YAML over the hard-coded defaults so that a partial
// file only overrides the keys it sets.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
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
	return filepath.Join(home, ".nagapatha", "configs", filename)
}

// Validate checks value ranges.
func (c SnakeConfig) Validate() error {
	if c.Board.InitialLength < 1 || c.Board.InitialLength > c.Board.GridSize/2 {
		return fmt.Errorf("%w: initial_length %d must be between 1 and %d",
			ErrInvalidConfig, c.Board.InitialLength, c.Board.GridSize/2)
	}
	if c.Difficulty.DefaultTier < int(MinTier) || c.Difficulty.DefaultTier > int(MaxTier) {
		return fmt.Errorf("%w: default_tier %d out of range", ErrInvalidConfig, c.Difficulty.DefaultTier)
	}
	if c.Profile.HistoryCap < 1 {
		return fmt.Errorf("%w: history_cap must be positive", ErrInvalidConfig)
	}
	if c.Leaderboard.ShowLimit < 1 || c.Leaderboard.FetchLimit < c.Leaderboard.ShowLimit {
		return fmt.Errorf("%w: leaderboard limits %d/%d", ErrInvalidConfig,
			c.Leaderboard.FetchLimit, c.Leaderboard.ShowLimit)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Rules converts the board and power-up sections into engine rules.
func (c SnakeConfig) Rules() engine.Rules {
	r := engine.RulesForGrid(c.Board.GridSize)
	if c.Board.InitialLength > 0 {
		mid := c.Board.GridSize / 2
		r.InitialSnake = make([]core.Point, 0, c.Board.InitialLength)
		for i := range c.Board.InitialLength {
			r.InitialSnake = append(r.InitialSnake, core.Point{X: mid - i, Y: mid})
		}
	}
	r.PowerUpEvery = c.PowerUp.Every
	r.PowerUpDuration = time.Duration(c.PowerUp.DurationMS) * time.Millisecond
	r.MaxPlacementAttempts = c.Placement.MaxAttempts
	return r
}

// Tiers returns the tier table for the difficulty section.
func (c SnakeConfig) Tiers() *TierTable {
	return NewTierTable(c.Difficulty)
}

// DefaultTier returns the starting tier.
func (c SnakeConfig) DefaultTier() Tier {
	return ClampTier(Tier(c.Difficulty.DefaultTier))
}

// AdvisorTimeout returns the advisor call deadline.
func (c SnakeConfig) AdvisorTimeout() time.Duration {
	if c.Advisor.TimeoutMS <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.Advisor.TimeoutMS) * time.Millisecond
}
