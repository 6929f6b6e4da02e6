// Package config provides YAML-based game configuration loading and
// difficulty tier management for NāgaPatha.
package config

// SnakeConfig contains all configuration for the snake game and its
// collaborators.
type SnakeConfig struct {
	Board       SnakeBoard        `yaml:"board"`
	PowerUp     SnakePowerUp      `yaml:"powerup"`
	Placement   SnakePlacement    `yaml:"placement"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Profile     ProfileConfig     `yaml:"profile"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Advisor     AdvisorConfig     `yaml:"advisor"`
}

// SnakeBoard defines the playing field.
type SnakeBoard struct {
	GridSize      int `yaml:"grid_size"`
	InitialLength int `yaml:"initial_length"`
}

// SnakePowerUp defines the wraparound power-up.
type SnakePowerUp struct {
	Every      int `yaml:"every"`       // Spawn a target on every multiple of this score
	DurationMS int `yaml:"duration_ms"` // Buff length in real time
}

// SnakePlacement tunes food and power-up placement.
type SnakePlacement struct {
	MaxAttempts int `yaml:"max_attempts"` // Random samples before scanning for a free cell
}

// DifficultyConfig lists the difficulty tiers and the starting tier.
type DifficultyConfig struct {
	DefaultTier int          `yaml:"default_tier"`
	Tiers       []TierConfig `yaml:"tiers"`
}

// TierConfig maps a tier level to its tick interval.
type TierConfig struct {
	Level      int    `yaml:"level"`
	Name       string `yaml:"name"`
	IntervalMS int    `yaml:"interval_ms"`
}

// ProfileConfig bounds the session history kept per player.
type ProfileConfig struct {
	HistoryCap int `yaml:"history_cap"`
}

// LeaderboardConfig controls how many scores are read and shown.
type LeaderboardConfig struct {
	FetchLimit int `yaml:"fetch_limit"` // Rows read before de-duplication
	ShowLimit  int `yaml:"show_limit"`  // Rows shown after de-duplication
}

// AdvisorConfig selects the difficulty advisor.
type AdvisorConfig struct {
	Name      string `yaml:"name"`
	TimeoutMS int    `yaml:"timeout_ms"`
}
