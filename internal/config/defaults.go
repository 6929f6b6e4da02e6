package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			GridSize:      20,
			InitialLength: 3,
		},
		PowerUp: SnakePowerUp{
			Every:      5,
			DurationMS: 5000,
		},
		Placement: SnakePlacement{
			MaxAttempts: 64,
		},
		Difficulty: DifficultyConfig{
			DefaultTier: int(TierEasy),
			Tiers: []TierConfig{
				{Level: 1, Name: "Easy", IntervalMS: 200},
				{Level: 2, Name: "Medium", IntervalMS: 150},
				{Level: 3, Name: "Hard", IntervalMS: 100},
			},
		},
		Profile: ProfileConfig{
			HistoryCap: 100,
		},
		Leaderboard: LeaderboardConfig{
			FetchLimit: 50,
			ShowLimit:  10,
		},
		Advisor: AdvisorConfig{
			Name:      "rules",
			TimeoutMS: 3000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
