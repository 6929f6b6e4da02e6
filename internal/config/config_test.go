package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/nagapatha/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded YAML and DefaultSnakeConfig differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  grid_size: 30\npowerup:\n  every: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error: %v", err)
	}
	if cfg.Board.GridSize != 30 || cfg.PowerUp.Every != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.PowerUp.DurationMS != 5000 || cfg.Board.InitialLength != 3 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}

	rules := cfg.Rules()
	if rules.GridSize != 30 || rules.InitialSnake[0] != (core.Point{X: 15, Y: 15}) {
		t.Errorf("rules = %+v", rules)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("difficulty:\n  default_tier: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("out-of-range tier: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
	}{
		{name: "tiny grid", modify: func(c *SnakeConfig) { c.Board.GridSize = 2 }},
		{name: "long snake", modify: func(c *SnakeConfig) { c.Board.InitialLength = 15 }},
		{name: "zero power-up interval", modify: func(c *SnakeConfig) { c.PowerUp.Every = 0 }},
		{name: "zero history", modify: func(c *SnakeConfig) { c.Profile.HistoryCap = 0 }},
		{name: "fetch below show", modify: func(c *SnakeConfig) { c.Leaderboard.FetchLimit = 5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in       string
		expected Tier
	}{
		{"1", TierEasy},
		{"easy", TierEasy},
		{"Medium", TierMedium},
		{" 2 ", TierMedium},
		{"HARD", TierHard},
		{"3", TierHard},
	}

	for _, tc := range tests {
		got, err := ParseTier(tc.in)
		if err != nil || got != tc.expected {
			t.Errorf("ParseTier(%q) = %v, %v; expected %v", tc.in, got, err, tc.expected)
		}
	}

	for _, bad := range []string{"", "0", "4", "insane"} {
		if _, err := ParseTier(bad); err == nil {
			t.Errorf("ParseTier(%q) should fail", bad)
		}
	}
}

func TestTierTable(t *testing.T) {
	table := DefaultTierTable()

	expected := map[Tier]time.Duration{
		TierEasy:   200 * time.Millisecond,
		TierMedium: 150 * time.Millisecond,
		TierHard:   100 * time.Millisecond,
	}
	for tier, d := range expected {
		if got := table.Interval(tier); got != d {
			t.Errorf("Interval(%v) = %v, expected %v", tier, got, d)
		}
	}

	// Out-of-range tiers clamp.
	if table.Interval(0) != 200*time.Millisecond || table.Interval(9) != 100*time.Millisecond {
		t.Error("out-of-range tiers should clamp")
	}

	custom := NewTierTable(DifficultyConfig{Tiers: []TierConfig{
		{Level: 3, Name: "Nightmare", IntervalMS: 60},
		{Level: 8, Name: "ignored", IntervalMS: 1},
	}})
	if custom.Interval(TierHard) != 60*time.Millisecond || custom.Name(TierHard) != "Nightmare" {
		t.Error("custom tier not applied")
	}
	if custom.Interval(TierEasy) != 200*time.Millisecond || custom.Name(TierEasy) != "Easy" {
		t.Error("unspecified tier should keep its default")
	}
}

func TestClampTier(t *testing.T) {
	if ClampTier(-3) != TierEasy || ClampTier(2) != TierMedium || ClampTier(10) != TierHard {
		t.Error("ClampTier returned an unexpected value")
	}
}
