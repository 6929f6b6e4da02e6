package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Tier is a difficulty level. Higher tiers tick faster.
type Tier int

const (
	TierEasy   Tier = 1
	TierMedium Tier = 2
	TierHard   Tier = 3

	MinTier = TierEasy
	MaxTier = TierHard
)

// ClampTier restricts a tier to [MinTier, MaxTier].
func ClampTier(t Tier) Tier {
	return max(MinTier, min(MaxTier, t))
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return "Tier " + strconv.Itoa(int(t))
	}
}

// ParseTier accepts a tier number ("1".."3") or name ("easy", "medium", "hard").
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy":
		return TierEasy, nil
	case "2", "medium", "normal":
		return TierMedium, nil
	case "3", "hard":
		return TierHard, nil
	}
	return 0, fmt.Errorf("config: unknown difficulty %q (want 1-3 or easy/medium/hard)", s)
}

var defaultIntervals = map[Tier]time.Duration{
	TierEasy:   200 * time.Millisecond,
	TierMedium: 150 * time.Millisecond,
	TierHard:   100 * time.Millisecond,
}

// TierTable resolves tiers to tick intervals and display names.
type TierTable struct {
	intervals map[Tier]time.Duration
	names     map[Tier]string
}

// NewTierTable builds a table from configuration. Tiers missing from cfg
// keep their default interval.
func NewTierTable(cfg DifficultyConfig) *TierTable {
	t := &TierTable{
		intervals: make(map[Tier]time.Duration, len(defaultIntervals)),
		names:     make(map[Tier]string, len(defaultIntervals)),
	}
	for tier, d := range defaultIntervals {
		t.intervals[tier] = d
		t.names[tier] = tier.String()
	}
	for _, tc := range cfg.Tiers {
		tier := Tier(tc.Level)
		if tier < MinTier || tier > MaxTier {
			continue
		}
		if tc.IntervalMS > 0 {
			t.intervals[tier] = time.Duration(tc.IntervalMS) * time.Millisecond
		}
		if tc.Name != "" {
			t.names[tier] = tc.Name
		}
	}
	return t
}

// DefaultTierTable returns the 200/150/100 ms table.
func DefaultTierTable() *TierTable {
	return NewTierTable(DifficultyConfig{})
}

// Interval returns the tick period for a tier. Out-of-range tiers are clamped.
func (t *TierTable) Interval(tier Tier) time.Duration {
	return t.intervals[ClampTier(tier)]
}

// Name returns the display name for a tier.
func (t *TierTable) Name(tier Tier) string {
	return t.names[ClampTier(tier)]
}
