// Package profile keeps the player statistics that outlive a single game:
// difficulty tier, high score, games played and recent session lengths.
package profile

import (
	"slices"
	"time"

	"github.com/vovakirdan/nagapatha/internal/config"
)

// DefaultHistoryCap is the number of session durations kept.
const DefaultHistoryCap = 100

// Profile is a player's long-lived statistics.
type Profile struct {
	Name        string
	Tier        config.Tier
	HighScore   int
	LastScore   int
	GamesPlayed int
	Durations   []time.Duration // oldest first
}

// New returns a fresh profile on the easiest tier.
func New(name string) Profile {
	return Profile{Name: name, Tier: config.TierEasy}
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	p.Durations = slices.Clone(p.Durations)
	return p
}

// SetTier clamps and stores the tier.
func (p *Profile) SetTier(t config.Tier) {
	p.Tier = config.ClampTier(t)
}

// OfferHighScore raises the high score if score beats it.
func (p *Profile) OfferHighScore(score int) bool {
	if score <= p.HighScore {
		return false
	}
	p.HighScore = score
	return true
}

// AddSession appends a duration, dropping the oldest entries beyond limit.
func (p *Profile) AddSession(d time.Duration, limit int) {
	if d < 0 {
		d = 0
	}
	if limit <= 0 {
		limit = DefaultHistoryCap
	}
	p.Durations = append(p.Durations, d)
	if over := len(p.Durations) - limit; over > 0 {
		p.Durations = slices.Clone(p.Durations[over:])
	}
}

// AverageSession returns the mean session length, or 0 with no history.
func (p Profile) AverageSession() time.Duration {
	if len(p.Durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range p.Durations {
		total += d
	}
	return total / time.Duration(len(p.Durations))
}

// AverageSessionSeconds is AverageSession in fractional seconds.
func (p Profile) AverageSessionSeconds() float64 {
	return p.AverageSession().Seconds()
}

// ResetStats restores the default tier and clears all statistics.
func (p *Profile) ResetStats() {
	*p = New(p.Name)
}
