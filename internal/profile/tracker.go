package profile

import (
	"sync"
	"time"

	"github.com/vovakirdan/nagapatha/internal/advisor"
	"github.com/vovakirdan/nagapatha/internal/config"
)

// Tracker guards a Profile shared between the game loop and the front end.
// Every mutation publishes the new profile on Changed.
type Tracker struct {
	mu         sync.Mutex
	p          Profile
	historyCap int
	changed    chan Profile
}

// NewTracker wraps an initial profile. historyCap <= 0 uses DefaultHistoryCap.
func NewTracker(initial Profile, historyCap int) *Tracker {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	initial.SetTier(initial.Tier)
	return &Tracker{
		p:          initial.Clone(),
		historyCap: historyCap,
		changed:    make(chan Profile, 1),
	}
}

// Changed delivers the latest profile after each mutation. Only the most
// recent value is buffered; slow readers skip intermediate updates.
func (t *Tracker) Changed() <-chan Profile {
	return t.changed
}

// Profile returns a copy of the current profile.
func (t *Tracker) Profile() Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Clone()
}

// Tier returns the current difficulty tier.
func (t *Tracker) Tier() config.Tier {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Tier
}

// SetTier changes the difficulty tier.
func (t *Tracker) SetTier(tier config.Tier) {
	t.update(func(p *Profile) { p.SetTier(tier) })
}

// GameStarted counts a new game.
func (t *Tracker) GameStarted() {
	t.update(func(p *Profile) { p.GamesPlayed++ })
}

// SessionEnded records a finished game.
func (t *Tracker) SessionEnded(elapsed time.Duration, score int) {
	t.update(func(p *Profile) {
		p.AddSession(elapsed, t.historyCap)
		p.LastScore = score
		p.OfferHighScore(score)
	})
}

// OfferHighScore raises the high score if score beats it.
func (t *Tracker) OfferHighScore(score int) bool {
	var raised bool
	t.update(func(p *Profile) { raised = p.OfferHighScore(score) })
	return raised
}

// ResetStats restores the default profile, keeping the name.
func (t *Tracker) ResetStats() {
	t.update(func(p *Profile) { p.ResetStats() })
}

// AdvisorRequest builds an advisor request from the current statistics.
func (t *Tracker) AdvisorRequest() advisor.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return advisor.Request{
		CurrentTier:           t.p.Tier,
		LastScore:             t.p.LastScore,
		HighScore:             t.p.HighScore,
		AverageSessionSeconds: t.p.AverageSessionSeconds(),
		GamesPlayed:           t.p.GamesPlayed,
	}
}

func (t *Tracker) update(fn func(*Profile)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.p)

	// Replace any unread value so the channel always holds the newest.
	select {
	case <-t.changed:
	default:
	}
	select {
	case t.changed <- t.p.Clone():
	default:
	}
}
