package engine

import "time"

// Effect is a side effect requested by Apply. The engine never performs
// effects itself; a driver such as session.Controller does.
type Effect interface {
	isEffect()
}

// Cue names a sound to play.
type Cue string

const (
	CueEat     Cue = "eat"
	CueCrash   Cue = "crash"
	CuePowerUp Cue = "powerup"
	CueClick   Cue = "click"
)

// ScheduleTick asks the driver to deliver the next Tick after the interval
// of the current difficulty tier.
type ScheduleTick struct{}

// CancelTick asks the driver to drop any pending Tick.
type CancelTick struct{}

// StartPowerUpTimer asks the driver to deliver DeactivatePowerUp{Generation}
// after Duration, replacing any earlier power-up timer.
type StartPowerUpTimer struct {
	Generation uint64
	Duration   time.Duration
}

// CancelPowerUpTimer asks the driver to drop the pending power-up timer.
type CancelPowerUpTimer struct{}

// PlaySound asks the driver to play a cue.
type PlaySound struct {
	Cue Cue
}

// GameStarted is emitted when a game enters Running from Idle.
type GameStarted struct{}

// SessionEnded reports a completed session to the session tracker.
type SessionEnded struct {
	Elapsed time.Duration
	Score   int
	Reason  EndReason
}

// SubmitScore asks the driver to hand the final score to the score store.
// It is emitted at most once per game and only for positive scores.
type SubmitScore struct {
	Score int
}

// Restarted is emitted on Reset so the driver can allocate a new game identity.
type Restarted struct{}

// HighScoreCandidate offers a score to the player profile, which keeps it
// only if it beats the stored high score.
type HighScoreCandidate struct {
	Score int
}

func (ScheduleTick) isEffect()       {}
func (CancelTick) isEffect()         {}
func (StartPowerUpTimer) isEffect()  {}
func (CancelPowerUpTimer) isEffect() {}
func (PlaySound) isEffect()          {}
func (GameStarted) isEffect()        {}
func (SessionEnded) isEffect()       {}
func (SubmitScore) isEffect()        {}
func (Restarted) isEffect()          {}
func (HighScoreCandidate) isEffect() {}
