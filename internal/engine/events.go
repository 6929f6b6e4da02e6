package engine

import (
	"time"

	"github.com/vovakirdan/nagapatha/internal/core"
)

// Event is an input to Apply.
type Event interface {
	isEvent()
}

// Start begins a game from Idle. At is the session start timestamp.
type Start struct {
	At time.Time
}

// Pause suspends a running game.
type Pause struct{}

// Resume continues a paused game.
type Resume struct{}

// ChangeDirection queues a new direction for the next tick.
type ChangeDirection struct {
	Dir core.Direction
}

// Tick advances the snake by one cell. At is used to compute the session
// length if the move ends the game.
type Tick struct {
	At time.Time
}

// End finishes a running game.
type End struct {
	At     time.Time
	Reason EndReason
}

// Reset discards the current game and returns to Idle.
type Reset struct{}

// DeactivatePowerUp is delivered when a power-up timer expires.
// Events carrying a stale generation are ignored.
type DeactivatePowerUp struct {
	Generation uint64
}

func (Start) isEvent()             {}
func (Pause) isEvent()             {}
func (Resume) isEvent()            {}
func (ChangeDirection) isEvent()   {}
func (Tick) isEvent()              {}
func (End) isEvent()               {}
func (Reset) isEvent()             {}
func (DeactivatePowerUp) isEvent() {}

// EndReason records why a game ended.
type EndReason string

const (
	EndNone      EndReason = ""
	EndWall      EndReason = "wall"
	EndSelf      EndReason = "self"
	EndBoardFull EndReason = "board_full"
	EndManual    EndReason = "manual"
)
