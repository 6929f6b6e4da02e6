// Package engine implements the snake simulation as a pure state machine.
//
// All game rules live in Apply, which takes a State and an Event and returns
// the next State together with the side effects a driver must carry out
// (scheduling ticks, starting timers, playing sounds, submitting scores).
// The engine never sleeps, starts goroutines or reads the wall clock.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/nagapatha/internal/core"
)

// Default rule values.
const (
	DefaultGridSize             = 20
	DefaultPowerUpEvery         = 5
	DefaultPowerUpDuration      = 5 * time.Second
	DefaultMaxPlacementAttempts = 64
	DefaultInitialLength        = 3
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("engine: invalid rules")

// Rules holds the constants of a game. Rules are fixed for the lifetime of a State.
type Rules struct {
	GridSize             int
	InitialSnake         []core.Point // head first
	InitialDirection     core.Direction
	PowerUpEvery         int           // a power-up target spawns on every multiple of this score
	PowerUpDuration      time.Duration // how long the wraparound buff lasts
	MaxPlacementAttempts int           // random samples before falling back to a scan
}

// DefaultRules returns the standard 20x20 rules.
func DefaultRules() Rules {
	return RulesForGrid(DefaultGridSize)
}

// RulesForGrid returns default rules on a size x size board with the
// initial snake laid out horizontally from the center, facing right.
func RulesForGrid(size int) Rules {
	mid := size / 2
	snake := make([]core.Point, 0, DefaultInitialLength)
	for i := range DefaultInitialLength {
		snake = append(snake, core.Point{X: mid - i, Y: mid})
	}
	return Rules{
		GridSize:             size,
		InitialSnake:         snake,
		InitialDirection:     core.DirRight,
		PowerUpEvery:         DefaultPowerUpEvery,
		PowerUpDuration:      DefaultPowerUpDuration,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	if r.GridSize < 4 {
		return fmt.Errorf("%w: grid size %d is smaller than 4", ErrInvalidRules, r.GridSize)
	}
	if len(r.InitialSnake) == 0 {
		return fmt.Errorf("%w: initial snake is empty", ErrInvalidRules)
	}
	if !r.InitialDirection.Valid() {
		return fmt.Errorf("%w: unknown initial direction %d", ErrInvalidRules, r.InitialDirection)
	}
	seen := make(map[core.Point]bool, len(r.InitialSnake))
	for i, p := range r.InitialSnake {
		if !p.InBounds(r.GridSize) {
			return fmt.Errorf("%w: initial segment %v is off the board", ErrInvalidRules, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: initial segment %v is duplicated", ErrInvalidRules, p)
		}
		seen[p] = true
		if i > 0 {
			prev := r.InitialSnake[i-1]
			if core.Abs(prev.X-p.X)+core.Abs(prev.Y-p.Y) != 1 {
				return fmt.Errorf("%w: initial snake is not contiguous at %v", ErrInvalidRules, p)
			}
		}
	}
	if len(r.InitialSnake) > 1 {
		// The second segment must not sit in front of the head.
		if r.InitialSnake[0].Add(r.InitialDirection.Vector()) == r.InitialSnake[1] {
			return fmt.Errorf("%w: initial direction points into the body", ErrInvalidRules)
		}
	}
	if r.PowerUpEvery <= 0 {
		return fmt.Errorf("%w: power-up interval must be positive", ErrInvalidRules)
	}
	if r.PowerUpDuration <= 0 {
		return fmt.Errorf("%w: power-up duration must be positive", ErrInvalidRules)
	}
	if r.MaxPlacementAttempts < 0 {
		return fmt.Errorf("%w: negative placement attempts", ErrInvalidRules)
	}
	return nil
}
