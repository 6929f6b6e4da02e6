package engine

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/vovakirdan/nagapatha/internal/core"
)

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is one immutable game session. Apply never mutates its argument:
// every transition works on a copy, and slices are cloned before they change.
type State struct {
	rules Rules
	rng   rand.PCG

	phase      Phase
	snake      []core.Point // head at index 0
	direction  core.Direction
	pending    core.Direction // applied on the next tick
	food       core.Point
	hasFood    bool
	powerUp    core.Point
	hasPowerUp bool
	buff       bool
	buffGen    uint64
	score      int
	startedAt  time.Time
	reason     EndReason
}

// New creates an Idle game. Games created with the same rules and seed
// evolve identically under the same events.
func New(rules Rules, seed uint64) (State, error) {
	if err := rules.Validate(); err != nil {
		return State{}, err
	}
	s := State{
		rules: rules,
		rng:   *rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
	s.initSession()
	return s, nil
}

// initSession lays out a fresh snake and food on s.
func (s *State) initSession() {
	s.phase = PhaseIdle
	s.snake = slices.Clone(s.rules.InitialSnake)
	s.direction = s.rules.InitialDirection
	s.pending = s.rules.InitialDirection
	s.hasPowerUp = false
	s.buff = false
	s.score = 0
	s.startedAt = time.Time{}
	s.reason = EndNone
	s.food, s.hasFood = s.place(s.occupied(false))
}

// Rules returns the rules the game was created with.
func (s State) Rules() Rules { return s.rules }

// Phase returns the lifecycle stage.
func (s State) Phase() Phase { return s.phase }

// Running reports whether ticks are being applied.
func (s State) Running() bool { return s.phase == PhaseRunning }

// Paused reports whether the game is suspended.
func (s State) Paused() bool { return s.phase == PhasePaused }

// Over reports whether the game has ended.
func (s State) Over() bool { return s.phase == PhaseOver }

// Won reports whether the game ended because the snake filled the board.
func (s State) Won() bool { return s.phase == PhaseOver && s.reason == EndBoardFull }

// Snake returns a copy of the snake, head first.
func (s State) Snake() []core.Point { return slices.Clone(s.snake) }

// Head returns the head segment.
func (s State) Head() core.Point { return s.snake[0] }

// Len returns the number of segments.
func (s State) Len() int { return len(s.snake) }

// Direction returns the direction the snake last moved in. It changes only
// when a tick consumes the pending direction.
func (s State) Direction() core.Direction { return s.direction }

// PendingDirection returns the direction the next tick will move in.
// An accepted ChangeDirection updates this value immediately; a rejected
// reversal leaves it unchanged.
func (s State) PendingDirection() core.Direction { return s.pending }

// Food returns the food cell. The second result is false only when the
// board had no free cell left.
func (s State) Food() (core.Point, bool) { return s.food, s.hasFood }

// PowerUp returns the power-up target, if one is placed.
func (s State) PowerUp() (core.Point, bool) { return s.powerUp, s.hasPowerUp }

// BuffActive reports whether wall wraparound is in effect.
func (s State) BuffActive() bool { return s.buff }

// BuffGeneration returns the generation of the most recent power-up activation.
func (s State) BuffGeneration() uint64 { return s.buffGen }

// Score returns the number of food items eaten.
func (s State) Score() int { return s.score }

// StartedAt returns when the current session started.
func (s State) StartedAt() time.Time { return s.startedAt }

// EndReason returns why the game ended, or EndNone.
func (s State) EndReason() EndReason { return s.reason }
