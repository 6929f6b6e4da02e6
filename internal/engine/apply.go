package engine

import (
	"slices"
	"time"

	"github.com/vovakirdan/nagapatha/internal/core"
)

// Apply returns the state that follows s after ev, and the effects the
// caller must carry out. Transitions that are not valid in the current phase
// leave the state unchanged and produce no effects.
func Apply(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Start:
		return s.start(e.At)
	case Pause:
		if s.phase != PhaseRunning {
			return s, nil
		}
		s.phase = PhasePaused
		return s, []Effect{CancelTick{}}
	case Resume:
		if s.phase != PhasePaused {
			return s, nil
		}
		s.phase = PhaseRunning
		return s, []Effect{ScheduleTick{}}
	case ChangeDirection:
		if s.phase != PhaseRunning || !e.Dir.Valid() || e.Dir.IsOpposite(s.direction) {
			return s, nil
		}
		s.pending = e.Dir
		return s, nil
	case Tick:
		if s.phase != PhaseRunning {
			return s, nil
		}
		return s.tick(e.At)
	case End:
		if s.phase != PhaseRunning {
			return s, nil
		}
		return s.end(e.At, e.Reason, nil)
	case Reset:
		s.initSession()
		return s, []Effect{CancelTick{}, CancelPowerUpTimer{}, Restarted{}}
	case DeactivatePowerUp:
		if !s.buff || e.Generation != s.buffGen {
			return s, nil
		}
		s.buff = false
		return s, nil
	default:
		return s, nil
	}
}

// Replay applies events in order starting from s and returns the final state
// together with every effect produced along the way.
func Replay(s State, events ...Event) (State, []Effect) {
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		s, effects = Apply(s, ev)
		all = append(all, effects...)
	}
	return s, all
}

func (s State) start(at time.Time) (State, []Effect) {
	if s.phase != PhaseIdle {
		return s, nil
	}
	s.initSession()
	s.phase = PhaseRunning
	s.startedAt = at
	return s, []Effect{GameStarted{}, PlaySound{Cue: CueClick}, ScheduleTick{}}
}

// tick moves the snake one cell and resolves collisions, food and power-ups.
func (s State) tick(at time.Time) (State, []Effect) {
	n := s.rules.GridSize
	s.direction = s.pending

	head := s.snake[0].Add(s.direction.Vector())
	if !head.InBounds(n) {
		if !s.buff {
			return s.end(at, EndWall, nil)
		}
		head = head.Wrap(n)
	}

	eating := s.hasFood && head == s.food
	if !s.buff && s.hitsBody(head, eating) {
		return s.end(at, EndSelf, nil)
	}

	next := make([]core.Point, 0, len(s.snake)+1)
	next = append(next, head)
	if eating {
		next = append(next, s.snake...)
	} else {
		next = append(next, s.snake[:len(s.snake)-1]...)
	}
	s.snake = next

	var effects []Effect
	if eating {
		s.score++
		effects = append(effects, PlaySound{Cue: CueEat}, HighScoreCandidate{Score: s.score})

		s.food, s.hasFood = s.place(s.occupied(false))
		if !s.hasFood {
			return s.end(at, EndBoardFull, effects)
		}
		if s.score%s.rules.PowerUpEvery == 0 && !s.hasPowerUp && !s.buff {
			s.powerUp, s.hasPowerUp = s.place(s.occupied(true))
		}
	} else if s.hasPowerUp && head == s.powerUp {
		s.hasPowerUp = false
		s.buff = true
		s.buffGen++
		effects = append(effects,
			PlaySound{Cue: CuePowerUp},
			CancelPowerUpTimer{},
			StartPowerUpTimer{Generation: s.buffGen, Duration: s.rules.PowerUpDuration},
		)
	}

	return s, append(effects, ScheduleTick{})
}

// end moves a running game to Over. prior effects from the same transition
// are kept in front of the end effects.
func (s State) end(at time.Time, reason EndReason, prior []Effect) (State, []Effect) {
	if reason == EndNone {
		reason = EndManual
	}
	s.phase = PhaseOver
	s.reason = reason
	s.buff = false

	elapsed := at.Sub(s.startedAt)
	if s.startedAt.IsZero() || elapsed < 0 {
		elapsed = 0
	}

	effects := slices.Clone(prior)
	effects = append(effects, CancelTick{}, CancelPowerUpTimer{})
	if reason == EndWall || reason == EndSelf {
		effects = append(effects, PlaySound{Cue: CueCrash})
	}
	effects = append(effects, SessionEnded{Elapsed: elapsed, Score: s.score, Reason: reason})
	if s.score > 0 {
		effects = append(effects, SubmitScore{Score: s.score})
	}
	return s, effects
}
