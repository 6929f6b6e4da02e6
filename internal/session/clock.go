package session

import (
	"sort"
	"sync"
	"time"
)

// Timer is a one-shot timer that delivers the fire time on C.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock creates timers and reports the current time.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// RealClock is the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) NewTimer(d time.Duration) Timer {
	return realTimer{time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r realTimer) C() <-chan time.Time { return r.t.C }
func (r realTimer) Stop() bool          { return r.t.Stop() }

// ManualClock is a Clock that only moves when Advance is called.
// It is safe for concurrent use.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

// NewManualClock returns a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// NewTimer registers a timer that fires once the clock reaches now+d.
func (m *ManualClock) NewTimer(d time.Duration) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{
		clock:    m,
		deadline: m.now.Add(d),
		c:        make(chan time.Time, 1),
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward and fires every timer whose deadline has
// passed, earliest first.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)

	sort.SliceStable(m.timers, func(i, j int) bool {
		return m.timers[i].deadline.Before(m.timers[j].deadline)
	})
	kept := m.timers[:0]
	for _, t := range m.timers {
		if t.deadline.After(m.now) {
			kept = append(kept, t)
			continue
		}
		t.c <- t.deadline
	}
	m.timers = kept
}

// Pending returns the number of timers that have not fired or been stopped.
func (m *ManualClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *ManualClock) remove(t *manualTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	c        chan time.Time
}

func (t *manualTimer) C() <-chan time.Time { return t.c }
func (t *manualTimer) Stop() bool          { return t.clock.remove(t) }
