package session

import (
	"testing"
	"time"
)

func TestManualClockFiresInOrder(t *testing.T) {
	c := NewManualClock(t0)
	late := c.NewTimer(300 * time.Millisecond)
	early := c.NewTimer(100 * time.Millisecond)

	c.Advance(100 * time.Millisecond)
	select {
	case at := <-early.C():
		if !at.Equal(t0.Add(100 * time.Millisecond)) {
			t.Errorf("early fired at %v", at)
		}
	default:
		t.Fatal("early timer should have fired")
	}
	select {
	case <-late.C():
		t.Fatal("late timer fired too soon")
	default:
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", c.Pending())
	}

	c.Advance(time.Second)
	if _, ok := <-late.C(); !ok {
		t.Fatal("late timer channel closed")
	}
	if !c.Now().Equal(t0.Add(1100 * time.Millisecond)) {
		t.Errorf("Now() = %v", c.Now())
	}
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock(t0)
	tm := c.NewTimer(time.Second)

	if !tm.Stop() {
		t.Error("Stop on a pending timer should return true")
	}
	if tm.Stop() {
		t.Error("second Stop should return false")
	}

	c.Advance(2 * time.Second)
	select {
	case <-tm.C():
		t.Error("stopped timer fired")
	default:
	}
}

func TestRealClockTimer(t *testing.T) {
	var c Clock = RealClock{}
	tm := c.NewTimer(time.Millisecond)
	select {
	case <-tm.C():
	case <-time.After(time.Second):
		t.Fatal("real timer did not fire")
	}
	if tm.Stop() {
		t.Error("Stop after firing should return false")
	}
}
