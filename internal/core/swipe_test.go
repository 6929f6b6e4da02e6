package core

import "testing"

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		dir    Direction
		ok     bool
	}{
		{name: "right", dx: 40, dy: 5, dir: DirRight, ok: true},
		{name: "left", dx: -40, dy: 10, dir: DirLeft, ok: true},
		{name: "down", dx: 3, dy: 25, dir: DirDown, ok: true},
		{name: "up", dx: -3, dy: -25, dir: DirUp, ok: true},
		{name: "too short", dx: 12, dy: 8, ok: false},
		{name: "exact threshold", dx: 20, dy: 0, dir: DirRight, ok: true},
		{name: "no movement", dx: 0, dy: 0, ok: false},
		{name: "tie goes vertical", dx: 30, dy: -30, dir: DirUp, ok: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, ok := ClassifySwipe(tc.dx, tc.dy, DefaultMinSwipeDistance)
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if ok && dir != tc.dir {
				t.Errorf("dir = %v, expected %v", dir, tc.dir)
			}
		})
	}
}

func TestSwipeOneDirectionPerGesture(t *testing.T) {
	s := NewSwipe()
	s.Begin(100, 100)

	if _, ok := s.Move(105, 102); ok {
		t.Error("short move should not fire")
	}
	dir, ok := s.Move(140, 102)
	if !ok || dir != DirRight {
		t.Fatalf("Move = %v, %v, expected right", dir, ok)
	}
	if _, ok := s.Move(140, 200); ok {
		t.Error("second direction in the same gesture should be suppressed")
	}
	if _, ok := s.End(140, 200); ok {
		t.Error("End should not fire after Move already fired")
	}

	s.Begin(0, 0)
	dir, ok = s.End(0, -50)
	if !ok || dir != DirUp {
		t.Errorf("End = %v, %v, expected up", dir, ok)
	}
}

func TestSwipeWithoutBegin(t *testing.T) {
	s := NewSwipe()
	if _, ok := s.End(100, 0); ok {
		t.Error("End without Begin should not fire")
	}

	s.Begin(0, 0)
	s.Cancel()
	if _, ok := s.Move(100, 0); ok {
		t.Error("Move after Cancel should not fire")
	}
}

func TestActionDirection(t *testing.T) {
	for _, d := range Directions {
		a := ActionFor(d)
		got, ok := a.Direction()
		if !ok || got != d {
			t.Errorf("ActionFor(%v).Direction() = %v, %v", d, got, ok)
		}
	}
	if _, ok := ActionPause.Direction(); ok {
		t.Error("pause is not a movement action")
	}
}
