package core

// DefaultMinSwipeDistance is the shortest gesture, in pixels, that counts as a swipe.
const DefaultMinSwipeDistance = 20

// Swipe classifies touch gestures into directions.
// A gesture yields at most one direction, either while the finger moves or
// when it lifts, whichever crosses the threshold first.
type Swipe struct {
	MinDistance int

	startX, startY int
	active         bool
	fired          bool
}

// NewSwipe creates a classifier with the default threshold.
func NewSwipe() *Swipe {
	return &Swipe{MinDistance: DefaultMinSwipeDistance}
}

// Begin records the start of a gesture.
func (s *Swipe) Begin(x, y int) {
	s.startX, s.startY = x, y
	s.active = true
	s.fired = false
}

// Move reports a direction the first time the gesture crosses the threshold.
func (s *Swipe) Move(x, y int) (Direction, bool) {
	if !s.active || s.fired {
		return DirRight, false
	}
	d, ok := ClassifySwipe(x-s.startX, y-s.startY, s.MinDistance)
	if ok {
		s.fired = true
	}
	return d, ok
}

// End finishes the current gesture. It reports a direction only if Move has
// not already produced one for this gesture.
func (s *Swipe) End(x, y int) (Direction, bool) {
	d, ok := s.Move(x, y)
	s.active = false
	return d, ok
}

// Cancel discards the gesture in progress.
func (s *Swipe) Cancel() {
	s.active = false
}

// ClassifySwipe maps a gesture delta to a direction. The axis with the larger
// absolute displacement wins; ties go to the vertical axis. The winning
// displacement must reach minDistance.
func ClassifySwipe(dx, dy, minDistance int) (Direction, bool) {
	if Abs(dx) > Abs(dy) {
		if Abs(dx) < minDistance {
			return DirRight, false
		}
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if Abs(dy) < minDistance || dy == 0 {
		return DirRight, false
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}
