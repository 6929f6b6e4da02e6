package core

import "testing"

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected Point
	}{
		{name: "inside", p: Point{X: 3, Y: 4}, expected: Point{X: 3, Y: 4}},
		{name: "off left edge", p: Point{X: -1, Y: 5}, expected: Point{X: 19, Y: 5}},
		{name: "off right edge", p: Point{X: 20, Y: 5}, expected: Point{X: 0, Y: 5}},
		{name: "off top edge", p: Point{X: 7, Y: -1}, expected: Point{X: 7, Y: 19}},
		{name: "off bottom edge", p: Point{X: 7, Y: 20}, expected: Point{X: 7, Y: 0}},
		{name: "corner", p: Point{X: -1, Y: -1}, expected: Point{X: 19, Y: 19}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.p.Wrap(20)
			if got != tc.expected {
				t.Errorf("Wrap() = %v, expected %v", got, tc.expected)
			}
			if !got.InBounds(20) {
				t.Errorf("Wrap() result %v is out of bounds", got)
			}
		})
	}
}

func TestPointInBounds(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 19, Y: 19}, true},
		{Point{X: -1, Y: 0}, false},
		{Point{X: 0, Y: -1}, false},
		{Point{X: 20, Y: 0}, false},
		{Point{X: 0, Y: 20}, false},
	}

	for _, tc := range tests {
		if got := tc.p.InBounds(20); got != tc.expected {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
		if !d.IsOpposite(opp) {
			t.Errorf("%v.IsOpposite(%v) should be true", d, opp)
		}
		if d.IsOpposite(d) {
			t.Errorf("%v.IsOpposite(%v) should be false", d, d)
		}
		sum := d.Vector().Add(opp.Vector())
		if sum != (Point{}) {
			t.Errorf("vectors of %v and %v should cancel, got %v", d, opp, sum)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{5, 20, 5},
		{-1, 20, 19},
		{20, 20, 0},
		{-21, 20, 19},
		{3, 0, 0},
	}

	for _, tc := range tests {
		if got := Mod(tc.a, tc.n); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(0, 1, 3) != 1 || Clamp(5, 1, 3) != 3 || Clamp(2, 1, 3) != 2 {
		t.Error("Clamp returned an unexpected value")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs returned an unexpected value")
	}
}
