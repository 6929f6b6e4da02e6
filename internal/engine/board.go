package engine

import (
	"math/rand/v2"

	"github.com/vovakirdan/nagapatha/internal/core"
)

// occupied returns a predicate matching cells that new food or power-ups may
// not be placed on. withFood adds the current food cell to the set.
func (s *State) occupied(withFood bool) func(core.Point) bool {
	body := make(map[core.Point]bool, len(s.snake)+2)
	for _, seg := range s.snake {
		body[seg] = true
	}
	if withFood && s.hasFood {
		body[s.food] = true
	}
	if s.hasPowerUp {
		body[s.powerUp] = true
	}
	return func(p core.Point) bool { return body[p] }
}

// place picks a free cell. It samples uniformly up to MaxPlacementAttempts
// times, then scans row-major from a random offset so that a nearly full
// board still terminates. Returns false if every cell is taken.
func (s *State) place(taken func(core.Point) bool) (core.Point, bool) {
	n := s.rules.GridSize
	r := rand.New(&s.rng)

	for range s.rules.MaxPlacementAttempts {
		p := core.Point{X: r.IntN(n), Y: r.IntN(n)}
		if !taken(p) {
			return p, true
		}
	}

	cells := n * n
	offset := r.IntN(cells)
	for i := range cells {
		idx := (offset + i) % cells
		p := core.Point{X: idx % n, Y: idx / n}
		if !taken(p) {
			return p, true
		}
	}
	return core.Point{X: -1, Y: -1}, false
}

// hitsBody reports whether head collides with the body after the move.
// The tail cell is vacated this tick unless the snake is growing.
func (s *State) hitsBody(head core.Point, growing bool) bool {
	body := s.snake
	if !growing && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			return true
		}
	}
	return false
}
