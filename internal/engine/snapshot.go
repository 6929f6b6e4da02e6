package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/nagapatha/internal/core"
)

// Snapshot is a read-only copy of a State for renderers and subscribers.
type Snapshot struct {
	Phase      Phase
	GridSize   int
	Snake      []core.Point
	Direction  core.Direction
	Pending    core.Direction // Accepted direction change, applied on the next tick
	Food       core.Point
	HasFood    bool
	PowerUp    core.Point
	HasPowerUp bool
	BuffActive bool
	Score      int
	StartedAt  time.Time
	Reason     EndReason
	Won        bool
}

// Snapshot copies the observable parts of the state.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.phase,
		GridSize:   s.rules.GridSize,
		Snake:      s.Snake(),
		Direction:  s.direction,
		Pending:    s.pending,
		Food:       s.food,
		HasFood:    s.hasFood,
		PowerUp:    s.powerUp,
		HasPowerUp: s.hasPowerUp,
		BuffActive: s.buff,
		Score:      s.score,
		StartedAt:  s.startedAt,
		Reason:     s.reason,
		Won:        s.Won(),
	}
}

// Head returns the head segment, or (-1,-1) for an empty snapshot.
func (sn Snapshot) Head() core.Point {
	if len(sn.Snake) == 0 {
		return core.Point{X: -1, Y: -1}
	}
	return sn.Snake[0]
}

// DebugState renders the board as text, one row per line:
// '@' head, 'o' body, '*' food, '+' power-up, '.' empty.
func (s State) DebugState() string {
	n := s.rules.GridSize
	grid := make([][]byte, n)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", n))
	}
	put := func(p core.Point, c byte) {
		if p.InBounds(n) {
			grid[p.Y][p.X] = c
		}
	}
	if s.hasFood {
		put(s.food, '*')
	}
	if s.hasPowerUp {
		put(s.powerUp, '+')
	}
	for i := len(s.snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.snake[i], '@')
		} else {
			put(s.snake[i], 'o')
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "phase=%s score=%d dir=%s buff=%v\n", s.phase, s.score, s.direction, s.buff)
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
