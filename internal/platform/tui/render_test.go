package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/nagapatha/internal/advisor"
	"github.com/vovakirdan/nagapatha/internal/config"
	"github.com/vovakirdan/nagapatha/internal/core"
	"github.com/vovakirdan/nagapatha/internal/engine"
	"github.com/vovakirdan/nagapatha/internal/session"
)

func testView(phase engine.Phase) session.View {
	return session.View{
		Snapshot: engine.Snapshot{
			Phase:     phase,
			GridSize:  20,
			Snake:     []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
			Food:      core.Point{X: 12, Y: 10},
			HasFood:   true,
			Score:     7,
			StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		Player:    "ada",
		Tier:      config.TierEasy,
		TierName:  "Easy",
		HighScore: 12,
	}
}

func drawn(v session.View, now time.Time) *core.Screen {
	w, h := CanvasSize(v.GridSize)
	s := core.NewScreen(w, h)
	DrawGame(s, v, now)
	return s
}

func TestDrawBoardCells(t *testing.T) {
	v := testView(engine.PhaseRunning)
	s := drawn(v, v.StartedAt.Add(75*time.Second))

	cellAt := func(p core.Point) core.Cell {
		return s.GetCell(1+p.X*cellWidth, 1+p.Y)
	}

	if c := cellAt(core.Point{X: 10, Y: 10}); c.Rune != '█' || c.Color != core.ColorSnakeHead {
		t.Errorf("head cell = %+v", c)
	}
	if c := cellAt(core.Point{X: 8, Y: 10}); c.Rune != '▒' || c.Color != core.ColorSnakeBody {
		t.Errorf("tail cell = %+v", c)
	}
	if c := cellAt(core.Point{X: 12, Y: 10}); c.Rune != '(' || c.Color != core.ColorFood {
		t.Errorf("food cell = %+v", c)
	}
	if c := s.GetCell(0, 0); c.Rune != '┌' || c.Color != core.ColorBorder {
		t.Errorf("border corner = %+v", c)
	}

	text := s.String()
	for _, want := range []string{"Score   7", "Best    12", "Tier    Easy", "Player  ada", "Time    01:15"} {
		if !strings.Contains(text, want) {
			t.Errorf("panel missing %q", want)
		}
	}
}

func TestDrawWrapBuff(t *testing.T) {
	v := testView(engine.PhaseRunning)
	v.BuffActive = true
	v.HasPowerUp = false
	s := drawn(v, v.StartedAt)

	if c := s.GetCell(0, 0); c.Color != core.ColorBorderWrap {
		t.Errorf("border color with buff = %v", c.Color)
	}
	if !strings.Contains(s.String(), "WRAP ACTIVE") {
		t.Error("panel should show the active buff")
	}
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name  string
		phase engine.Phase
		won   bool
		want  string
	}{
		{"idle", engine.PhaseIdle, false, "SPACE to start"},
		{"paused", engine.PhasePaused, false, "PAUSED"},
		{"over", engine.PhaseOver, false, "GAME OVER"},
		{"won", engine.PhaseOver, true, "BOARD FULL - YOU WIN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := testView(tc.phase)
			v.Won = tc.won
			if got := drawn(v, v.StartedAt).String(); !strings.Contains(got, tc.want) {
				t.Errorf("overlay missing %q:\n%s", tc.want, got)
			}
		})
	}

	v := testView(engine.PhaseRunning)
	if strings.Contains(drawn(v, v.StartedAt).String(), "PAUSED") {
		t.Error("running game should have no overlay")
	}
}

func TestDrawAdviceAndNotices(t *testing.T) {
	v := testView(engine.PhaseOver)
	v.Advice = &advisor.Response{
		Recommendation:  advisor.Increase,
		RecommendedTier: config.TierMedium,
		Explanation:     "You are cruising on Easy.",
	}
	v.Notices = []session.Notice{
		{Kind: session.NoticeScoreSaved, Message: "saved 7 for ada"},
		{Kind: session.NoticeAdviceFailed, Message: "advice offline", Err: errors.New("x")},
	}
	s := drawn(v, v.StartedAt)
	text := s.String()

	for _, want := range []string{"increase to Medium?", "Y accept  N decline", "saved 7 for ada", "cruising"} {
		if !strings.Contains(text, want) {
			t.Errorf("panel missing %q", want)
		}
	}

	// Failed notices are drawn in red.
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), "advice offline") {
			x := strings.Index(s.Row(y), "advice offline")
			if c := s.GetCell(len([]rune(s.Row(y)[:x])), y); c.Color != core.ColorRed {
				t.Errorf("failed notice color = %v", c.Color)
			}
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %q, expected %q", got, want)
	}
	if len(wrapText("", 10)) != 0 {
		t.Error("empty text should produce no lines")
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := formatElapsed(125 * time.Second); got != "02:05" {
		t.Errorf("formatElapsed = %q", got)
	}
	if got := formatElapsed(-time.Second); got != "00:00" {
		t.Errorf("negative duration = %q", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	if out := RenderScreen(s); !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
