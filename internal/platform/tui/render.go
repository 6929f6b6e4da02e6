package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nagapatha/internal/advisor"
	"github.com/vovakirdan/nagapatha/internal/core"
	"github.com/vovakirdan/nagapatha/internal/engine"
	"github.com/vovakirdan/nagapatha/internal/session"
)

// Layout: each board cell is two columns wide, the side panel sits to the
// right of the board.
const (
	cellWidth  = 2
	panelGap   = 2
	panelWidth = 30
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// CanvasSize returns the screen size needed to draw a board of gridSize cells
// with its side panel.
func CanvasSize(gridSize int) (w, h int) {
	return gridSize*cellWidth + 2 + panelGap + panelWidth, gridSize + 2
}

// DrawGame draws the board, the side panel and any phase overlay.
func DrawGame(s *core.Screen, v session.View, now time.Time) {
	s.Clear()
	drawBoard(s, v)
	drawOverlay(s, v)
	drawPanel(s, v, now)
}

func drawBoard(s *core.Screen, v session.View) {
	n := v.GridSize
	border := core.ColorBorder
	if v.BuffActive {
		border = core.ColorBorderWrap
	}
	s.DrawBox(0, 0, n*cellWidth+2, n+2, border)

	setCell := func(p core.Point, text string, c core.Color) {
		if !p.InBounds(n) {
			return
		}
		s.DrawTextColored(1+p.X*cellWidth, 1+p.Y, text, c)
	}

	if v.HasFood {
		setCell(v.Food, "()", core.ColorFood)
	}
	if v.HasPowerUp {
		setCell(v.PowerUp, "<>", core.ColorPowerUp)
	}

	body := core.ColorSnakeBody
	if v.BuffActive {
		body = core.ColorSnakeWrap
	}
	// Tail first so the head wins if segments overlap.
	for i := len(v.Snake) - 1; i >= 1; i-- {
		setCell(v.Snake[i], "▒▒", body)
	}
	if len(v.Snake) > 0 {
		setCell(v.Snake[0], "██", core.ColorSnakeHead)
	}
}

// overlayLines returns the centered message for the current phase.
func overlayLines(v session.View) []string {
	switch v.Phase {
	case engine.PhaseIdle:
		return []string{"N A G A P A T H A", "", "SPACE to start"}
	case engine.PhasePaused:
		return []string{"PAUSED", "", "P to resume"}
	case engine.PhaseOver:
		title := "GAME OVER"
		if v.Won {
			title = "BOARD FULL - YOU WIN"
		}
		return []string{title, fmt.Sprintf("Score %d", v.Score), "", "SPACE play again", "R reset"}
	}
	return nil
}

func drawOverlay(s *core.Screen, v session.View) {
	lines := overlayLines(v)
	if len(lines) == 0 {
		return
	}
	boardW := v.GridSize*cellWidth + 2
	top := (v.GridSize+2)/2 - len(lines)/2
	for i, line := range lines {
		x := (boardW - len([]rune(line))) / 2
		c := core.ColorStatus
		if i == 0 {
			c = core.ColorStatusAlert
		}
		// Clear a margin so the message is readable over the snake.
		if line != "" {
			s.DrawText(x-1, top+i, strings.Repeat(" ", len([]rune(line))+2))
		}
		s.DrawTextColored(x, top+i, line, c)
	}
}

func drawPanel(s *core.Screen, v session.View, now time.Time) {
	x := v.GridSize*cellWidth + 2 + panelGap
	y := 0
	line := func(text string, c core.Color) {
		s.DrawTextColored(x, y, truncate(text, panelWidth), c)
		y++
	}

	player := v.Player
	if player == "" {
		player = "guest"
	}

	line("NAGAPATHA", core.ColorSnakeHead)
	y++
	line(fmt.Sprintf("Player  %s", player), core.ColorStatus)
	line(fmt.Sprintf("Score   %d", v.Score), core.ColorStatus)
	line(fmt.Sprintf("Best    %d", v.HighScore), core.ColorStatus)
	line(fmt.Sprintf("Tier    %s", v.TierName), core.ColorStatus)
	line(fmt.Sprintf("Length  %d", len(v.Snake)), core.ColorStatus)
	if v.Phase == engine.PhaseRunning || v.Phase == engine.PhasePaused {
		line(fmt.Sprintf("Time    %s", formatElapsed(now.Sub(v.StartedAt))), core.ColorStatus)
	}
	if v.BuffActive {
		line("WRAP ACTIVE", core.ColorBorderWrap)
	}
	y++

	for _, n := range v.Notices {
		c := core.ColorGray
		if n.Failed() {
			c = core.ColorRed
		}
		line(n.Message, c)
	}

	if v.Advice != nil {
		y++
		for _, l := range adviceLines(*v.Advice, v.TierName) {
			line(l, core.ColorStatusAlert)
		}
	}

	y = max(y+1, v.GridSize-3)
	line("arrows/wasd move  p pause", core.ColorGray)
	line("space start  r reset", core.ColorGray)
	line("b menu  q quit", core.ColorGray)
}

func adviceLines(a advisor.Response, current string) []string {
	var lines []string
	switch a.Recommendation {
	case advisor.Increase, advisor.Decrease:
		lines = append(lines, fmt.Sprintf("Advisor: %s to %s?", a.Recommendation, a.RecommendedTier))
	default:
		lines = append(lines, fmt.Sprintf("Advisor: stay on %s", current))
	}
	lines = append(lines, wrapText(a.Explanation, panelWidth)...)
	if a.Recommendation != advisor.Stay {
		lines = append(lines, "Y accept  N decline")
	} else {
		lines = append(lines, "N dismiss")
	}
	return lines
}

func formatElapsed(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func truncate(text string, width int) string {
	r := []rune(text)
	if len(r) <= width {
		return text
	}
	return string(r[:width-1]) + "…"
}

// wrapText breaks text into lines of at most width runes on word boundaries.
func wrapText(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(word)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
