package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nagapatha/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"s", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionStart, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"y", core.ActionAccept, false},
		{"n", core.ActionDecline, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.key, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key    string
		action MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"left", MenuActionLeft},
		{"l", MenuActionRight},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.action)
		}
	}
}
