// Package tui provides the Bubble Tea front end for NāgaPatha: the game
// screen, main menu, leaderboard and an SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nagapatha/internal/session"
)

// hudRefresh is how often the HUD clock is redrawn between game updates.
const hudRefresh = 250 * time.Millisecond

// RefreshMsg redraws time-dependent parts of the HUD.
type RefreshMsg time.Time

// ViewMsg carries a new view published by the game controller.
type ViewMsg session.View

// viewsClosedMsg is sent once the controller stops publishing.
type viewsClosedMsg struct{}

// refreshCmd schedules the next HUD refresh.
func refreshCmd() tea.Cmd {
	return tea.Tick(hudRefresh, func(t time.Time) tea.Msg {
		return RefreshMsg(t)
	})
}

// waitForView returns a command that waits for the next controller view.
func waitForView(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		if ctrl == nil {
			return viewsClosedMsg{}
		}
		v, ok := <-ctrl.Updates()
		if !ok {
			return viewsClosedMsg{}
		}
		return ViewMsg(v)
	}
}
