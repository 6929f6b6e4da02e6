package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nagapatha/internal/core"
	"github.com/vovakirdan/nagapatha/internal/engine"
	"github.com/vovakirdan/nagapatha/internal/session"
)

// swipeCells is the mouse drag length, in terminal cells, that counts as a swipe.
const swipeCells = 3

// GameModel is the Bubble Tea model for one game. It forwards input to a
// session.Controller and renders the views it publishes.
type GameModel struct {
	ctrl   *session.Controller
	cancel context.CancelFunc
	view   session.View
	screen *core.Screen
	keys   *KeyMapper
	swipe  *core.Swipe
	now    time.Time
	width  int
	height int

	leaving    bool // waiting for the game to end before returning to the menu
	backToMenu bool
	quitting   bool
}

// NewGameModel wraps a running controller. cancel stops the controller and is
// called when the model quits or returns to the menu.
func NewGameModel(ctrl *session.Controller, cancel context.CancelFunc, width, height int) GameModel {
	v := ctrl.View()
	w, h := CanvasSize(v.GridSize)
	return GameModel{
		ctrl:   ctrl,
		cancel: cancel,
		view:   v,
		screen: core.NewScreen(w, h),
		keys:   NewKeyMapper(),
		swipe:  &core.Swipe{MinDistance: swipeCells},
		now:    time.Now(),
		width:  width,
		height: height,
	}
}

// Init starts listening for controller views.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(waitForView(m.ctrl), refreshCmd())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ViewMsg:
		m.view = session.View(msg)
		if m.leaving && !m.active() {
			return m.leave()
		}
		return m, waitForView(m.ctrl)

	case viewsClosedMsg:
		return m, nil

	case RefreshMsg:
		m.now = time.Time(msg)
		return m, refreshCmd()
	}

	return m, nil
}

func (m GameModel) active() bool {
	return m.view.Phase == engine.PhaseRunning || m.view.Phase == engine.PhasePaused
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.stop()
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionConfirm:
		return m, nil
	case core.ActionBack:
		if !m.active() {
			return m.leave()
		}
		// Ends the game; the menu opens once the final view arrives.
		m.leaving = true
	}

	m.ctrl.Send(action)
	return m, nil
}

// handleMouse turns mouse drags into swipes.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var (
		dir core.Direction
		ok  bool
	)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Begin(msg.X/cellWidth, msg.Y)
		}
	case tea.MouseActionMotion:
		dir, ok = m.swipe.Move(msg.X/cellWidth, msg.Y)
	case tea.MouseActionRelease:
		dir, ok = m.swipe.End(msg.X/cellWidth, msg.Y)
	}
	if ok {
		m.ctrl.Send(core.ActionFor(dir))
	}
	return m, nil
}

func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	m.stop()
	return m, nil
}

func (m GameModel) stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// saveScreenshot saves the current board as plain text.
func (m GameModel) saveScreenshot() {
	DrawGame(m.screen, m.view, m.now)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".nagapatha", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("nagapatha_%s.txt", m.now.Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	DrawGame(m.screen, m.view, m.now)
	out := RenderScreen(m.screen)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// CurrentView returns the last view received from the controller.
func (m GameModel) CurrentView() session.View {
	return m.view
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
