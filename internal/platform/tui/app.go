package tui

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nagapatha/internal/advisor"
	"github.com/vovakirdan/nagapatha/internal/config"
	"github.com/vovakirdan/nagapatha/internal/profile"
	"github.com/vovakirdan/nagapatha/internal/session"
	"github.com/vovakirdan/nagapatha/internal/storage"
)

// Deps are the collaborators shared by every game a front end starts.
// Store, Sounds and Advisor may be nil.
type Deps struct {
	Config  config.SnakeConfig
	Store   *storage.Store
	Sounds  session.SoundPlayer
	Advisor advisor.Advisor
	Seed    uint64 // 0 derives a seed from the clock for every game
	Logger  *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// NewTracker builds a player profile starting on tier, seeded from the
// player's stored history when a store is available.
func (d Deps) NewTracker(ctx context.Context, player string, tier config.Tier) *profile.Tracker {
	p := profile.New(player)
	p.SetTier(tier)

	if d.Store != nil && player != "" {
		limit := d.Config.Profile.HistoryCap
		if recent, err := d.Store.PlayerSessions(ctx, player, limit); err != nil {
			d.logger().Warn("could not load session history", "player", player, "error", err)
		} else {
			// Stored newest first, profile keeps oldest first.
			slices.Reverse(recent)
			for _, rec := range recent {
				p.AddSession(rec.Duration, limit)
			}
			if n := len(recent); n > 0 {
				p.LastScore = recent[n-1].Score
			}
		}
		if stats, err := d.Store.PlayerStats(ctx, player); err == nil {
			p.GamesPlayed = stats.GamesCount
			p.OfferHighScore(stats.HighScore)
		}
		if hs, err := d.Store.HighScore(ctx, player); err == nil {
			p.OfferHighScore(hs)
		}
	}

	return profile.NewTracker(p, d.Config.Profile.HistoryCap)
}

// StartGame creates a controller for player and runs it in the background
// until ctx ends or the returned cancel function is called.
func (d Deps) StartGame(ctx context.Context, tracker *profile.Tracker, player string) (*session.Controller, context.CancelFunc, error) {
	seed := d.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := session.Config{
		Rules:          d.Config.Rules(),
		Seed:           seed,
		Player:         player,
		Tiers:          d.Config.Tiers(),
		Tracker:        tracker,
		Sounds:         d.Sounds,
		Advisor:        d.Advisor,
		AdvisorTimeout: d.Config.AdvisorTimeout(),
		Logger:         d.logger(),
	}
	if d.Store != nil {
		cfg.Store = d.Store
	}

	ctrl, err := session.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot start game: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		if err := ctrl.Run(ctx); err != nil {
			d.logger().Error("game loop stopped", "error", err)
		}
	}()
	return ctrl, cancel, nil
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the full flow: menu -> game -> menu, plus the
// leaderboard. It is the top-level model for local and SSH sessions.
type AppModel struct {
	ctx      context.Context // bounds every game started from this model
	deps     Deps
	tracker  *profile.Tracker
	player   string
	width    int
	height   int
	screen   appScreen
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	err      error
	quitting bool
}

// NewAppModel creates the top-level model. startInGame skips the menu.
func NewAppModel(ctx context.Context, deps Deps, tracker *profile.Tracker, player string, width, height int, startInGame bool) AppModel {
	m := AppModel{
		ctx:     ctx,
		deps:    deps,
		tracker: tracker,
		player:  player,
		width:   width,
		height:  height,
		menu:    NewMenuModel(tracker, deps.Config.Tiers(), width, height),
	}
	if startInGame {
		m.screen = screenGame
	}
	return m
}

// Init starts the first screen.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return startGameCmd
	}
	return m.menu.Init()
}

type startGameMsg struct{}

func startGameCmd() tea.Msg { return startGameMsg{} }

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}
	if _, ok := msg.(startGameMsg); ok {
		return m.startGame()
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) startGame() (tea.Model, tea.Cmd) {
	ctrl, cancel, err := m.deps.StartGame(m.ctx, m.tracker, m.player)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	game := NewGameModel(ctrl, cancel, m.width, m.height)
	m.game = &game
	m.screen = screenGame
	return m, m.game.Init()
}

func (m AppModel) openMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.tracker, m.deps.Config.Tiers(), m.width, m.height)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuPlay:
		return m.startGame()
	case MenuLeaderboard:
		m.scores = NewScoreboardModel(m.deps.Store, m.deps.Config.Leaderboard, m.width, m.height)
		m.screen = screenScores
		return m, m.scores.Init()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.game == nil {
		return m, nil // startGameMsg is on its way
	}

	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.openMenu()
	}
	return m, cmd
}

// updateScores handles updates on the leaderboard.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.openMenu()
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Err returns the error that stopped the app, if any.
func (m AppModel) Err() error {
	return m.err
}

// Run starts the Bubble Tea program on the local terminal.
func Run(ctx context.Context, deps Deps, tracker *profile.Tracker, player string, width, height int, startInGame bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	model := NewAppModel(ctx, deps, tracker, player, width, height, startInGame)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags act as swipes
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if app, ok := final.(AppModel); ok {
		return app.Err()
	}
	return nil
}
