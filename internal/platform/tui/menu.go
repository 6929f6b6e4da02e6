package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nagapatha/internal/config"
	"github.com/vovakirdan/nagapatha/internal/profile"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuLeaderboard
	MenuDifficulty
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: MenuPlay, Title: "Play"},
	{Choice: MenuLeaderboard, Title: "Leaderboard"},
	{Choice: MenuDifficulty, Title: "Difficulty"},
	{Choice: MenuQuit, Title: "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	tracker   *profile.Tracker
	tiers     *config.TierTable
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. Difficulty changes are written to
// tracker and apply from the next game.
func NewMenuModel(tracker *profile.Tracker, tiers *config.TierTable, width, height int) MenuModel {
	if tiers == nil {
		tiers = config.DefaultTierTable()
	}
	return MenuModel{
		items:     menuItems,
		width:     width,
		height:    height,
		tracker:   tracker,
		tiers:     tiers,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.items[m.cursor].Choice == MenuDifficulty {
			m.cycleTier(-1)
		}

	case MenuActionRight:
		if m.items[m.cursor].Choice == MenuDifficulty {
			m.cycleTier(1)
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Choice == MenuDifficulty {
			m.cycleTier(1)
			return m, nil
		}
		m.choice = item.Choice
	}

	return m, nil
}

// cycleTier moves the difficulty by delta, wrapping around.
func (m MenuModel) cycleTier(delta int) {
	if m.tracker == nil {
		return
	}
	n := int(config.MaxTier-config.MinTier) + 1
	cur := int(m.tracker.Tier() - config.MinTier)
	next := ((cur+delta)%n + n) % n
	m.tracker.SetTier(config.MinTier + config.Tier(next))
}

func (m MenuModel) tier() config.Tier {
	if m.tracker == nil {
		return config.TierEasy
	}
	return m.tracker.Tier()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  N Ā G A P A T H A  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("the serpent's path", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		title := item.Title
		if item.Choice == MenuDifficulty {
			title = fmt.Sprintf("Difficulty  < %s >", m.tiers.Name(m.tier()))
		}
		line := cursor + title
		if i == m.cursor {
			line = selStyle.Render("> " + title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.tracker != nil {
		p := m.tracker.Profile()
		b.WriteString("\n")
		stats := fmt.Sprintf("Best %d  |  Games %d  |  Avg %s", p.HighScore, p.GamesPlayed, formatElapsed(p.AverageSession()))
		b.WriteString(centerText(dimStyle.Render(stats), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the item the player picked, or MenuNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}
