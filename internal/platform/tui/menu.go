package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/registry"
)

// difficulties are cycled with left/right in the menu. The empty entry
// keeps whatever the loaded config says.
var difficulties = []string{"", "easy", "normal", "hard", "fixed"}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// MenuItem represents a selectable match mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	difficulty    int // Index into difficulties
	profile       string
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	quitting      bool
	selected      *MenuItem
	openProfiles  bool
	profilesShown bool // Whether the profiles entry is offered
}

// NewMenuModel creates a new menu model. profile is the currently
// selected tuning profile, shown under the title when set.
func NewMenuModel(cfg core.RuntimeConfig, profile string, withProfiles bool) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))
	for _, g := range modes {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:         items,
		profile:       profile,
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		profilesShown: withProfiles,
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionProfiles:
		if m.profilesShown {
			m.openProfiles = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  K I C K O F F  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Five-a-side in your terminal", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("< Difficulty: %s >", m.Difficulty()), m.width))
	b.WriteString("\n")
	if m.profile != "" {
		b.WriteString(centerText("Profile: "+m.profile, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play  |  Q: Quit"
	if m.profilesShown {
		controls = "Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Profiles  |  Q: Quit"
	}
	b.WriteString(helpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Difficulty returns the selected preset name, or "config" for none.
func (m MenuModel) Difficulty() string {
	if d := difficulties[m.difficulty]; d != "" {
		return d
	}
	return "config"
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsProfiles returns true if user asked for the profiles screen.
func (m MenuModel) WantsProfiles() bool {
	return m.openProfiles
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// preset returns the preset to hand to the game ("" keeps the config).
func (m MenuModel) preset() string {
	return difficulties[m.difficulty]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID        string
	Difficulty    string // Preset name, "" for the loaded config
	Config        core.RuntimeConfig
	WantsProfiles bool
	Quit          bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config(), Difficulty: m.preset()}
	switch {
	case m.WantsProfiles():
		res.WantsProfiles = true
	case m.IsQuitting(), m.Selected() == nil:
		res.Quit = true
	default:
		res.GameID = m.Selected().GameID
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, profile string, withProfiles bool) (MenuResult, error) {
	model := NewMenuModel(cfg, profile, withProfiles)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
