package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/storage"
)

// Profiles screen layout constants
const (
	minWidthForDetail = 80 // Minimum width to show the detail pane
	detailWidth       = 30
)

// ProfilesKeyMap defines the key bindings for the profiles screen.
type ProfilesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Clear  key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
// Disabled bindings are hidden by the help view.
func (k ProfilesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProfilesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Clear, k.Delete, k.Back, k.Quit},
	}
}

// DefaultProfilesKeyMap returns default key bindings.
func DefaultProfilesKeyMap() ProfilesKeyMap {
	return ProfilesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "use"),
		),
		Clear: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "use defaults"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProfilesModel is the Bubble Tea model for browsing stored profiles.
type ProfilesModel struct {
	store      *storage.Store
	profiles   []storage.ProfileInfo
	detail     *storage.Profile
	table      table.Model
	help       help.Model
	keys       ProfilesKeyMap
	width      int
	height     int
	status     string
	chosen     string
	choseNone  bool // User asked to drop the current profile
	quitting   bool
	goingBack  bool
	showDetail bool
	readOnly   bool // Delete disabled, used for SSH sessions
}

// NewProfilesModel creates a new profiles model. A read-only model
// cannot delete profiles.
func NewProfilesModel(store *storage.Store, width, height int, readOnly bool) ProfilesModel {
	h := help.New()
	h.ShowAll = false

	keys := DefaultProfilesKeyMap()
	keys.Delete.SetEnabled(!readOnly)

	m := ProfilesModel{
		store:      store,
		readOnly:   readOnly,
		keys:       keys,
		help:       h,
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ProfilesModel) createTable() table.Model {
	nameWidth := 24
	if m.width > 0 && !m.showDetail {
		nameWidth = core.Max(m.width-28, 10)
	}
	columns := []table.Column{
		{Title: "Profile", Width: nameWidth},
		{Title: "Updated", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload refreshes the profile list from the store.
func (m *ProfilesModel) reload() {
	m.profiles = nil
	if m.store != nil {
		list, err := m.store.ListProfiles()
		if err != nil {
			m.status = err.Error()
		} else {
			m.profiles = list
		}
	}

	rows := make([]table.Row, len(m.profiles))
	for i, p := range m.profiles {
		rows[i] = table.Row{p.Name, p.UpdatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
	m.loadDetail()
}

// loadDetail loads the highlighted profile for the detail pane.
func (m *ProfilesModel) loadDetail() {
	m.detail = nil
	name := m.current()
	if name == "" || m.store == nil {
		return
	}
	p, err := m.store.Profile(name)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.detail = p
}

func (m ProfilesModel) current() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.profiles) {
		return ""
	}
	return m.profiles[i].Name
}

// Init initializes the profiles model.
func (m ProfilesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the profiles screen.
func (m ProfilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if name := m.current(); name != "" {
				m.chosen = name
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.choseNone = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			if name := m.current(); name != "" && m.store != nil && !m.readOnly {
				if _, err := m.store.DeleteProfile(name); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted %q", name)
				}
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadDetail()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		m.table = m.createTable()
		m.reload()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the profiles screen.
func (m ProfilesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(heading.Render(centerText("TUNING PROFILES", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableBox := boxStyle.Render(m.renderTableContent())
	if m.showDetail {
		detail := boxStyle.Width(detailWidth).Render(m.renderDetail())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, "  ", detail))
	} else {
		b.WriteString(tableBox)
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ProfilesModel) renderTableContent() string {
	if len(m.profiles) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No profiles saved yet.\nUse `kickoff profiles save` to add one.")
	}
	return m.table.View()
}

// renderDetail summarises the highlighted profile.
func (m ProfilesModel) renderDetail() string {
	if m.detail == nil {
		return "Nothing selected"
	}
	c := m.detail.Config
	difficulty := "off"
	if c.Difficulty.Enabled {
		difficulty = fmt.Sprintf("%.1f (%s)", c.Difficulty.InitialLevel, c.Difficulty.Progression.Type)
	}
	lines := []string{
		m.detail.Name,
		"",
		fmt.Sprintf("Half length   %.0fs", c.Rules.HalfLength),
		fmt.Sprintf("Pitch         %.0f x %.0f", c.Field.Width, c.Field.Length),
		fmt.Sprintf("Team size     %d", c.Roster.TeamSize),
		fmt.Sprintf("Shot power    %.1f", c.Rules.ShotPower),
		fmt.Sprintf("Pass power    %.1f", c.Rules.PassPower),
		fmt.Sprintf("Ball friction %.2f", c.Physics.BallFriction),
		fmt.Sprintf("Difficulty    %s", difficulty),
	}
	return strings.Join(lines, "\n")
}

// ProfilesResult holds the outcome of the profiles screen.
type ProfilesResult struct {
	Chosen  string // Profile to play with
	UseNone bool   // Drop the current profile
	Back    bool
	Quit    bool
}

func (m ProfilesModel) result() ProfilesResult {
	switch {
	case m.chosen != "":
		return ProfilesResult{Chosen: m.chosen}
	case m.choseNone:
		return ProfilesResult{UseNone: true}
	case m.goingBack:
		return ProfilesResult{Back: true}
	default:
		return ProfilesResult{Quit: true}
	}
}

// RunProfiles runs the profiles screen.
func RunProfiles(store *storage.Store, width, height int) (ProfilesResult, error) {
	model := NewProfilesModel(store, width, height, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ProfilesResult{}, err
	}

	m, ok := finalModel.(ProfilesModel)
	if !ok {
		return ProfilesResult{Quit: true}, nil
	}
	return m.result(), nil
}
