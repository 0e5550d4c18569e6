package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// tunable is implemented by games that accept per-instance settings.
type tunable interface {
	SetPreset(name string)
	UseConfig(cfg config.MatchConfig)
}

// Configure applies a difficulty preset and an optional profile config to
// a game before it is reset. Games without per-instance settings are left
// alone.
func Configure(game registry.Game, preset string, profile *config.MatchConfig) {
	t, ok := game.(tunable)
	if !ok {
		return
	}
	t.SetPreset(preset)
	if profile != nil {
		t.UseConfig(*profile)
	}
}

// Model is the Bubble Tea model hosting a single match.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	holds      *HoldTracker
	keys       MatchKeyMap
	help       help.Model
	logger     *log.Logger
	lastTick   time.Time
	quitOnBack bool // Standalone play exits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, pitchHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(),
		keys:       DefaultMatchKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// pitchHeight leaves the bottom row for the help bar.
func pitchHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the match.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime())
	return tickCmd(m.config.TickRate)
}

// runtime is the config the game sees: the screen minus the help bar.
func (m Model) runtime() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = pitchHeight(cfg.ScreenH)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu only when the ball is not in play
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	now := time.Now()
	for _, k := range m.keyMapper.ControlKeys(msg) {
		if m.holds.Press(k, now) {
			m.game.Controls().KeyDown(k)
		}
	}
	return m, nil
}

// handleMouse turns left-button drags into a virtual joystick pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	// Presses on the help bar do not start a drag.
	pitch := core.NewRect(0, 0, m.config.ScreenW, pitchHeight(m.config.ScreenH))
	if msg.Action == tea.MouseActionPress && !pitch.Contains(msg.X, msg.Y) {
		return m, nil
	}

	x, y := cellToPixel(msg.X, msg.Y)
	controls := m.game.Controls()
	switch msg.Action {
	case tea.MouseActionPress:
		controls.PointerStart(0, x, y)
	case tea.MouseActionMotion:
		controls.PointerMove(0, x, y)
	case tea.MouseActionRelease:
		controls.PointerEnd(0)
	}
	return m, nil
}

// cellToPixel returns the pixel centre of a terminal cell.
func cellToPixel(col, row int) (float64, float64) {
	x := float64(col*core.CellWidthPx) + core.CellWidthPx/2
	y := float64(row*core.CellHeightPx) + core.CellHeightPx/2
	return x, y
}

// handleResize processes window resize events. The match keeps running;
// only the screen and the joystick centre follow the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, pitchHeight(msg.Height))
	m.help.Width = msg.Width

	rt := m.runtime()
	m.game.Controls().SetCenter(
		float64(rt.ScreenW*core.CellWidthPx)/4,
		float64(rt.ScreenH*core.CellHeightPx)/2,
	)
	return m, nil
}

// handleTick releases expired keys and advances the match by the real
// time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.runtime())
		m.gameState = m.game.State()
		m.holds.Clear()
		m.inputFrame.Clear()
		m.lastTick = time.Time{}
		m.logger.Debug("match restarted", "mode", m.game.ID())
		return m, tickCmd(m.config.TickRate)
	}

	for _, k := range m.holds.Expire(now) {
		m.game.Controls().KeyUp(k)
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".kickoff", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
