package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/input"
)

// Terminals report presses and auto-repeats but never releases. A key is
// treated as held until no repeat arrives within its hold window.
const (
	initialHold = 550 * time.Millisecond // Covers the typical auto-repeat delay
	repeatHold  = 120 * time.Millisecond
	tapHold     = 150 * time.Millisecond // Pass, shoot, tackle, switch
)

// KeyMapper translates Bubble Tea key messages to platform actions and
// match controls. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// ControlKeys returns the match keys a terminal key stands for. Shifted
// letters and arrows also hold sprint, since terminals never report Shift
// on its own.
func (km *KeyMapper) ControlKeys(msg tea.KeyMsg) []input.Key {
	switch msg.String() {
	case "w", "up":
		return []input.Key{input.KeyW}
	case "s", "down":
		return []input.Key{input.KeyS}
	case "a", "left":
		return []input.Key{input.KeyA}
	case "d", "right":
		return []input.Key{input.KeyD}
	case "W", "shift+up":
		return []input.Key{input.KeyW, input.KeyShift}
	case "S", "shift+down":
		return []input.Key{input.KeyS, input.KeyShift}
	case "A", "shift+left":
		return []input.Key{input.KeyA, input.KeyShift}
	case "D", "shift+right":
		return []input.Key{input.KeyD, input.KeyShift}
	case "q", "e":
		return []input.Key{input.KeyQ}
	case " ", "space", "enter":
		return []input.Key{input.KeySpace}
	case "x", "c":
		return []input.Key{input.KeyX}
	case "tab":
		return []input.Key{input.KeyTab}
	}
	return nil
}

func isMovement(k input.Key) bool {
	switch k {
	case input.KeyW, input.KeyA, input.KeyS, input.KeyD, input.KeyShift:
		return true
	}
	return false
}

// HoldTracker emulates key-up events for terminals.
type HoldTracker struct {
	deadlines map[input.Key]time.Time
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{deadlines: make(map[input.Key]time.Time)}
}

// Press records a press or auto-repeat of k at now. It returns true when
// the key was not already held, meaning the caller should send KeyDown.
func (h *HoldTracker) Press(k input.Key, now time.Time) bool {
	_, held := h.deadlines[k]
	switch {
	case !isMovement(k):
		h.deadlines[k] = now.Add(tapHold)
	case held:
		h.deadlines[k] = now.Add(repeatHold)
	default:
		h.deadlines[k] = now.Add(initialHold)
	}
	return !held
}

// Expire returns the keys whose hold window ended by now and forgets them.
func (h *HoldTracker) Expire(now time.Time) []input.Key {
	var out []input.Key
	for k, d := range h.deadlines {
		if !now.Before(d) {
			out = append(out, k)
			delete(h.deadlines, k)
		}
	}
	return out
}

// Clear forgets every held key.
func (h *HoldTracker) Clear() {
	clear(h.deadlines)
}

// MatchKeyMap describes the in-match bindings for the help bar.
type MatchKeyMap struct {
	Move    key.Binding
	Sprint  key.Binding
	Pass    key.Binding
	Shoot   key.Binding
	Tackle  key.Binding
	Switch  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Sprint, k.Pass, k.Shoot, k.Tackle, k.Switch, k.Pause}
}

// FullHelp returns key bindings for the full help view.
func (k MatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Sprint, k.Switch},
		{k.Pass, k.Shoot, k.Tackle},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultMatchKeyMap returns the default bindings.
func DefaultMatchKeyMap() MatchKeyMap {
	return MatchKeyMap{
		Move: key.NewBinding(
			key.WithKeys("w", "a", "s", "d", "up", "down", "left", "right"),
			key.WithHelp("wasd/arrows", "move"),
		),
		Sprint: key.NewBinding(
			key.WithKeys("W", "A", "S", "D", "shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift", "sprint"),
		),
		Pass: key.NewBinding(
			key.WithKeys("q", "e"),
			key.WithHelp("q/e", "pass"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "shoot"),
		),
		Tackle: key.NewBinding(
			key.WithKeys("x", "c"),
			key.WithHelp("x/c", "tackle"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionProfiles
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionProfiles
	}
	return MenuActionNone
}
