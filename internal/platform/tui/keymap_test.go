package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantAct  core.Action
		wantQuit bool
	}{
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q passes, does not quit", runeKey('q'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			act, quit := km.MapKey(tc.msg)
			if act != tc.wantAct || quit != tc.wantQuit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", act, quit, tc.wantAct, tc.wantQuit)
			}
		})
	}
}

func TestControlKeys(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []input.Key
	}{
		{"w", runeKey('w'), []input.Key{input.KeyW}},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, []input.Key{input.KeyA}},
		{"shifted letter sprints", runeKey('D'), []input.Key{input.KeyD, input.KeyShift}},
		{"shift arrow sprints", tea.KeyMsg{Type: tea.KeyShiftUp}, []input.Key{input.KeyW, input.KeyShift}},
		{"pass", runeKey('e'), []input.Key{input.KeyQ}},
		{"shoot", runeKey(' '), []input.Key{input.KeySpace}},
		{"switch", tea.KeyMsg{Type: tea.KeyTab}, []input.Key{input.KeyTab}},
		{"unbound", runeKey('z'), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.ControlKeys(tc.msg); !slices.Equal(got, tc.want) {
				t.Errorf("ControlKeys(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)

	if !h.Press(input.KeyW, t0) {
		t.Fatal("first press should report a new key")
	}
	if h.Press(input.KeyW, t0.Add(10*time.Millisecond)) {
		t.Fatal("repeat should not report a new key")
	}

	// The repeat shortened the window to repeatHold
	if got := h.Expire(t0.Add(10*time.Millisecond + repeatHold - time.Millisecond)); len(got) != 0 {
		t.Fatalf("key released too early: %v", got)
	}
	got := h.Expire(t0.Add(10*time.Millisecond + repeatHold))
	if !slices.Equal(got, []input.Key{input.KeyW}) {
		t.Fatalf("Expire() = %v, expected [w]", got)
	}
	if len(h.Expire(t0.Add(time.Hour))) != 0 {
		t.Error("expired key should be forgotten")
	}
}

func TestHoldTrackerWindows(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(1000, 0)

	h.Press(input.KeyD, t0)
	h.Press(input.KeySpace, t0)

	got := h.Expire(t0.Add(tapHold))
	if !slices.Equal(got, []input.Key{input.KeySpace}) {
		t.Errorf("after tapHold Expire() = %v, expected only the shot key", got)
	}
	got = h.Expire(t0.Add(initialHold))
	if !slices.Equal(got, []input.Key{input.KeyD}) {
		t.Errorf("after initialHold Expire() = %v, expected the movement key", got)
	}

	h.Press(input.KeyA, t0)
	h.Clear()
	if len(h.Expire(t0.Add(time.Hour))) != 0 {
		t.Error("Clear() should forget held keys")
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want float64
	}{
		{"first frame", time.Time{}, t0, 1.0 / 60},
		{"normal frame", t0, t0.Add(20 * time.Millisecond), 0.02},
		{"stall is capped", t0, t0.Add(2 * time.Second), maxFrameDelta},
		{"clock went backwards", t0, t0.Add(-time.Second), 1.0 / 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.last, tc.now, 60); got != tc.want {
				t.Errorf("frameDelta() = %f, expected %f", got, tc.want)
			}
		})
	}
}

func TestCellToPixel(t *testing.T) {
	x, y := cellToPixel(10, 3)
	if x != 84 || y != 56 {
		t.Errorf("cellToPixel(10, 3) = (%f, %f), expected (84, 56)", x, y)
	}
}
