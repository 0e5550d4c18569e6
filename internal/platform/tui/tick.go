// Package tui provides the Bubble Tea host for kickoff.
// It handles the terminal UI loop, device events, and match timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time of one frame so a stalled
// terminal does not teleport the ball.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// (0, maxFrameDelta]. A zero last time yields one nominal frame.
func frameDelta(last, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	nominal := 1.0 / float64(tickRate)
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last).Seconds()
	if dt <= 0 {
		return nominal
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
