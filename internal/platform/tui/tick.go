// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameTime caps the elapsed time fed to a single tick so that a
// stalled terminal does not fast-forward the simulation.
const maxFrameTime = 50 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
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

// frameTime returns the time between two ticks clamped to (0, maxFrameTime].
// A zero previous tick yields zero, which games treat as one nominal frame.
func frameTime(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev)
	if d <= 0 {
		return 0
	}
	return min(d, maxFrameTime)
}
