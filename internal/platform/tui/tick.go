// Package tui provides the Bubble Tea host for the rooftops runner.
// It handles the terminal UI loop, held-key tracking, rendering and run recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when the runtime config does not set one.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// frameDelta returns the wall-clock time between two ticks.
// The first tick of a run uses the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return tickInterval(tickRate)
	}
	return now.Sub(prev)
}
