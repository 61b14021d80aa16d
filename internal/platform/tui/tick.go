// Package tui provides the Bubble Tea integration for the whale simulator.
// It handles the terminal UI loop, input mapping and the round report.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after delay. The delay is whatever is
// left of the tick budget, so slow ticks are followed immediately.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
