// Package tui provides the Bubble Tea front end: the terminal game loop,
// held-key input emulation, the title menu and the session scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a tick rate in Hz into a period.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 33
	}
	return time.Second / time.Duration(tickRate)
}
