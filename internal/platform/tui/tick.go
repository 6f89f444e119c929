// Package tui provides the Bubble Tea integration for the arena.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg triggers one game step. Ticks from an older generation are
// stale and dropped.
type tickMsg struct {
	gen uint64
}

// musicMsg fires once the drone start delay after the first mount has
// elapsed.
type musicMsg struct{}

// tickCmd returns a command that delivers one tick for generation gen
// after d.
func tickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func musicCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return musicMsg{}
	})
}
