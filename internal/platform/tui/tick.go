// Package tui provides the Bubble Tea integration for Quantum Jumper.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the game
// model whose loop produced it, so a stale loop dies once its model is gone.
type TickMsg struct {
	Time time.Time
	ID   uint64
}

var tickIDs atomic.Uint64

func nextTickID() uint64 {
	return tickIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
