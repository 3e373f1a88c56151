// Package tui provides the Bubble Tea host for the snake game.
// It drives the frame loop, maps keys to actions and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time fed to the game for one frame, so a
// suspended terminal does not fast-forward the snake on resume.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent once per rendered frame and carries the frame time.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the real time between two frames, capped at maxFrameDelta.
// The first frame has no predecessor and yields zero.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return min(now.Sub(prev), maxFrameDelta)
}
