package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one globe step. tag ties it to the loop that scheduled it,
// so a pause/resume cycle never leaves two loops running.
type TickMsg struct {
	Time time.Time
	tag  int
}

func tickCmd(fps, tag int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, tag: tag}
	})
}
