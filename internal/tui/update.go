package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case TickMsg:
		// a paused or superseded loop simply stops here
		if m.paused || msg.tag != m.tickTag {
			return m, nil
		}
		m.frame = m.globe.Step()
		if m.showInfo {
			m.refreshInfo()
		}
		return m, tickCmd(m.fps, m.tickTag)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if m.paused {
				m.status = "paused"
				return m, nil
			}
			m.status = "running"
			m.tickTag++
			return m, tickCmd(m.fps, m.tickTag)
		case key.Matches(msg, m.keys.Mode):
			m.mode = m.mode.Next()
			m.status = "mode: " + m.mode.String()
		case key.Matches(msg, m.keys.Info):
			m.showInfo = !m.showInfo
			if m.showInfo {
				m.refreshInfo()
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}
