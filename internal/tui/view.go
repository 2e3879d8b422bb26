package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	if m.help.ShowAll {
		footerHeight = 3
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" spinglobe ─ ascii earth ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var body string
	if m.showInfo {
		box := boxStyle.Render(m.tbl.View())
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, box)
	} else {
		b := m.frame.Bounds()
		cols, rows := FitCells(contentWidth, contentHeight, b.Dx(), b.Dy())
		art := Rasterize(m.frame, cols, rows, m.mode, m.scaler)
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, art)
	}

	status := dimStyle.Render(fmt.Sprintf(" %s  angle %.2f rad  frame %d  %s ",
		m.status, m.globe.Angle(), m.globe.Frames(), m.globe.State()))
	if m.paused {
		status = pausedStyle.Render(" ❚❚ ") + status
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
	footer = lipgloss.NewStyle().Width(contentWidth).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
