package tui

import (
	"fmt"
	"path/filepath"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshInfo rebuilds the read-only info table from the globe.
func (m *Model) refreshInfo() {
	cfg := m.globe.Config()
	state := m.globe.State().String()
	if err := m.globe.Err(); err != nil {
		state += " (" + err.Error() + ")"
	}
	rows := []table.Row{
		{"map", filepath.Base(cfg.MapPath)},
		{"state", state},
		{"mesh", fmt.Sprintf("%dx%d, %d points", cfg.MapWidth, cfg.MapHeight, len(m.globe.Points()))},
		{"radius", fmt.Sprintf("%.0f px", cfg.SphereRadius())},
		{"raster", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)},
		{"angle", fmt.Sprintf("%.2f rad", m.globe.Angle())},
		{"step", fmt.Sprintf("%.3f rad @ %d fps", cfg.Step, cfg.FPS)},
		{"frames", fmt.Sprintf("%d", m.globe.Frames())},
		{"mode", m.mode.String()},
	}
	m.tbl.SetRows(rows)
}
