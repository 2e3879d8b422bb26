package tui

import (
	"image"

	"github.com/charmbracelet/bubbles/help"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/image/draw"

	"spinglobe/internal/globe"
)

// Options tune the terminal presentation only; the globe itself is
// configured through globe.Config.
type Options struct {
	Mode   Mode
	Scaler draw.Interpolator
}

type Model struct {
	width  int
	height int

	globe *globe.Globe
	frame *image.RGBA
	fps   int

	mode   Mode
	scaler draw.Interpolator

	paused  bool
	tickTag int

	status string

	keys keyMap
	help help.Model

	// info panel
	showInfo bool
	tbl      table.Model
}

func New(g *globe.Globe, opts Options) Model {
	if opts.Scaler == nil {
		opts.Scaler = draw.NearestNeighbor
	}
	m := Model{
		globe:  g,
		frame:  g.Render(),
		fps:    g.Config().FPS,
		mode:   opts.Mode,
		scaler: opts.Scaler,
		status: "spinglobe ready",
		keys:   defaultKeys(),
		help:   help.New(),
	}
	if err := g.Err(); err != nil {
		m.status = "map unavailable: " + err.Error()
	}
	m.tbl = table.New(
		table.WithColumns([]table.Column{{Title: "Field", Width: 10}, {Title: "Value", Width: 28}}),
		table.WithHeight(9),
	)
	return m
}

func (m Model) Init() tea.Cmd { return tickCmd(m.fps, m.tickTag) }

// Frame is the most recent raster shown by the model.
func (m Model) Frame() *image.RGBA { return m.frame }

func (m Model) Paused() bool { return m.paused }

func (m Model) Mode() Mode { return m.mode }
