// Package globe turns an ASCII world map into a spinning globe raster.
//
// A Globe owns the sphere mesh, the rotation angle and the renderer. The host
// calls Step once per tick; Step advances the angle, rotates the mesh and
// returns a freshly drawn frame.
package globe

import (
	"fmt"
	"image"
	"sync"

	"spinglobe/internal/earthmap"
	"spinglobe/internal/geom"
)

// State is fixed at construction.
type State int

const (
	Unloaded State = iota
	Loaded
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Unloaded:
		return "unloaded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Sample is one texture cell: its glyph and where it currently sits.
type Sample struct {
	I, J    int
	Glyph   rune
	Pos     geom.Vec4
	Screen  image.Point
	Visible bool
}

// Globe is the spinning earth: mesh, angle and renderer behind one lock.
type Globe struct {
	mu sync.Mutex

	cfg   Config
	state State
	err   error

	// glyphs is the reversed map; glyphs[k] pairs with cloud[k].
	glyphs earthmap.Glyphs
	base   geom.PointCloud
	cloud  geom.PointCloud

	spin     Spinner
	renderer *Renderer
	frames   int
}

// New ensures the map asset exists, loads it and builds the mesh. A map that
// cannot be loaded or synthesized does not fail construction: the globe comes
// up Unloaded and renders a diagnostic frame. Only an invalid config is
// returned as an error.
func New(cfg Config) (*Globe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := cfg.AssetSize()
	glyphs, created, err := earthmap.Open(cfg.MapPath, w, h)
	if created {
		Logger().Info("synthesized placeholder map", "path", cfg.MapPath, "width", w, "height", h)
	}
	if err != nil {
		Logger().Warn("earth map unavailable", "path", cfg.MapPath, "err", err)
		g := newGlobe(cfg)
		g.err = err
		return g, nil
	}
	return NewFromGlyphs(cfg, glyphs)
}

// NewFromGlyphs builds a globe from an in-memory map in row-major order,
// without touching storage. The glyph count must match Config.AssetSize;
// otherwise the globe is Unloaded.
func NewFromGlyphs(cfg Config, glyphs earthmap.Glyphs) (*Globe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := newGlobe(cfg)
	w, h := cfg.AssetSize()
	if len(glyphs) != w*h {
		g.err = fmt.Errorf("%w: %d glyphs, want %dx%d=%d", earthmap.ErrMapUnavailable, len(glyphs), w, h, w*h)
		Logger().Warn("earth map unavailable", "err", g.err)
		return g, nil
	}
	g.glyphs = glyphs.Reversed()
	g.base = geom.Sphere(cfg.MapWidth, cfg.MapHeight, cfg.SphereRadius())
	g.cloud = g.base.Clone()
	g.state = Loaded
	Logger().Info("globe loaded", "points", len(g.cloud), "radius", cfg.SphereRadius())
	return g, nil
}

func newGlobe(cfg Config) *Globe {
	return &Globe{
		cfg:      cfg,
		state:    Unloaded,
		spin:     NewSpinner(cfg.Step),
		renderer: NewRenderer(cfg.Width, cfg.Height, cfg.MapWidth, cfg.MapHeight, NewFace(cfg.FontSize)),
	}
}

// Update advances the angle by one step and rotates the mesh to it.
func (g *Globe) Update() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.update()
}

// Render draws the current mesh. It always returns a frame of the
// configured size.
func (g *Globe) Render() *image.RGBA {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.render()
}

// Step runs Update then Render as one unit; a concurrent caller never sees
// a half-rotated mesh.
func (g *Globe) Step() *image.RGBA {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.update()
	g.frames++
	return g.render()
}

// The working cloud is reset from the base mesh and rotated in place by the
// accumulated angle, so each tick turns the globe by exactly one step.
func (g *Globe) update() {
	g.spin.Advance()
	if g.state != Loaded {
		return
	}
	copy(g.cloud, g.base)
	g.cloud.Rotate(g.spin.Angle())
}

func (g *Globe) render() *image.RGBA {
	if g.state != Loaded {
		return g.renderer.RenderDiagnostic(DiagMessage)
	}
	return g.renderer.Render(g.cloud, g.glyphs)
}

// Sample reports the state of grid cell (i, j), 0 <= i <= MapHeight,
// 0 <= j <= MapWidth.
func (g *Globe) Sample(i, j int) (Sample, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Loaded || i < 0 || i > g.cfg.MapHeight || j < 0 || j > g.cfg.MapWidth {
		return Sample{}, false
	}
	k := geom.Index(i, j, g.cfg.MapWidth)
	p := g.cloud[k]
	return Sample{
		I:       i,
		J:       j,
		Glyph:   g.glyphs[k],
		Pos:     p,
		Screen:  g.renderer.Project(p),
		Visible: g.renderer.Visible(k, p),
	}, true
}

func (g *Globe) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Err explains why the globe is Unloaded.
func (g *Globe) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

func (g *Globe) Angle() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spin.Angle()
}

// Frames counts completed Step calls.
func (g *Globe) Frames() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frames
}

// Points returns a copy of the current mesh.
func (g *Globe) Points() geom.PointCloud {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cloud.Clone()
}

func (g *Globe) Config() Config { return g.cfg }
