package globe

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"spinglobe/internal/earthmap"
	"spinglobe/internal/geom"
)

// Palette
var (
	BackgroundColor     = color.RGBA{0, 0, 50, 255}
	GlyphColor          = color.RGBA{0, 255, 0, 255}
	DiagBackgroundColor = color.RGBA{10, 10, 60, 255}
	DiagTextColor       = color.RGBA{255, 255, 255, 255}
)

// DiagMessage is drawn when no map could be loaded.
const DiagMessage = "Earth file not found"

// Renderer projects a point cloud orthographically along the Y axis and
// draws one glyph per visible point. It keeps no state between calls.
type Renderer struct {
	width, height int
	mapW, mapH    int
	face          font.Face
	ascent        fixed.Int26_6
}

func NewRenderer(width, height, mapW, mapH int, face font.Face) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		mapW:   mapW,
		mapH:   mapH,
		face:   face,
		ascent: face.Metrics().Ascent,
	}
}

// Visible skips the first and last mesh rows (the poles) and every point on
// the far hemisphere.
func (r *Renderer) Visible(k int, p geom.Vec4) bool {
	return k > r.mapW-1 && k < r.mapH*r.mapW-r.mapW && p.Y > 0
}

// Project maps X and Z onto the canvas, centred. Offsets truncate toward zero.
func (r *Renderer) Project(p geom.Vec4) image.Point {
	return image.Pt(r.width/2+int(p.X), r.height/2+int(p.Z))
}

// Render clears a new canvas and draws glyphs[k] at the projection of
// cloud[k] for every visible k. glyphs must already be in render order
// (the reversed map).
func (r *Renderer) Render(cloud geom.PointCloud, glyphs earthmap.Glyphs) *image.RGBA {
	img := r.canvas(BackgroundColor)
	fg := image.NewUniform(GlyphColor)
	n := min(len(cloud), len(glyphs))
	for k := 0; k < n; k++ {
		if !r.Visible(k, cloud[k]) {
			continue
		}
		r.drawGlyph(img, r.Project(cloud[k]), glyphs[k], fg)
	}
	return img
}

// RenderDiagnostic produces the frame shown when the globe is unloaded.
func (r *Renderer) RenderDiagnostic(msg string) *image.RGBA {
	img := r.canvas(DiagBackgroundColor)
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(DiagTextColor),
		Face: r.face,
		Dot:  fixed.P(10, r.height/2).Add(fixed.Point26_6{Y: r.ascent}),
	}
	d.DrawString(msg)
	return img
}

func (r *Renderer) canvas(bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// drawGlyph places the top-left of the glyph box at pt.
func (r *Renderer) drawGlyph(dst draw.Image, pt image.Point, g rune, src image.Image) {
	if g == ' ' {
		return
	}
	dot := fixed.P(pt.X, pt.Y).Add(fixed.Point26_6{Y: r.ascent})
	dr, mask, maskp, _, ok := r.face.Glyph(dot, g)
	if !ok || dr.Empty() {
		return
	}
	draw.DrawMask(dst, dr, src, image.Point{}, hardMask{mask}, maskp, draw.Over)
}

// hardMask turns glyph coverage into on/off pixels so glyphs are drawn
// without antialiasing. The cutoff is low: small faces rarely cover half a
// pixel, and every glyph must still leave ink.
type hardMask struct{ image.Image }

// inkCutoff is the 16-bit coverage above which a glyph pixel is drawn.
const inkCutoff = 0x2000

func (hardMask) ColorModel() color.Model { return color.AlphaModel }

func (m hardMask) At(x, y int) color.Color {
	if _, _, _, a := m.Image.At(x, y).RGBA(); a > inkCutoff {
		return color.Opaque
	}
	return color.Transparent
}
