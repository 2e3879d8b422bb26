package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Mode selects how a raster becomes terminal cells.
type Mode int

const (
	// ModeHalfBlock draws one "▀" per cell: foreground is the upper pixel,
	// background the lower one.
	ModeHalfBlock Mode = iota
	// ModeBraille packs 2x4 pixels per cell as braille dots in one ink colour.
	ModeBraille
)

func (m Mode) String() string {
	switch m {
	case ModeHalfBlock:
		return "halfblock"
	case ModeBraille:
		return "braille"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Next cycles through the modes.
func (m Mode) Next() Mode {
	if m == ModeHalfBlock {
		return ModeBraille
	}
	return ModeHalfBlock
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "halfblock", "half", "":
		return ModeHalfBlock, nil
	case "braille":
		return ModeBraille, nil
	}
	return 0, fmt.Errorf("tui: unknown mode %q", s)
}

// ParseScaler maps a name onto an x/image/draw interpolator.
func ParseScaler(s string) (draw.Interpolator, error) {
	switch strings.ToLower(s) {
	case "nearest", "":
		return draw.NearestNeighbor, nil
	case "approx", "approxbilinear":
		return draw.ApproxBiLinear, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("tui: unknown scaler %q", s)
}

// FitCells picks the largest cols x rows block that fits the terminal area
// and keeps the raster's aspect ratio. Terminal cells are about twice as tall
// as wide, and both modes map two pixel rows per column width.
func FitCells(termW, termH, imgW, imgH int) (cols, rows int) {
	if termW <= 0 || termH <= 0 || imgW <= 0 || imgH <= 0 {
		return 0, 0
	}
	cols = min(termW, termH*2*imgW/imgH)
	rows = cols * imgH / (2 * imgW)
	return max(cols, 1), max(rows, 1)
}

// Rasterize converts a frame into cols x rows terminal cells. The same frame
// and size always yield the same text.
func Rasterize(img image.Image, cols, rows int, mode Mode, s draw.Scaler) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	if s == nil {
		s = draw.NearestNeighbor
	}
	switch mode {
	case ModeBraille:
		return rasterizeBraille(img, cols, rows, s)
	default:
		return rasterizeHalfBlock(img, cols, rows, s)
	}
}

func scale(img image.Image, w, h int, s draw.Scaler) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	s.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func rasterizeHalfBlock(img image.Image, cols, rows int, s draw.Scaler) string {
	px := scale(img, cols, rows*2, s)
	styles := make(map[[2]color.RGBA]lipgloss.Style)
	style := func(k [2]color.RGBA) lipgloss.Style {
		st, ok := styles[k]
		if !ok {
			st = lipgloss.NewStyle().Foreground(hexColor(k[0])).Background(hexColor(k[1]))
			styles[k] = st
		}
		return st
	}

	var b strings.Builder
	for cy := 0; cy < rows; cy++ {
		if cy > 0 {
			b.WriteByte('\n')
		}
		// consecutive cells with the same colours share one styled run
		run := 0
		var cur [2]color.RGBA
		for cx := 0; cx < cols; cx++ {
			k := [2]color.RGBA{px.RGBAAt(cx, 2*cy), px.RGBAAt(cx, 2*cy+1)}
			if run > 0 && k != cur {
				b.WriteString(style(cur).Render(strings.Repeat("▀", run)))
				run = 0
			}
			cur = k
			run++
		}
		b.WriteString(style(cur).Render(strings.Repeat("▀", run)))
	}
	return b.String()
}

func rasterizeBraille(img image.Image, cols, rows int, s draw.Scaler) string {
	px := scale(img, cols*2, rows*4, s)
	// the top-left corner of a frame is always background
	bg := px.RGBAAt(0, 0)
	br := newBrailleBuf(cols, rows)
	for y := 0; y < rows*4; y++ {
		for x := 0; x < cols*2; x++ {
			if inked(px.RGBAAt(x, y), bg) {
				br.setPixel(x, y)
			}
		}
	}
	return brailleInk.Render(strings.Join(br.toLines(), "\n"))
}

func inked(c, bg color.RGBA) bool {
	d := absDiff(c.R, bg.R) + absDiff(c.G, bg.G) + absDiff(c.B, bg.B)
	return d > 96
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
