package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

func testFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 50, 255}), image.Point{}, draw.Src)
	// a green square in the middle
	draw.Draw(img, image.Rect(10, 10, 30, 30), image.NewUniform(color.RGBA{0, 255, 0, 255}), image.Point{}, draw.Src)
	return img
}

func TestRasterize_Size(t *testing.T) {
	img := testFrame()
	for _, mode := range []Mode{ModeHalfBlock, ModeBraille} {
		t.Run(mode.String(), func(t *testing.T) {
			out := Rasterize(img, 20, 10, mode, draw.NearestNeighbor)
			lines := strings.Split(out, "\n")
			if len(lines) != 10 {
				t.Fatalf("Rasterize() rows = %d, want 10", len(lines))
			}
			for i, l := range lines {
				if w := lipgloss.Width(l); w != 20 {
					t.Errorf("row %d width = %d, want 20", i, w)
				}
			}
		})
	}
}

func TestRasterize_Deterministic(t *testing.T) {
	img := testFrame()
	a := Rasterize(img, 16, 8, ModeHalfBlock, draw.ApproxBiLinear)
	b := Rasterize(img, 16, 8, ModeHalfBlock, draw.ApproxBiLinear)
	if a != b {
		t.Error("Rasterize() output differs between identical calls")
	}
}

func TestRasterize_BrailleInk(t *testing.T) {
	out := Rasterize(testFrame(), 20, 10, ModeBraille, nil)
	lines := strings.Split(out, "\n")
	// corners are background, the middle is the green square
	if !strings.ContainsRune(lines[0], ' ') {
		t.Errorf("top row has no blank cells: %q", lines[0])
	}
	if !strings.ContainsRune(lines[5], '⣿') {
		t.Errorf("middle row has no full braille cell: %q", lines[5])
	}
}

func TestRasterize_Empty(t *testing.T) {
	if got := Rasterize(nil, 10, 10, ModeHalfBlock, nil); got != "" {
		t.Errorf("Rasterize(nil) = %q, want empty", got)
	}
	if got := Rasterize(testFrame(), 0, 10, ModeHalfBlock, nil); got != "" {
		t.Errorf("Rasterize(cols=0) = %q, want empty", got)
	}
}

func TestFitCells(t *testing.T) {
	tests := []struct {
		name               string
		termW, termH       int
		wantCols, wantRows int
	}{
		{"wide terminal", 200, 40, 80, 40},
		{"narrow terminal", 60, 40, 60, 30},
		{"tiny", 1, 1, 1, 1},
		{"zero", 0, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := FitCells(tt.termW, tt.termH, 150, 150)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("FitCells(%d, %d) = %d, %d; want %d, %d", tt.termW, tt.termH, cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"halfblock", ModeHalfBlock, false},
		{"", ModeHalfBlock, false},
		{"Braille", ModeBraille, false},
		{"sixel", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if ModeBraille.Next() != ModeHalfBlock || ModeHalfBlock.Next() != ModeBraille {
		t.Error("Mode.Next() does not cycle")
	}
}

func TestParseScaler(t *testing.T) {
	for _, name := range []string{"nearest", "approx", "bilinear", "catmullrom"} {
		if s, err := ParseScaler(name); err != nil || s == nil {
			t.Errorf("ParseScaler(%q) = %v, %v", name, s, err)
		}
	}
	if _, err := ParseScaler("lanczos"); err == nil {
		t.Error("ParseScaler(lanczos) succeeded, want error")
	}
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(-1, 0)
	b.setPixel(9, 9)
	lines := b.toLines()
	if got, want := lines[0], string([]rune{rune(0x2800 + 0x01 + 0x80), ' '}); got != want {
		t.Errorf("toLines() = %q, want %q", got, want)
	}
}
