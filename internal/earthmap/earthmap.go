// Package earthmap loads the ASCII texture wrapped around the globe.
//
// The asset is plain text: h lines of w printable characters. When it is
// missing, Open writes a deterministic placeholder in its place and loads
// that instead.
package earthmap

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrMapNotFound reports that no asset exists at the requested path.
	ErrMapNotFound = errors.New("earthmap: map not found")
	// ErrMapUnavailable reports that no usable map could be produced.
	ErrMapUnavailable = errors.New("earthmap: map unavailable")
)

// Glyphs is a flat, row-major glyph sequence.
type Glyphs []rune

// Reversed returns a copy with the index order inverted.
func (g Glyphs) Reversed() Glyphs {
	out := make(Glyphs, len(g))
	for i, r := range g {
		out[len(g)-1-i] = r
	}
	return out
}

// String joins the glyphs back into rows of width w.
func (g Glyphs) String(w int) string {
	if w <= 0 {
		return string(g)
	}
	var b strings.Builder
	for i := 0; i < len(g); i += w {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(g[i:min(i+w, len(g))]))
	}
	return b.String()
}

// Load reads the map at path and returns exactly w*h glyphs with line
// separators stripped.
func Load(path string, w, h int) (Glyphs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMapNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrMapUnavailable, err)
	}
	s := strings.NewReplacer("\r", "", "\n", "").Replace(string(data))
	g := Glyphs(s)
	if len(g) != w*h {
		return nil, fmt.Errorf("%w: %s has %d glyphs, want %dx%d=%d", ErrMapUnavailable, path, len(g), w, h, w*h)
	}
	return g, nil
}

// Placeholder synthesizes a w x h map: a disc of "~" water striped with "#"
// land on every seventh diagonal, surrounded by blanks.
func Placeholder(w, h int) []string {
	lines := make([]string, h)
	row := make([]rune, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := x-w/2, y-h/2
			d := math.Sqrt(float64(dx*dx + dy*dy))
			switch {
			case d >= float64(w/4):
				row[x] = ' '
			case (x+y)%7 == 0:
				row[x] = '#'
			default:
				row[x] = '~'
			}
		}
		lines[y] = string(row)
	}
	return lines
}

// WritePlaceholder persists Placeholder(w, h) at path, creating parent
// directories as needed.
func WritePlaceholder(path string, w, h int) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(strings.Join(Placeholder(w, h), "\n")), 0o644)
}

// Open makes sure a map exists at path and loads it. A missing asset is
// replaced by the placeholder; if that fails too the error wraps
// ErrMapUnavailable. Open never returns ErrMapNotFound.
func Open(path string, w, h int) (g Glyphs, created bool, err error) {
	g, err = Load(path, w, h)
	if err == nil || !errors.Is(err, ErrMapNotFound) {
		return g, false, err
	}
	if werr := WritePlaceholder(path, w, h); werr != nil {
		return nil, false, fmt.Errorf("%w: write placeholder: %v", ErrMapUnavailable, werr)
	}
	g, err = Load(path, w, h)
	if err != nil {
		if errors.Is(err, ErrMapNotFound) {
			err = fmt.Errorf("%w: placeholder vanished: %s", ErrMapUnavailable, path)
		}
		return nil, true, err
	}
	return g, true, nil
}
