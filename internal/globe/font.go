package globe

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

var parseMono = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

// NewFace returns Go Mono at size pixels, or the 7x13 bitmap face when the
// outline font cannot be used.
func NewFace(size float64) font.Face {
	f, err := parseMono()
	if err == nil {
		var face font.Face
		face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			Logger().Debug("glyph face ready", "font", "gomono", "size", size)
			return face
		}
	}
	Logger().Warn("falling back to bitmap face", "size", size, "err", err)
	return basicfont.Face7x13
}
