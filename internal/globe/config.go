package globe

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("globe: invalid config")

// Config holds the fixed parameters of a globe. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Width and Height are the raster size in pixels.
	Width  int
	Height int

	// MapWidth and MapHeight are the mesh grid size. The texture asset holds
	// one extra row and column: (MapHeight+1) lines of (MapWidth+1) glyphs.
	MapWidth  int
	MapHeight int

	// Radius of the sphere in pixels. Zero means Width/4.
	Radius float64

	// Step is the angle added per tick, in radians.
	Step float64

	// FPS is the tick rate requested from the host.
	FPS int

	// FontSize is the glyph size in pixels.
	FontSize float64

	// MapPath locates the texture asset.
	MapPath string
}

// DefaultConfig returns the stock 150x150 globe.
func DefaultConfig() Config {
	return Config{
		Width:     150,
		Height:    150,
		MapWidth:  139,
		MapHeight: 34,
		Step:      0.05,
		FPS:       30,
		FontSize:  6,
		MapPath:   "earth_W140_H35.txt",
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: raster size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MapWidth <= 0 || c.MapHeight <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.MapWidth, c.MapHeight)
	case c.Radius < 0:
		return fmt.Errorf("%w: radius %v", ErrInvalidConfig, c.Radius)
	case c.Step < 0:
		return fmt.Errorf("%w: step %v", ErrInvalidConfig, c.Step)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.FontSize)
	}
	return nil
}

// SphereRadius resolves the radius, defaulting to a quarter of the width.
func (c Config) SphereRadius() float64 {
	if c.Radius > 0 {
		return c.Radius
	}
	return float64(c.Width / 4)
}

// AssetSize is the glyph grid stored in the texture asset.
func (c Config) AssetSize() (w, h int) {
	return c.MapWidth + 1, c.MapHeight + 1
}
