// Package capture writes globe frames to image files.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// ErrNoFrames is returned when asked to record zero frames.
var ErrNoFrames = errors.New("capture: no frames requested")

// FrameSource yields one frame per call, advancing its own clock.
type FrameSource interface {
	Step() *image.RGBA
}

// WritePNG encodes a single frame.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteGIF records frames from src into a looping animated GIF. delay is in
// hundredths of a second.
func WriteGIF(w io.Writer, src FrameSource, frames, delay int) error {
	if frames <= 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{LoopCount: 0}
	for i := 0; i < frames; i++ {
		anim.Image = append(anim.Image, quantize(src.Step()))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.Draw(p, b, img, b.Min, draw.Src)
	return p
}

// Record steps src frames times and writes the result to path. A .gif path
// gets the whole animation; a .png path gets the last frame only.
func Record(path string, src FrameSource, frames, fps int) error {
	if frames <= 0 {
		return ErrNoFrames
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".gif" && ext != ".png" {
		return fmt.Errorf("capture: unsupported output %q", ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext {
	case ".gif":
		delay := 100 / max(fps, 1)
		err = WriteGIF(f, src, frames, max(delay, 2))
	case ".png":
		var last *image.RGBA
		for i := 0; i < frames; i++ {
			last = src.Step()
		}
		err = WritePNG(f, last)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// no half-written output left behind
		os.Remove(path)
		return err
	}
	return nil
}
