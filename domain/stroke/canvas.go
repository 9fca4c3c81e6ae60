// Package stroke turns pointer drags into a grayscale raster.
package stroke

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Config holds the fixed canvas geometry.
type Config struct {
	// Size is the width and height of the square canvas in pixels.
	Size int
	// Width is the stroke width in pixels.
	Width float64
}

// DefaultConfig returns the canvas geometry the dataset was collected with.
func DefaultConfig() *Config {
	return &Config{
		Size:  280,
		Width: 10,
	}
}

var (
	background = color.Gray{Y: 0xff}
	ink        = color.Gray{Y: 0x00}
)

// Canvas is the mutable raster a drawing accumulates into.
// It is not safe for concurrent use.
type Canvas struct {
	size     int
	img      *image.Gray
	stroker  *rasterx.Stroker
	last     fixed.Point26_6
	drawing  bool
	segments int
}

// NewCanvas creates a blank canvas.
func NewCanvas(cfg *Config) *Canvas {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	img := image.NewGray(image.Rect(0, 0, cfg.Size, cfg.Size))
	scanner := rasterx.NewScannerGV(cfg.Size, cfg.Size, img, img.Bounds())
	stroker := rasterx.NewStroker(cfg.Size, cfg.Size, scanner)
	stroker.SetStroke(toFixed(cfg.Width), toFixed(4), rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(ink)

	c := &Canvas{
		size:    cfg.Size,
		img:     img,
		stroker: stroker,
	}
	c.Reset()
	return c
}

// Begin records the start point of a stroke.
func (c *Canvas) Begin(x, y float32) {
	c.last = toPoint(x, y)
	c.drawing = true
}

// Extend draws a segment from the last recorded point to (x, y) and makes
// (x, y) the new last point. Without a preceding Begin it starts a stroke.
func (c *Canvas) Extend(x, y float32) {
	p := toPoint(x, y)
	if !c.drawing {
		c.Begin(x, y)
		return
	}
	if p == c.last {
		return
	}

	c.stroker.Clear()
	c.stroker.Start(c.last)
	c.stroker.Line(p)
	c.stroker.Stop(false)
	c.stroker.Draw()

	c.last = p
	c.segments++
}

// End finishes the current stroke. Drawn pixels stay on the canvas.
func (c *Canvas) End() {
	c.drawing = false
}

// Reset clears the canvas to blank.
func (c *Canvas) Reset() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	c.stroker.Clear()
	c.drawing = false
	c.segments = 0
}

// Empty reports whether nothing has been drawn since the last Reset.
func (c *Canvas) Empty() bool {
	return c.segments == 0
}

// Image returns the live buffer. Callers must not keep it across Reset.
func (c *Canvas) Image() *image.Gray {
	return c.img
}

// Snapshot returns an independent copy of the buffer.
func (c *Canvas) Snapshot() *image.Gray {
	out := image.NewGray(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toPoint(x, y float32) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(float64(x)), Y: toFixed(float64(y))}
}
