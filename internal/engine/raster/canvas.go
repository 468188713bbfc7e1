// Package raster draws wireframe segments into an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/Faultbox/quatviz/pkg/math"
)

// DefaultLineWidth is the stroke width in pixels.
const DefaultLineWidth = 1.5

// Canvas is an offscreen line-draw surface. Segments are stroked as thin
// anti-aliased quads. Consecutive segments of the same color are batched
// into one rasterizer pass; the batch is flushed on color change and
// before the image is read.
type Canvas struct {
	img       *image.RGBA
	rast      *vector.Rasterizer
	LineWidth float32

	batch   color.RGBA
	pending int
}

// NewCanvas creates a canvas of the given size, cleared to transparent black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		rast:      vector.NewRasterizer(width, height),
		LineWidth: DefaultLineWidth,
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the canvas with a solid color and drops pending segments.
func (c *Canvas) Clear(bg color.RGBA) {
	c.reset()
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// DrawSegment strokes the segment p1-p2.
func (c *Canvas) DrawSegment(p1, p2 math.Vec2, col color.RGBA) {
	if c.pending > 0 && col != c.batch {
		c.Flush()
	}
	c.batch = col

	hw := c.LineWidth / 2
	d := p2.Sub(p1)
	if d.Length() == 0 {
		// Zero-length segment: a square dot.
		d = math.Vec2{X: 1}
	}
	d = d.Normalize()
	n := math.Vec2{X: -d.Y * hw, Y: d.X * hw}
	// Extend the ends by half a width so joints meet.
	e := d.Scale(hw)

	a := p1.Sub(e)
	b := p2.Add(e)
	c.rast.MoveTo(a.X+n.X, a.Y+n.Y)
	c.rast.LineTo(b.X+n.X, b.Y+n.Y)
	c.rast.LineTo(b.X-n.X, b.Y-n.Y)
	c.rast.LineTo(a.X-n.X, a.Y-n.Y)
	c.rast.ClosePath()
	c.pending++
}

// Flush composites pending segments onto the image.
func (c *Canvas) Flush() {
	if c.pending == 0 {
		return
	}
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(c.batch), image.Point{})
	c.reset()
}

// Image flushes pending segments and returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	c.Flush()
	return c.img
}

func (c *Canvas) reset() {
	w, h := c.Size()
	c.rast.Reset(w, h)
	c.pending = 0
}
