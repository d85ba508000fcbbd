package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Canvas is a fixed-size rectangular buffer of Color values.
//
// The canvas owns its pixel storage exclusively; Draw is its only
// writer. Coordinates outside [0,W)x[0,H) are clipped: Set becomes a
// no-op and Get returns the background color. Clipping is deliberate
// policy rather than an error, because rasterized geometry routinely
// extends past the canvas edges.
//
// A Canvas is not safe for concurrent use: at most one draw may be in
// flight at a time, and reads (including encoding) must not overlap a
// draw.
type Canvas struct {
	width      int
	height     int
	background Color
	pix        []Color // row-major, y*width+x
}

// NewCanvas creates a width x height canvas with every pixel set to
// background. It returns ErrInvalidDimension if either dimension is
// not positive.
func NewCanvas(width, height int, background Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	c := &Canvas{
		width:      width,
		height:     height,
		background: background,
		pix:        make([]Color, width*height),
	}
	c.Clear(background)
	return c, nil
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Background returns the color the canvas was created (or last
// cleared) with.
func (c *Canvas) Background() Color {
	return c.background
}

// Get returns the color of a single pixel. Out-of-range coordinates
// return the background color.
func (c *Canvas) Get(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return c.background
	}
	return c.pix[y*c.width+x]
}

// Set sets the color of a single pixel. Out-of-range coordinates are
// silently clipped.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// Clear fills the entire canvas with a color and makes it the new
// background.
func (c *Canvas) Clear(col Color) {
	c.background = col
	for i := range c.pix {
		c.pix[i] = col
	}
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Get(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c)
}
