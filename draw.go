package raster

import (
	"math"

	"github.com/gogpu/raster/internal/scan"
)

// Draw scan-converts a primitive onto the canvas, compositing its
// color over the pixels it covers with Color.Over. Draws are strictly
// sequential per canvas; the caller determines the order, and later
// draws composite on top of earlier ones.
//
// Malformed primitives return ErrInvalidPrimitive and draw nothing.
// Geometry extending past the canvas edges is silently clipped.
func Draw(c *Canvas, p Primitive) error {
	if err := p.validate(); err != nil {
		return err
	}
	p.rasterize(c)
	return nil
}

// composite blends col over the current pixel value. Out-of-range
// coordinates fall through to Set's clipping.
func composite(c *Canvas, x, y int, col Color) {
	c.Set(x, y, col.Over(c.Get(x, y)))
}

// nearestPixel maps a continuous position to the nearest grid pixel.
// Ties round half away from zero, the math.Round convention.
func nearestPixel(v Vec2) (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

func (p Point) rasterize(c *Canvas) {
	x, y := nearestPixel(p.Pos)
	composite(c, x, y, p.Color)
}

func (l Line) rasterize(c *Canvas) {
	x0, y0 := nearestPixel(l.P0)
	x1, y1 := nearestPixel(l.P1)
	if x0 == x1 && y0 == y1 {
		// Degenerate segment, same as a point.
		composite(c, x0, y0, l.Color)
		return
	}
	scan.Line(x0, y0, x1, y1, func(x, y int) {
		composite(c, x, y, l.Color)
	})
}

func (p Polygon) rasterize(c *Canvas) {
	verts := make([]scan.Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		verts[i] = scan.Vertex{X: v.X, Y: v.Y}
	}

	table := scan.BuildEdgeTable(verts)
	if table.Empty() {
		Logger().Debug("polygon has no vertical extent, nothing to fill",
			"vertices", len(p.Vertices))
		return
	}

	y0, y1 := table.Bounds()
	y0 = max(y0, 0)
	y1 = min(y1, c.Height())

	for y := y0; y < y1; y++ {
		table.Spans(y, func(x0, x1 int) {
			x0 = max(x0, 0)
			x1 = min(x1, c.Width())
			for x := x0; x < x1; x++ {
				composite(c, x, y, p.Color)
			}
		})
	}
}
