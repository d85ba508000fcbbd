package raster

// Primitive is a geometric shape the rasterizer can scan-convert.
// The variant set is closed: Point, Line, and Polygon are the only
// implementations. Primitives are immutable value objects; Draw reads
// them and never stores them.
type Primitive interface {
	// validate reports ErrInvalidPrimitive for malformed geometry.
	validate() error

	// rasterize scan-converts the primitive onto the canvas,
	// compositing its color over existing pixels.
	rasterize(c *Canvas)
}

// Point is a single position. It rasterizes to the one pixel nearest
// its coordinates.
type Point struct {
	Pos   Vec2
	Color Color
}

func (p Point) validate() error {
	if !p.Pos.IsFinite() {
		return ErrInvalidPrimitive
	}
	return nil
}

// Line is a segment between two endpoints. It rasterizes to an
// 8-connected run of pixels with no gaps; the pixel set is identical
// regardless of endpoint order.
type Line struct {
	P0, P1 Vec2
	Color  Color
}

func (l Line) validate() error {
	if !l.P0.IsFinite() || !l.P1.IsFinite() {
		return ErrInvalidPrimitive
	}
	return nil
}

// Polygon is a closed shape given by an ordered ring of at least three
// vertices. The last vertex connects back to the first implicitly.
// Interiors are resolved with the even-odd rule, so self-intersecting
// rings produce holes.
type Polygon struct {
	Vertices []Vec2
	Color    Color
}

func (p Polygon) validate() error {
	if len(p.Vertices) < 3 {
		return ErrInvalidPrimitive
	}
	for _, v := range p.Vertices {
		if !v.IsFinite() {
			return ErrInvalidPrimitive
		}
	}
	return nil
}

// Rect returns an axis-aligned rectangle as a Polygon. Scenes lean on
// it for grid-style compositions.
func Rect(x, y, w, h float64, col Color) Polygon {
	return Polygon{
		Vertices: []Vec2{
			{x, y},
			{x + w, y},
			{x + w, y + h},
			{x, y + h},
		},
		Color: col,
	}
}
