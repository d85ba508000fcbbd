package scenes

import (
	"math"

	"github.com/gogpu/raster"
)

// triangle builds a triangle polygon from three positions.
func triangle(a, b, c raster.Vec2, col raster.Color) raster.Polygon {
	return raster.Polygon{Vertices: []raster.Vec2{a, b, c}, Color: col}
}

// buildE1 overlaps three half-transparent triangles so every pairwise
// and triple overlap shows a distinct accumulated color.
func buildE1(size int) []raster.Primitive {
	s := float64(size)
	return []raster.Primitive{
		triangle(
			raster.V2(s*0.15, s*0.80),
			raster.V2(s*0.50, s*0.10),
			raster.V2(s*0.85, s*0.80),
			raster.New(1, 0, 0, 0.5),
		),
		triangle(
			raster.V2(s*0.10, s*0.35),
			raster.V2(s*0.90, s*0.25),
			raster.V2(s*0.50, s*0.95),
			raster.New(0, 1, 0, 0.5),
		),
		triangle(
			raster.V2(s*0.30, s*0.20),
			raster.V2(s*0.95, s*0.60),
			raster.V2(s*0.15, s*0.90),
			raster.New(0, 0, 1, 0.5),
		),
	}
}

// buildDeStijl composes a Mondrian-style grid: primary-color panels
// separated by heavy black bars, on the white background.
func buildDeStijl(size int) []raster.Primitive {
	s := float64(size)
	bar := s / 32

	prims := []raster.Primitive{
		raster.Rect(0, 0, s*0.70, s*0.65, raster.Red),
		raster.Rect(s*0.70, 0, s*0.30, s*0.35, raster.White),
		raster.Rect(0, s*0.65, s*0.25, s*0.35, raster.Blue),
		raster.Rect(s*0.75, s*0.70, s*0.25, s*0.30, raster.Yellow),
	}

	// Grid bars, drawn last so they sit on top of the panels.
	for _, b := range []raster.Polygon{
		raster.Rect(s*0.70-bar/2, 0, bar, s, raster.Black),
		raster.Rect(0, s*0.65-bar/2, s*0.70, bar, raster.Black),
		raster.Rect(s*0.70, s*0.35-bar/2, s*0.30, bar, raster.Black),
		raster.Rect(s*0.25-bar/2, s*0.65, bar, s*0.35, raster.Black),
		raster.Rect(s*0.70, s*0.70-bar/2, s*0.30, bar, raster.Black),
		raster.Rect(s*0.75-bar/2, s*0.70, bar, s*0.30, raster.Black),
	} {
		prims = append(prims, b)
	}
	return prims
}

// buildE2 renders a five-pointed star as a single self-intersecting
// polygon. The even-odd rule leaves the central pentagon unfilled,
// which is the point of the scene; the outline retraces the same ring
// with line segments.
func buildE2(size int) []raster.Primitive {
	s := float64(size)
	cx, cy := s/2, s/2
	r := s * 0.42

	// Star ring: every second vertex of a pentagon.
	ring := make([]raster.Vec2, 5)
	for i := range ring {
		a := -math.Pi/2 + float64(i*2)*2*math.Pi/5
		ring[i] = raster.V2(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}

	prims := []raster.Primitive{
		raster.Polygon{Vertices: ring, Color: raster.New(0.9, 0.6, 0.1, 0.9)},
	}
	for i := range ring {
		prims = append(prims, raster.Line{
			P0:    ring[i],
			P1:    ring[(i+1)%len(ring)],
			Color: raster.Black,
		})
	}
	prims = append(prims, raster.Point{Pos: raster.V2(cx, cy), Color: raster.Black})
	return prims
}

// buildE3 arranges a hue wheel of translucent regular polygons around
// a fan of lines.
func buildE3(size int) []raster.Primitive {
	s := float64(size)
	cx, cy := s/2, s/2

	var prims []raster.Primitive

	// Line fan across the full canvas.
	const rays = 24
	for i := 0; i < rays; i++ {
		a := float64(i) * math.Pi / rays
		dx, dy := math.Cos(a)*s, math.Sin(a)*s
		prims = append(prims, raster.Line{
			P0:    raster.V2(cx-dx, cy-dy),
			P1:    raster.V2(cx+dx, cy+dy),
			Color: raster.New(0.3, 0.3, 0.3, 0.4),
		})
	}

	// Ring of hexagons, hue stepping around the wheel.
	const n = 9
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / n
		px := cx + math.Cos(a)*s*0.33
		py := cy + math.Sin(a)*s*0.33
		col := raster.HSL(float64(i)*360/n, 0.8, 0.55)
		col.A = 0.7
		prims = append(prims, regularPolygon(6, px, py, s*0.12, a, col))
	}
	return prims
}

// regularPolygon builds an n-gon centered at (cx, cy) with the given
// circumradius and rotation.
func regularPolygon(n int, cx, cy, r, rot float64, col raster.Color) raster.Polygon {
	verts := make([]raster.Vec2, n)
	for i := range verts {
		a := rot + float64(i)*2*math.Pi/float64(n)
		verts[i] = raster.V2(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return raster.Polygon{Vertices: verts, Color: col}
}
