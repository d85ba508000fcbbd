// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scan implements the scan-conversion primitives used by the
// rasterizer: an edge table with even-odd span extraction for polygon
// fills, and an integer-error line walker for segments.
package scan

import (
	"math"
	"slices"
)

// Vertex is a polygon vertex in continuous canvas coordinates.
type Vertex struct {
	X, Y float64
}

// Edge represents a non-horizontal polygon edge normalized so that
// YMin <= YMax. An edge contributes to scanlines y in the half-open
// interval [YMin, YMax); the half-open rule is what keeps a scanline
// through a shared vertex from counting the vertex twice.
type Edge struct {
	// YMin is the minimum Y coordinate (top of edge)
	YMin float64

	// YMax is the maximum Y coordinate (bottom of edge)
	YMax float64

	// XAtYMin is the X coordinate at YMin
	XAtYMin float64

	// DXDY is the inverse slope: change in X per unit Y
	DXDY float64
}

// NewEdge creates an edge from two points, normalized top-down.
// Returns nil if the edge is horizontal; horizontal edges carry no
// vertical extent and are excluded from intersection computation.
func NewEdge(x0, y0, x1, y1 float64) *Edge {
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dy := y1 - y0
	if dy == 0 {
		return nil
	}

	return &Edge{
		YMin:    y0,
		YMax:    y1,
		XAtYMin: x0,
		DXDY:    (x1 - x0) / dy,
	}
}

// XAt returns the X intersection of the edge with scanline y.
func (e *Edge) XAt(y float64) float64 {
	return e.XAtYMin + (y-e.YMin)*e.DXDY
}

// EdgeTable holds the non-horizontal edges of one polygon ring.
type EdgeTable struct {
	edges []Edge
	xs    []float64 // scratch for per-scanline intersections
}

// BuildEdgeTable constructs the edge table for a closed ring of
// vertices. The ring is closed implicitly: the last vertex connects
// back to the first.
func BuildEdgeTable(verts []Vertex) *EdgeTable {
	t := &EdgeTable{edges: make([]Edge, 0, len(verts))}
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		if e := NewEdge(a.X, a.Y, b.X, b.Y); e != nil {
			t.edges = append(t.edges, *e)
		}
	}
	return t
}

// Empty reports whether the table holds no edges (a fully horizontal
// or degenerate ring).
func (t *EdgeTable) Empty() bool {
	return len(t.edges) == 0
}

// Bounds returns the half-open integer scanline range [y0, y1)
// covered by the polygon's vertical extent.
func (t *EdgeTable) Bounds() (y0, y1 int) {
	if len(t.edges) == 0 {
		return 0, 0
	}
	minY := t.edges[0].YMin
	maxY := t.edges[0].YMax
	for _, e := range t.edges[1:] {
		minY = math.Min(minY, e.YMin)
		maxY = math.Max(maxY, e.YMax)
	}
	return int(math.Ceil(minY)), int(math.Ceil(maxY))
}

// Spans calls fn with each half-open pixel span [x0, x1) covered by
// the polygon on scanline y, resolved with the even-odd rule: sorted
// intersections are consumed in pairs, so a self-intersecting ring
// alternates between filled and unfilled regions.
func (t *EdgeTable) Spans(y int, fn func(x0, x1 int)) {
	t.xs = t.xs[:0]
	fy := float64(y)
	for i := range t.edges {
		e := &t.edges[i]
		if e.YMin <= fy && fy < e.YMax {
			t.xs = append(t.xs, e.XAt(fy))
		}
	}
	slices.Sort(t.xs)

	// The half-open edge rule guarantees an even count.
	for i := 0; i+1 < len(t.xs); i += 2 {
		x0 := int(math.Ceil(t.xs[i]))
		x1 := int(math.Ceil(t.xs[i+1]))
		if x0 < x1 {
			fn(x0, x1)
		}
	}
}
