// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

// Line walks the pixels of the segment between two grid points using
// Bresenham's integer-error algorithm and calls fn for each one. The
// visited set is 8-connected with no gaps and includes both endpoints.
//
// Endpoints are canonicalized (top-to-bottom, then left-to-right)
// before walking, so Line(a, b) and Line(b, a) visit the identical
// pixel set; only the visit order may differ.
func Line(x0, y0, x1, y1 int, fn func(x, y int)) {
	if y1 < y0 || (y1 == y0 && x1 < x0) {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fn(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
