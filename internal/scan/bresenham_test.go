// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import (
	"testing"
)

func collect(x0, y0, x1, y1 int) [][2]int {
	var pts [][2]int
	Line(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, [2]int{x, y})
	})
	return pts
}

func TestLine_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"shallow", 0, 0, 9, 3},
		{"steep", 0, 0, 3, 9},
		{"horizontal", 2, 5, 11, 5},
		{"vertical", 5, 2, 5, 11},
		{"negative direction", 9, 7, 1, 1},
		{"single pixel", 4, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := collect(tt.x0, tt.y0, tt.x1, tt.y1)
			has := func(x, y int) bool {
				for _, p := range pts {
					if p == [2]int{x, y} {
						return true
					}
				}
				return false
			}
			if !has(tt.x0, tt.y0) || !has(tt.x1, tt.y1) {
				t.Errorf("line (%d,%d)-(%d,%d) missing an endpoint: %v",
					tt.x0, tt.y0, tt.x1, tt.y1, pts)
			}
			if want := max(abs(tt.x1-tt.x0), abs(tt.y1-tt.y0)) + 1; len(pts) != want {
				t.Errorf("line visited %d pixels, want %d", len(pts), want)
			}
		})
	}
}

func TestLine_EightConnected(t *testing.T) {
	pts := collect(1, 2, 14, 7)
	for i := 1; i < len(pts); i++ {
		dx := abs(pts[i][0] - pts[i-1][0])
		dy := abs(pts[i][1] - pts[i-1][1])
		if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("step %d: %v -> %v is not an 8-connected move", i, pts[i-1], pts[i])
		}
	}
}

func TestLine_SymmetricPixelSet(t *testing.T) {
	cases := [][4]int{
		{0, 0, 13, 5},
		{3, 11, 12, 2},
		{0, 0, 5, 13},
		{7, 1, 2, 14},
	}
	for _, c := range cases {
		fwd := collect(c[0], c[1], c[2], c[3])
		rev := collect(c[2], c[3], c[0], c[1])
		if len(fwd) != len(rev) {
			t.Fatalf("line %v: %d pixels forward, %d reverse", c, len(fwd), len(rev))
		}
		set := make(map[[2]int]bool, len(fwd))
		for _, p := range fwd {
			set[p] = true
		}
		for _, p := range rev {
			if !set[p] {
				t.Errorf("line %v: pixel %v only in reverse walk", c, p)
			}
		}
	}
}
