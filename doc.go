// Package raster is a small software rasterizer for 2D vector geometry.
//
// # Overview
//
// raster scan-converts points, line segments, and polygons onto a
// fixed-size Canvas of floating-point RGBA colors, compositing each
// primitive over the existing pixels with source-over alpha blending.
// The finished canvas is serialized to binary PPM (P6).
//
// # Quick Start
//
//	import "github.com/gogpu/raster"
//
//	c, err := raster.NewCanvas(512, 512, raster.White)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	raster.Draw(c, raster.Polygon{
//		Vertices: []raster.Vec2{{64, 64}, {448, 64}, {256, 448}},
//		Color:    raster.New(0.8, 0.1, 0.1, 0.5),
//	})
//
//	raster.SavePPM(c, "triangle.ppm")
//
// Draw order matters: later draws composite over earlier ones, so
// translucent primitives accumulate.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Canvas, primitives (Point, Line, Polygon), Draw,
//     the PPM encoder/decoder
//   - Internal: scan (edge table, scanline spans, Bresenham walking)
//   - Collaborators: scenes (built-in demo scenes), script (goja-backed
//     scene scripts), cmd/rastdemo (driver and format conversion)
//
// The engine is single-threaded: at most one Draw may be in flight per
// Canvas, and encoding must not overlap a draw. Canvas owns its pixel
// storage exclusively; Draw is the only writer.
package raster
