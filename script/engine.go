// Package script runs JavaScript scene scripts on an embedded goja
// runtime. A script describes a scene as an ordered list of
// primitive+color draw calls; the engine collects that list and the
// host replays it through the core draw loop. The core itself never
// sees the script runtime.
//
// Script API:
//
//	rgb(r, g, b), rgba(r, g, b, a), hex("#rrggbb")  -> color value
//	point(x, y, color)
//	line(x0, y0, x1, y1, color)
//	polygon([[x, y], ...], color)
//	rect(x, y, w, h, color)
//	background(color)
//	width(), height()
package script

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/gogpu/raster"
)

// Engine wraps a goja runtime with the scene-construction bindings.
// An Engine is single-use and not safe for concurrent use.
type Engine struct {
	vm         *goja.Runtime
	width      int
	height     int
	background raster.Color
	prims      []raster.Primitive
}

// NewEngine creates an engine for a width x height canvas with a
// white default background.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		vm:         goja.New(),
		width:      width,
		height:     height,
		background: raster.White,
	}
	e.bind()
	return e
}

// Run executes a scene script. The context interrupts long-running
// scripts; on interruption the context error is returned.
func (e *Engine) Run(ctx context.Context, src string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	if _, err := e.vm.RunString(src); err != nil {
		if interrupted, ok := err.(*goja.InterruptedError); ok {
			if cause := interrupted.Unwrap(); cause != nil {
				return cause
			}
			return context.Canceled
		}
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Primitives returns the draw list collected so far, in call order.
func (e *Engine) Primitives() []raster.Primitive {
	return e.prims
}

// Background returns the background color, either the default or the
// last background() call.
func (e *Engine) Background() raster.Color {
	return e.background
}

// Render creates a canvas and replays the collected draw list onto it.
func (e *Engine) Render() (*raster.Canvas, error) {
	c, err := raster.NewCanvas(e.width, e.height, e.background)
	if err != nil {
		return nil, err
	}
	for i, p := range e.prims {
		if err := raster.Draw(c, p); err != nil {
			return nil, fmt.Errorf("script: primitive %d: %w", i, err)
		}
	}
	return c, nil
}

// RunScene is the one-shot path used by the driver: run src against a
// fresh size x size engine and render the result.
func RunScene(ctx context.Context, src string, size int) (*raster.Canvas, error) {
	e := NewEngine(size, size)
	if err := e.Run(ctx, src); err != nil {
		return nil, err
	}
	raster.Logger().Info("scene script finished", "primitives", len(e.prims))
	return e.Render()
}

func (e *Engine) bind() {
	vm := e.vm

	// Color constructors return plain color values; draw calls accept
	// them back via toColor.
	vm.Set("rgb", func(r, g, b float64) raster.Color { return raster.RGB(r, g, b) })
	vm.Set("rgba", func(r, g, b, a float64) raster.Color { return raster.New(r, g, b, a) })
	vm.Set("hex", func(s string) raster.Color { return raster.Hex(s) })

	vm.Set("width", func() int { return e.width })
	vm.Set("height", func() int { return e.height })

	vm.Set("background", func(call goja.FunctionCall) goja.Value {
		e.background = e.toColor(call.Argument(0))
		return goja.Undefined()
	})

	vm.Set("point", func(call goja.FunctionCall) goja.Value {
		e.prims = append(e.prims, raster.Point{
			Pos:   raster.V2(call.Argument(0).ToFloat(), call.Argument(1).ToFloat()),
			Color: e.toColor(call.Argument(2)),
		})
		return goja.Undefined()
	})

	vm.Set("line", func(call goja.FunctionCall) goja.Value {
		e.prims = append(e.prims, raster.Line{
			P0:    raster.V2(call.Argument(0).ToFloat(), call.Argument(1).ToFloat()),
			P1:    raster.V2(call.Argument(2).ToFloat(), call.Argument(3).ToFloat()),
			Color: e.toColor(call.Argument(4)),
		})
		return goja.Undefined()
	})

	vm.Set("polygon", func(call goja.FunctionCall) goja.Value {
		var coords [][]float64
		if err := vm.ExportTo(call.Argument(0), &coords); err != nil {
			panic(vm.NewTypeError("polygon: want an array of [x, y] pairs: %v", err))
		}
		verts := make([]raster.Vec2, len(coords))
		for i, xy := range coords {
			if len(xy) != 2 {
				panic(vm.NewTypeError("polygon: vertex %d is not an [x, y] pair", i))
			}
			verts[i] = raster.V2(xy[0], xy[1])
		}
		e.prims = append(e.prims, raster.Polygon{
			Vertices: verts,
			Color:    e.toColor(call.Argument(1)),
		})
		return goja.Undefined()
	})

	vm.Set("rect", func(call goja.FunctionCall) goja.Value {
		e.prims = append(e.prims, raster.Rect(
			call.Argument(0).ToFloat(),
			call.Argument(1).ToFloat(),
			call.Argument(2).ToFloat(),
			call.Argument(3).ToFloat(),
			e.toColor(call.Argument(4)),
		))
		return goja.Undefined()
	})
}

// toColor converts a script value produced by rgb/rgba/hex back into
// a Color. A bad value raises a script TypeError.
func (e *Engine) toColor(v goja.Value) raster.Color {
	var c raster.Color
	if err := e.vm.ExportTo(v, &c); err != nil {
		panic(e.vm.NewTypeError("not a color value: %v", err))
	}
	return c
}
