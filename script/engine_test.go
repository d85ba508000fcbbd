package script

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/raster"
)

func TestEngine_CollectsPrimitives(t *testing.T) {
	e := NewEngine(64, 64)
	src := `
		point(5, 6, rgb(1, 0, 0));
		line(0, 0, 10, 10, rgba(0, 0, 1, 0.5));
		polygon([[0, 0], [10, 0], [5, 8]], hex("#00ff00"));
		rect(2, 2, 4, 4, rgb(0, 0, 0));
	`
	if err := e.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}

	prims := e.Primitives()
	if len(prims) != 4 {
		t.Fatalf("collected %d primitives, want 4", len(prims))
	}

	p, ok := prims[0].(raster.Point)
	if !ok {
		t.Fatalf("primitive 0 is %T, want Point", prims[0])
	}
	if p.Pos != raster.V2(5, 6) || p.Color != raster.Red {
		t.Errorf("point = %+v, want red at (5, 6)", p)
	}

	l, ok := prims[1].(raster.Line)
	if !ok {
		t.Fatalf("primitive 1 is %T, want Line", prims[1])
	}
	if l.Color.A != 0.5 {
		t.Errorf("line alpha = %v, want 0.5", l.Color.A)
	}

	poly, ok := prims[2].(raster.Polygon)
	if !ok {
		t.Fatalf("primitive 2 is %T, want Polygon", prims[2])
	}
	if len(poly.Vertices) != 3 || poly.Color != raster.Green {
		t.Errorf("polygon = %+v, want a green triangle", poly)
	}

	r, ok := prims[3].(raster.Polygon)
	if !ok {
		t.Fatalf("primitive 3 is %T, want Polygon", prims[3])
	}
	if len(r.Vertices) != 4 {
		t.Errorf("rect has %d vertices, want 4", len(r.Vertices))
	}
}

func TestEngine_WidthHeightAndBackground(t *testing.T) {
	e := NewEngine(32, 48)
	src := `
		background(rgb(0, 0, 0));
		line(0, 0, width(), height(), rgb(1, 1, 1));
	`
	if err := e.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Background() != raster.Black {
		t.Errorf("background = %v, want black", e.Background())
	}
	l := e.Primitives()[0].(raster.Line)
	if l.P1 != raster.V2(32, 48) {
		t.Errorf("line endpoint = %v, want canvas size (32, 48)", l.P1)
	}
}

func TestEngine_BadPolygonVertexIsScriptError(t *testing.T) {
	e := NewEngine(16, 16)
	if err := e.Run(context.Background(), `polygon([[0, 0], [1]], rgb(0, 0, 0));`); err == nil {
		t.Error("Run accepted a malformed vertex list")
	}
}

func TestEngine_SyntaxError(t *testing.T) {
	e := NewEngine(16, 16)
	if err := e.Run(context.Background(), `point(`); err == nil {
		t.Error("Run accepted a syntax error")
	}
}

func TestEngine_ContextCancellation(t *testing.T) {
	e := NewEngine(16, 16)

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	if err := e.Run(ctx, "while (true) {}"); err == nil || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}

	if err := e.Run(context.Background(), "1 + 1"); err != nil {
		t.Fatalf("engine should recover after cancellation, got %v", err)
	}
}

func TestEngine_ImmediateCancel(t *testing.T) {
	e := NewEngine(16, 16)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := e.Run(ctx, "42"); err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
}

func TestRunScene_EndToEnd(t *testing.T) {
	src := `
		background(rgb(1, 1, 1));
		rect(0, 0, 8, 8, rgb(1, 0, 0));
	`
	c, err := RunScene(context.Background(), src, 16)
	if err != nil {
		t.Fatalf("RunScene: %v", err)
	}
	if got := c.Get(4, 4); got != raster.Red {
		t.Errorf("pixel (4, 4) = %v, want red", got)
	}
	if got := c.Get(12, 12); got != raster.White {
		t.Errorf("pixel (12, 12) = %v, want background", got)
	}
}

func TestEngine_RenderBlendsInOrder(t *testing.T) {
	e := NewEngine(8, 8)
	src := `
		rect(0, 0, 8, 8, rgba(0, 0, 1, 0.5));
		rect(0, 0, 8, 8, rgba(0, 0, 1, 0.5));
	`
	if err := e.Run(context.Background(), src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	c, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	half := raster.New(0, 0, 1, 0.5)
	want := half.Over(half.Over(raster.White))
	got := c.Get(3, 3)
	const eps = 1e-9
	if d := got.B - want.B; d > eps || d < -eps {
		t.Errorf("blended pixel = %v, want %v", got, want)
	}
}
