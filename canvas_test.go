package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Canvas implements image.Image.
var _ image.Image = (*Canvas)(nil)

func TestNewCanvas_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCanvas(tt.width, tt.height, White)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("NewCanvas(%d, %d) error = %v, want ErrInvalidDimension",
					tt.width, tt.height, err)
			}
			if c != nil {
				t.Error("NewCanvas returned a canvas alongside an error")
			}
		})
	}
}

func TestNewCanvas_InitializedToBackground(t *testing.T) {
	bg := New(0.1, 0.2, 0.3, 1)
	c, err := NewCanvas(4, 3, bg)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", c.Width(), c.Height())
	}
	if c.Background() != bg {
		t.Errorf("Background() = %v, want %v", c.Background(), bg)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := c.Get(x, y); got != bg {
				t.Fatalf("Get(%d, %d) = %v, want background %v", x, y, got, bg)
			}
		}
	}
}

func TestCanvas_SetGet(t *testing.T) {
	c, _ := NewCanvas(8, 8, White)
	c.Set(3, 5, Red)
	if got := c.Get(3, 5); got != Red {
		t.Errorf("Get(3, 5) = %v, want %v", got, Red)
	}
	if got := c.Get(5, 3); got != White {
		t.Errorf("Get(5, 3) = %v, want untouched background", got)
	}
}

// Out-of-range coordinates are clipped, not errors: Set is a no-op and
// Get returns the background. This is deliberate policy since drawn
// geometry routinely extends past the canvas edges.
func TestCanvas_ClipPolicy(t *testing.T) {
	c, _ := NewCanvas(4, 4, White)

	oob := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-100, -100},
	}
	for _, p := range oob {
		c.Set(p.x, p.y, Red) // must not panic or write anywhere
		if got := c.Get(p.x, p.y); got != White {
			t.Errorf("Get(%d, %d) = %v, want background", p.x, p.y, got)
		}
	}

	// No in-range pixel was touched.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.Get(x, y); got != White {
				t.Errorf("Get(%d, %d) = %v, want background after clipped sets", x, y, got)
			}
		}
	}
}

func TestCanvas_Clear(t *testing.T) {
	c, _ := NewCanvas(4, 4, White)
	c.Set(1, 1, Red)

	c.Clear(Blue)
	if c.Background() != Blue {
		t.Errorf("Background() = %v after Clear, want %v", c.Background(), Blue)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.Get(x, y); got != Blue {
				t.Fatalf("Get(%d, %d) = %v after Clear, want %v", x, y, got, Blue)
			}
		}
	}
}

func TestCanvas_ImageInterface(t *testing.T) {
	c, _ := NewCanvas(5, 7, White)
	c.Set(2, 3, Red)

	if got, want := c.Bounds(), image.Rect(0, 0, 5, 7); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if c.ColorModel() != color.NRGBAModel {
		t.Errorf("ColorModel() = %v, want NRGBAModel", c.ColorModel())
	}
	if got, want := c.At(2, 3), (color.NRGBA{R: 255, A: 255}); got != want {
		t.Errorf("At(2, 3) = %v, want %v", got, want)
	}
}
