package raster

import (
	"image/color"
	"math"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Colors are immutable values:
// every operation that produces a Color clamps each channel into range,
// so no observable Color ever leaves [0, 1].
type Color struct {
	R, G, B, A float64
}

// New creates a Color, clamping each component to [0, 1].
// Out-of-range inputs are silently clamped; this is policy, not a failure.
func New(r, g, b, a float64) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// Over composites c over dst using source-over alpha blending:
//
//	out_c = src_c*src_a + dst_c*(1 - src_a)
//	out_a = src_a + dst_a*(1 - src_a)
//
// This is the only blending law the rasterizer uses. It is order
// sensitive: Draw applies it left-to-right in draw order, so later
// draws land on top.
func (c Color) Over(dst Color) Color {
	inv := 1 - c.A
	return New(
		c.R*c.A+dst.R*inv,
		c.G*c.A+dst.G*inv,
		c.B*c.A+dst.B*inv,
		c.A+dst.A*inv,
	)
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return New(
		c.R+(other.R-c.R)*t,
		c.G+(other.G-c.G)*t,
		c.B+(other.B-c.B)*t,
		c.A+(other.A-c.A)*t,
	)
}

// NRGBA converts the color to the standard library's 8-bit
// non-premultiplied form, quantizing each channel with round(v*255).
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: quantize(c.R, 255),
		G: quantize(c.G, 255),
		B: quantize(c.B, 255),
		A: quantize(c.A, 255),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// color.Color yields premultiplied channels; undo that so the
	// stored components stay straight-alpha like the rest of the package.
	return New(
		float64(r)/float64(a),
		float64(g)/float64(a),
		float64(b)/float64(a),
		float64(a)/65535,
	)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

// clamp01 restricts a value to the [0, 1] range. NaN maps to 0 so a
// garbage channel can never escape the invariant.
func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// quantize maps v in [0, 1] to an integer in [0, max], rounding to
// nearest and clamping after the round to guard float boundaries.
func quantize(v float64, max int) uint8 {
	q := int(math.Round(v * float64(max)))
	if q < 0 {
		q = 0
	}
	if q > max {
		q = max
	}
	return uint8(q)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = Color{}
)
