package raster

import (
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Add = %v, want (4, -2)", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Sub = %v, want (-2, 6)", got)
	}
	if got := a.Mul(2.5); got != V2(2.5, 5) {
		t.Errorf("Mul = %v, want (2.5, 5)", got)
	}
}

func TestVec2_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want bool
	}{
		{"finite", V2(1.5, -2.5), true},
		{"zero", V2(0, 0), true},
		{"NaN x", V2(math.NaN(), 0), false},
		{"NaN y", V2(0, math.NaN()), false},
		{"+Inf", V2(math.Inf(1), 0), false},
		{"-Inf", V2(0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
