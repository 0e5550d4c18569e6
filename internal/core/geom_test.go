package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, -1.0, 1.0, 0.5},
		{-5.5, -1.0, 1.0, -1.0},
		{15.5, -1.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 0.5)

	if got := a.Add(b); got != V3(5, 1, 3.5) {
		t.Errorf("Add() = %v, expected (5, 1, 3.5)", got)
	}
	if got := a.Sub(b); got != V3(-3, 3, 2.5) {
		t.Errorf("Sub() = %v, expected (-3, 3, 2.5)", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale() = %v, expected (2, 4, 6)", got)
	}
}

func TestVec3Lengths(t *testing.T) {
	v := V3(3, 12, 4)

	if v.Len() != 13 {
		t.Errorf("Len() = %f, expected 13", v.Len())
	}
	if v.HorizontalLen() != 5 {
		t.Errorf("HorizontalLen() = %f, expected 5", v.HorizontalLen())
	}
	if d := V3(0, 0, 0).Dist(V3(0, 0, -2)); d != 2 {
		t.Errorf("Dist() = %f, expected 2", d)
	}
}

func TestVec3Normalize(t *testing.T) {
	n, ok := V3(0, 0, 5).Normalize()
	if !ok {
		t.Fatal("Normalize() of non-zero vector reported zero")
	}
	if n != V3(0, 0, 1) {
		t.Errorf("Normalize() = %v, expected (0, 0, 1)", n)
	}

	n, ok = V3(3, 0, 4).Normalize()
	if !ok || math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize() length = %f, expected 1", n.Len())
	}

	z, ok := Vec3{}.Normalize()
	if ok {
		t.Error("Normalize() of zero vector should report false")
	}
	if !z.IsZero() {
		t.Errorf("Normalize() of zero vector = %v, expected zero", z)
	}
	if math.IsNaN(z.X) || math.IsNaN(z.Y) || math.IsNaN(z.Z) {
		t.Error("Normalize() of zero vector produced NaN")
	}
}
