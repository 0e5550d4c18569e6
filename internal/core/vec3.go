package core

import "math"

// Vec3 is a float64 vector in pitch space.
// X runs across the pitch, Y is height above the grass, Z runs goal to goal.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// HorizontalLen returns the length of the ground-plane (X, Z) component.
func (v Vec3) HorizontalLen() float64 {
	return math.Hypot(v.X, v.Z)
}

// Dist returns the Euclidean distance between two points.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector in the direction of v.
// The second result is false for a zero-length vector, in which case the
// returned vector is zero.
func (v Vec3) Normalize() (Vec3, bool) {
	l := v.Len()
	if l == 0 {
		return Vec3{}, false
	}
	inv := 1.0 / l
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}, true
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
