// Package math provides the small vector types used by VGO records and the
// handedness conversion between the engine and glTF coordinate systems.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec2FromArray builds a Vec2 from a slice. Missing components are zero.
func Vec2FromArray(a []float32) Vec2 {
	var v Vec2
	if len(a) > 0 {
		v.X = a[0]
	}
	if len(a) > 1 {
		v.Y = a[1]
	}
	return v
}

// ToArray returns the components as a slice.
func (v Vec2) ToArray() []float32 {
	return []float32{v.X, v.Y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
