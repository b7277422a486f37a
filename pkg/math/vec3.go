package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3One is the unit scale.
var Vec3One = Vec3{1, 1, 1}

// Vec3FromArray builds a Vec3 from a slice. Missing components are zero.
func Vec3FromArray(a []float32) Vec3 {
	var v Vec3
	switch {
	case len(a) >= 3:
		v.Z = a[2]
		fallthrough
	case len(a) == 2:
		v.Y = a[1]
		fallthrough
	case len(a) == 1:
		v.X = a[0]
	}
	return v
}

// Vec3FromFloat64 converts a glTF float64 triple.
func Vec3FromFloat64(a [3]float64) Vec3 {
	return Vec3{float32(a[0]), float32(a[1]), float32(a[2])}
}

// ToArray returns the components as a slice.
func (v Vec3) ToArray() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Float64 returns the components as a glTF float64 triple.
func (v Vec3) Float64() [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

// ReverseZ flips the Z axis. Converting a left-handed position into the
// right-handed glTF convention and back is the same operation.
func (v Vec3) ReverseZ() Vec3 {
	return Vec3{v.X, v.Y, -v.Z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
