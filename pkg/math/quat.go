package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromArray builds a quaternion from a slice.
// A slice shorter than four components yields the identity.
func QuatFromArray(a []float32) Quat {
	if len(a) < 4 {
		return QuatIdentity()
	}
	return Quat{a[0], a[1], a[2], a[3]}
}

// QuatFromFloat64 converts a glTF float64 quadruple.
func QuatFromFloat64(a [4]float64) Quat {
	return Quat{float32(a[0]), float32(a[1]), float32(a[2]), float32(a[3])}
}

// ToArray returns the components as a slice.
func (q Quat) ToArray() []float32 {
	return []float32{q.X, q.Y, q.Z, q.W}
}

// Float64 returns the components as a glTF float64 quadruple.
func (q Quat) Float64() [4]float64 {
	return [4]float64{float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)}
}

// ReverseZ mirrors the rotation across the XY plane, the rotation
// counterpart of Vec3.ReverseZ.
func (q Quat) ReverseZ() Quat {
	return Quat{-q.X, -q.Y, q.Z, q.W}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u = (x, y, z)
	ux, uy, uz := q.X, q.Y, q.Z
	cx := uy*v.Z - uz*v.Y
	cy := uz*v.X - ux*v.Z
	cz := ux*v.Y - uy*v.X
	ccx := uy*cz - uz*cy
	ccy := uz*cx - ux*cz
	ccz := ux*cy - uy*cx
	return Vec3{
		X: v.X + 2*(q.W*cx+ccx),
		Y: v.Y + 2*(q.W*cy+ccy),
		Z: v.Z + 2*(q.W*cz+ccz),
	}
}
