package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("QuatIdentity() = %v, want {0, 0, 0, 1}", q)
	}
}

func TestQuatFromArrayShort(t *testing.T) {
	if got := QuatFromArray([]float32{1, 2}); got != QuatIdentity() {
		t.Errorf("QuatFromArray(short) = %v, want identity", got)
	}
}

func TestQuatReverseZ(t *testing.T) {
	q := Quat{0.1, 0.2, 0.3, 0.9}
	got := q.ReverseZ()
	want := Quat{-0.1, -0.2, 0.3, 0.9}
	if got != want {
		t.Errorf("Quat.ReverseZ() = %v, want %v", got, want)
	}
}

// Rotating a Z-reversed vector with the Z-reversed rotation must equal the
// Z-reversed result of the original rotation.
func TestQuatReverseZConsistency(t *testing.T) {
	angle := float32(math.Pi / 3)
	s := float32(math.Sin(float64(angle / 2)))
	c := float32(math.Cos(float64(angle / 2)))
	axis := Vec3{1, 1, 0.5}
	l := float32(math.Sqrt(float64(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)))
	q := Quat{axis.X / l * s, axis.Y / l * s, axis.Z / l * s, c}

	v := Vec3{0.3, -1.2, 2.5}
	want := q.Rotate(v).ReverseZ()
	got := q.ReverseZ().Rotate(v.ReverseZ())

	if !approxEqual(got.X, want.X) || !approxEqual(got.Y, want.Y) || !approxEqual(got.Z, want.Z) {
		t.Errorf("rotation handedness mismatch: got %v, want %v", got, want)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{0, 0, 0, 2}.Normalize()
	if !approxEqual(q.W, 1) {
		t.Errorf("Normalize() W = %v, want 1", q.W)
	}
	if z := (Quat{}).Normalize(); z != QuatIdentity() {
		t.Errorf("Normalize(zero) = %v, want identity", z)
	}
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}
