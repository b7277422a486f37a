package math

// Vec4 is a 4D vector, used for shader vector properties such as
// texture scale/offset (_ST) and fade parameters.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec4FromArray builds a Vec4 from a slice. Missing components are zero.
func Vec4FromArray(a []float32) Vec4 {
	var v Vec4
	dst := []*float32{&v.X, &v.Y, &v.Z, &v.W}
	for i := 0; i < len(a) && i < 4; i++ {
		*dst[i] = a[i]
	}
	return v
}

// ToArray returns the components as a slice.
func (v Vec4) ToArray() []float32 {
	return []float32{v.X, v.Y, v.Z, v.W}
}
