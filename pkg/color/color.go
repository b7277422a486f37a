// Package color provides the float RGBA color used by shader properties
// and the gamma/linear conversion applied when colors cross the VGO boundary.
package color

import "github.com/chewxy/math32"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Clear = Color{0, 0, 0, 0}
)

// RGBA8 creates a color from 8-bit RGBA values (0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// FromArray builds a color from a slice. Missing RGB channels are zero and a
// missing alpha is opaque.
func FromArray(a []float32) Color {
	c := Color{A: 1}
	dst := []*float32{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(a) && i < 4; i++ {
		*dst[i] = a[i]
	}
	return c
}

// ToArray returns the channels as [r, g, b, a].
func (c Color) ToArray() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

// RGB returns the color channels without alpha, as used by glTF emissive factors.
func (c Color) RGB() [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

// Float64 returns the channels as a glTF float64 quadruple.
func (c Color) Float64() [4]float64 {
	return [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

// FromFloat64 converts a glTF float64 quadruple.
func FromFloat64(a [4]float64) Color {
	return Color{float32(a[0]), float32(a[1]), float32(a[2]), float32(a[3])}
}

// IsBlack reports whether all color channels are zero. Alpha is ignored.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Linear converts a gamma-encoded (sRGB) color to linear space. Alpha is
// not gamma encoded and is passed through.
func (c Color) Linear() Color {
	return Color{
		R: ToLinear(c.R),
		G: ToLinear(c.G),
		B: ToLinear(c.B),
		A: c.A,
	}
}

// Gamma converts a linear color back to gamma-encoded (sRGB) space.
func (c Color) Gamma() Color {
	return Color{
		R: ToGamma(c.R),
		G: ToGamma(c.G),
		B: ToGamma(c.B),
		A: c.A,
	}
}

// ToLinear converts one sRGB channel to linear space (removes gamma).
// Values outside [0, 1] are clamped.
func ToLinear(v float32) float32 {
	v = clamp01(v)
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// ToGamma converts one linear channel to sRGB (applies gamma).
// Values outside [0, 1] are clamped.
func ToGamma(v float32) float32 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return clamp01(1.055*math32.Pow(v, 1/2.4) - 0.055)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
