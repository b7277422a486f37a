package texture

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
)

// Converter transforms a texture's pixels before it is embedded.
type Converter interface {
	// Name identifies the conversion; textures are deduplicated per name.
	Name() string
	Convert(src image.Image) image.Image
}

// toNRGBA copies src into a fresh NRGBA image with origin (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// NormalConverter turns an engine normal map into a glTF tangent-space
// normal map. Maps carrying any non-opaque texel are treated as AG packed
// (X in alpha, Y in green) and Z is reconstructed; opaque maps are read as
// RGB and renormalised.
type NormalConverter struct{}

// Name implements Converter.
func (NormalConverter) Name() string { return "normal" }

// Convert implements Converter.
func (NormalConverter) Convert(src image.Image) image.Image {
	img := toNRGBA(src)
	packed := !opaque(img)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)

			var nx, ny, nz float32
			if packed {
				nx = float32(c.A)/255*2 - 1
				ny = float32(c.G)/255*2 - 1
				nz = math32.Sqrt(math32.Max(0, 1-nx*nx-ny*ny))
			} else {
				nx = float32(c.R)/255*2 - 1
				ny = float32(c.G)/255*2 - 1
				nz = float32(c.B)/255*2 - 1
				if l := math32.Sqrt(nx*nx + ny*ny + nz*nz); l > 0 {
					nx, ny, nz = nx/l, ny/l, nz/l
				}
			}

			img.SetNRGBA(x, y, color.NRGBA{
				R: unitToByte(nx),
				G: unitToByte(ny),
				B: unitToByte(nz),
				A: 255,
			})
		}
	}
	return img
}

// MetallicRoughnessConverter turns an engine metallic/smoothness map
// (R = metallic, A = smoothness) into a glTF metallic/roughness map
// (B = metallic, G = roughness).
type MetallicRoughnessConverter struct {
	// SmoothnessScale multiplies the smoothness channel (_GlossMapScale).
	SmoothnessScale float32
}

// Name implements Converter.
func (c MetallicRoughnessConverter) Name() string { return "metallic-roughness" }

// Convert implements Converter.
func (c MetallicRoughnessConverter) Convert(src image.Image) image.Image {
	img := toNRGBA(src)
	scale := c.SmoothnessScale
	if scale <= 0 {
		scale = 1
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			smoothness := math32.Min(1, float32(px.A)/255*scale)
			img.SetNRGBA(x, y, color.NRGBA{
				R: 0,
				G: uint8((1-smoothness)*255 + 0.5),
				B: px.R,
				A: 255,
			})
		}
	}
	return img
}

func opaque(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			return false
		}
	}
	return true
}

// unitToByte maps [-1, 1] to [0, 255].
func unitToByte(v float32) uint8 {
	v = math32.Max(-1, math32.Min(1, v))
	return uint8((v*0.5+0.5)*255 + 0.5)
}
