package shader

import (
	"fmt"

	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/texture"
)

// Skybox shader property names.
const (
	PropTint                = "_Tint"
	PropExposure            = "_Exposure"
	PropRotation            = "_Rotation"
	PropFrontTex            = "_FrontTex"
	PropBackTex             = "_BackTex"
	PropLeftTex             = "_LeftTex"
	PropRightTex            = "_RightTex"
	PropUpTex               = "_UpTex"
	PropDownTex             = "_DownTex"
	PropTex                 = "_Tex"
	PropMapping             = "_Mapping"
	PropImageType           = "_ImageType"
	PropMirrorOnBack        = "_MirrorOnBack"
	PropLayout              = "_Layout"
	PropSunDisk             = "_SunDisk"
	PropSunSize             = "_SunSize"
	PropSunSizeConvergence  = "_SunSizeConvergence"
	PropAtmosphereThickness = "_AtmosphereThickness"
	PropSkyTint             = "_SkyTint"
	PropGroundColor         = "_GroundColor"
)

var defaultTint = color.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}

// Skybox6SidedDefinition holds the parameters of Skybox/6 Sided.
type Skybox6SidedDefinition struct {
	Tint     color.Color
	Exposure float32
	Rotation float32
	FrontTex *texture.Texture
	BackTex  *texture.Texture
	LeftTex  *texture.Texture
	RightTex *texture.Texture
	UpTex    *texture.Texture
	DownTex  *texture.Texture
}

// SkyboxCubemapDefinition holds the parameters of Skybox/Cubemap.
type SkyboxCubemapDefinition struct {
	Tint     color.Color
	Exposure float32
	Rotation float32
	Tex      *texture.Texture
}

// SkyboxPanoramicDefinition holds the parameters of Skybox/Panoramic.
type SkyboxPanoramicDefinition struct {
	Tint         color.Color
	Exposure     float32
	Rotation     float32
	MainTex      *texture.Texture
	Mapping      schema.SkyboxMapping
	ImageType    schema.SkyboxImageType
	MirrorOnBack bool
	Layout       schema.SkyboxLayout
}

// SkyboxProceduralDefinition holds the parameters of Skybox/Procedural.
type SkyboxProceduralDefinition struct {
	SunDisk             schema.SkyboxSunDisk
	SunSize             float32
	SunSizeConvergence  float32
	AtmosphereThickness float32
	SkyTint             color.Color
	GroundColor         color.Color
	Exposure            float32
}

// SkyboxDefinition is a tagged union over the skybox shapes. Exactly one
// variant pointer matching Shape is set.
type SkyboxDefinition struct {
	Shape      SkyboxShape
	SixSided   *Skybox6SidedDefinition
	Cubemap    *SkyboxCubemapDefinition
	Panoramic  *SkyboxPanoramicDefinition
	Procedural *SkyboxProceduralDefinition
}

// SkyboxFrom extracts the definition of the given skybox shape.
func SkyboxFrom(shape SkyboxShape, p Properties) (SkyboxDefinition, error) {
	def := SkyboxDefinition{Shape: shape}

	switch shape {
	case SkyboxShape6Sided:
		def.SixSided = &Skybox6SidedDefinition{
			Tint:     colorOr(p, PropTint, defaultTint),
			Exposure: floatOr(p, PropExposure, 1),
			Rotation: floatOr(p, PropRotation, 0),
			FrontTex: textureOf(p, PropFrontTex),
			BackTex:  textureOf(p, PropBackTex),
			LeftTex:  textureOf(p, PropLeftTex),
			RightTex: textureOf(p, PropRightTex),
			UpTex:    textureOf(p, PropUpTex),
			DownTex:  textureOf(p, PropDownTex),
		}
	case SkyboxShapeCubemap:
		def.Cubemap = &SkyboxCubemapDefinition{
			Tint:     colorOr(p, PropTint, defaultTint),
			Exposure: floatOr(p, PropExposure, 1),
			Rotation: floatOr(p, PropRotation, 0),
			Tex:      textureOf(p, PropTex),
		}
	case SkyboxShapePanoramic:
		def.Panoramic = &SkyboxPanoramicDefinition{
			Tint:         colorOr(p, PropTint, defaultTint),
			Exposure:     floatOr(p, PropExposure, 1),
			Rotation:     floatOr(p, PropRotation, 0),
			MainTex:      textureOf(p, PropMainTex),
			Mapping:      schema.SkyboxMapping(intOr(p, PropMapping, 0)),
			ImageType:    schema.SkyboxImageType(intOr(p, PropImageType, 0)),
			MirrorOnBack: boolOr(p, PropMirrorOnBack, false),
			Layout:       schema.SkyboxLayout(intOr(p, PropLayout, 0)),
		}
	case SkyboxShapeProcedural:
		def.Procedural = &SkyboxProceduralDefinition{
			SunDisk:             schema.SkyboxSunDisk(intOr(p, PropSunDisk, int(schema.SkyboxSunDiskHighQuality))),
			SunSize:             floatOr(p, PropSunSize, 0.04),
			SunSizeConvergence:  floatOr(p, PropSunSizeConvergence, 5),
			AtmosphereThickness: floatOr(p, PropAtmosphereThickness, 1),
			SkyTint:             colorOr(p, PropSkyTint, defaultTint),
			GroundColor:         colorOr(p, PropGroundColor, color.Color{R: 0.369, G: 0.349, B: 0.341, A: 1}),
			Exposure:            floatOr(p, PropExposure, 1.3),
		}
	default:
		return SkyboxDefinition{}, fmt.Errorf("%w: skybox shape %d", ErrUnsupportedShader, shape)
	}

	return def, nil
}

// Apply writes the active variant back as shader properties.
func (d SkyboxDefinition) Apply(s PropertySink) {
	switch {
	case d.SixSided != nil:
		v := d.SixSided
		s.SetColor(PropTint, v.Tint)
		s.SetFloat(PropExposure, v.Exposure)
		s.SetFloat(PropRotation, v.Rotation)
		setTexture(s, PropFrontTex, v.FrontTex)
		setTexture(s, PropBackTex, v.BackTex)
		setTexture(s, PropLeftTex, v.LeftTex)
		setTexture(s, PropRightTex, v.RightTex)
		setTexture(s, PropUpTex, v.UpTex)
		setTexture(s, PropDownTex, v.DownTex)
	case d.Cubemap != nil:
		v := d.Cubemap
		s.SetColor(PropTint, v.Tint)
		s.SetFloat(PropExposure, v.Exposure)
		s.SetFloat(PropRotation, v.Rotation)
		setTexture(s, PropTex, v.Tex)
	case d.Panoramic != nil:
		v := d.Panoramic
		s.SetColor(PropTint, v.Tint)
		s.SetFloat(PropExposure, v.Exposure)
		s.SetFloat(PropRotation, v.Rotation)
		setTexture(s, PropMainTex, v.MainTex)
		s.SetFloat(PropMapping, float32(v.Mapping))
		s.SetFloat(PropImageType, float32(v.ImageType))
		setBool(s, PropMirrorOnBack, v.MirrorOnBack)
		s.SetFloat(PropLayout, float32(v.Layout))
	case d.Procedural != nil:
		v := d.Procedural
		s.SetFloat(PropSunDisk, float32(v.SunDisk))
		s.SetFloat(PropSunSize, v.SunSize)
		s.SetFloat(PropSunSizeConvergence, v.SunSizeConvergence)
		s.SetFloat(PropAtmosphereThickness, v.AtmosphereThickness)
		s.SetColor(PropSkyTint, v.SkyTint)
		s.SetColor(PropGroundColor, v.GroundColor)
		s.SetFloat(PropExposure, v.Exposure)
	}
}
