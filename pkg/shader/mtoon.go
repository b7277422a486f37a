package shader

import (
	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/texture"
)

// MToon shader property names. Shared names (_Color, _MainTex, _Cutoff,
// _BumpMap, _BumpScale, _EmissionColor, _EmissionMap) are declared with the
// particle properties.
const (
	PropMToonVersion             = "_MToonVersion"
	PropBlendMode                = "_BlendMode"
	PropCullMode                 = "_CullMode"
	PropShadeColor               = "_ShadeColor"
	PropShadeTexture             = "_ShadeTexture"
	PropShadeShift               = "_ShadeShift"
	PropShadeToony               = "_ShadeToony"
	PropReceiveShadowRate        = "_ReceiveShadowRate"
	PropReceiveShadowTexture     = "_ReceiveShadowTexture"
	PropShadingGradeRate         = "_ShadingGradeRate"
	PropShadingGradeTexture      = "_ShadingGradeTexture"
	PropLightColorAttenuation    = "_LightColorAttenuation"
	PropIndirectLightIntensity   = "_IndirectLightIntensity"
	PropSphereAdd                = "_SphereAdd"
	PropRimColor                 = "_RimColor"
	PropRimTexture               = "_RimTexture"
	PropRimLightingMix           = "_RimLightingMix"
	PropRimFresnelPower          = "_RimFresnelPower"
	PropRimLift                  = "_RimLift"
	PropOutlineWidthMode         = "_OutlineWidthMode"
	PropOutlineWidth             = "_OutlineWidth"
	PropOutlineWidthTexture      = "_OutlineWidthTexture"
	PropOutlineScaledMaxDistance = "_OutlineScaledMaxDistance"
	PropOutlineColorMode         = "_OutlineColorMode"
	PropOutlineColor             = "_OutlineColor"
	PropOutlineLightingMix       = "_OutlineLightingMix"
	PropUvAnimMaskTexture        = "_UvAnimMaskTexture"
	PropUvAnimScrollX            = "_UvAnimScrollX"
	PropUvAnimScrollY            = "_UvAnimScrollY"
	PropUvAnimRotation           = "_UvAnimRotation"
)

// Alpha keywords shared by the standard, unlit and toon shaders.
const (
	KeywordAlphaTest        = "_ALPHATEST_ON"
	KeywordAlphaBlend       = "_ALPHABLEND_ON"
	KeywordAlphaPremultiply = "_ALPHAPREMULTIPLY_ON"
)

// MToonVersion is the shader version written when a material has none.
const MToonVersion = 38

// Base render queues.
const (
	QueueGeometry    = 2000
	QueueAlphaTest   = 2450
	QueueZWrite      = 2501
	QueueTransparent = 3000
)

// RenderQueueBase returns the base queue of a toon render mode.
func RenderQueueBase(mode schema.MToonRenderMode) int {
	switch mode {
	case schema.MToonCutout:
		return QueueAlphaTest
	case schema.MToonTransparent:
		return QueueTransparent
	case schema.MToonTransparentWithZWrite:
		return QueueZWrite
	default:
		return QueueGeometry
	}
}

// ClampQueueOffset limits a render queue offset to the range allowed for mode:
// 0 for opaque and cutout, [-9, 0] for transparent, [0, 9] for transparent
// with z-write.
func ClampQueueOffset(mode schema.MToonRenderMode, offset int) int {
	switch mode {
	case schema.MToonTransparent:
		return min(max(offset, -9), 0)
	case schema.MToonTransparentWithZWrite:
		return min(max(offset, 0), 9)
	default:
		return 0
	}
}

// MToonDefinition holds the toon shader parameters grouped the way the
// shader inspector groups them. Colors are gamma space.
type MToonDefinition struct {
	Meta          MToonMeta
	Rendering     MToonRendering
	Color         MToonColor
	Lighting      MToonLighting
	Emission      MToonEmission
	MatCap        MToonMatCap
	Rim           MToonRim
	Outline       MToonOutline
	TextureOption MToonTextureOption
}

type MToonMeta struct {
	VersionNumber int
}

type MToonRendering struct {
	RenderMode              schema.MToonRenderMode
	CullMode                schema.CullMode
	RenderQueueOffsetNumber int
}

type MToonColor struct {
	LitColor             color.Color
	LitMultiplyTexture   *texture.Texture
	ShadeColor           color.Color
	ShadeMultiplyTexture *texture.Texture
	CutoutThresholdValue float32
}

type MToonLighting struct {
	LitAndShadeMixing MToonLitAndShadeMixing
	LightingInfluence MToonLightingInfluence
	Normal            MToonNormal
}

type MToonLitAndShadeMixing struct {
	ShadingShiftValue                          float32
	ShadingToonyValue                          float32
	ShadowReceiveMultiplierValue               float32
	ShadowReceiveMultiplierMultiplyTexture     *texture.Texture
	LitAndShadeMixingMultiplierValue           float32
	LitAndShadeMixingMultiplierMultiplyTexture *texture.Texture
}

type MToonLightingInfluence struct {
	LightColorAttenuationValue float32
	GiIntensityValue           float32
}

type MToonNormal struct {
	NormalTexture    *texture.Texture
	NormalScaleValue float32
}

type MToonEmission struct {
	EmissionColor           color.Color
	EmissionMultiplyTexture *texture.Texture
}

type MToonMatCap struct {
	AdditiveTexture *texture.Texture
}

type MToonRim struct {
	RimColor             color.Color
	RimMultiplyTexture   *texture.Texture
	RimLightingMixValue  float32
	RimFresnelPowerValue float32
	RimLiftValue         float32
}

type MToonOutline struct {
	OutlineWidthMode              schema.MToonOutlineWidthMode
	OutlineWidthValue             float32
	OutlineWidthMultiplyTexture   *texture.Texture
	OutlineScaledMaxDistanceValue float32
	OutlineColorMode              schema.MToonOutlineColorMode
	OutlineColor                  color.Color
	OutlineLightingMixValue       float32
}

type MToonTextureOption struct {
	MainTextureLeftBottomOriginScale  math.Vec2
	MainTextureLeftBottomOriginOffset math.Vec2
	UvAnimationMaskTexture            *texture.Texture
	UvAnimationScrollXSpeedValue      float32
	UvAnimationScrollYSpeedValue      float32
	UvAnimationRotationSpeedValue     float32
}

// MToonFrom extracts a toon definition. The render queue offset is derived
// from the material queue and clamped to the range of the render mode; a
// negative queue (shader default) yields a zero offset.
func MToonFrom(p Properties) MToonDefinition {
	mode := schema.MToonRenderMode(intOr(p, PropBlendMode, 0))
	mainTex := slotOr(p, PropMainTex)

	offset := 0
	if q := p.RenderQueue(); q >= 0 {
		offset = ClampQueueOffset(mode, q-RenderQueueBase(mode))
	}

	return MToonDefinition{
		Meta: MToonMeta{
			VersionNumber: intOr(p, PropMToonVersion, MToonVersion),
		},
		Rendering: MToonRendering{
			RenderMode:              mode,
			CullMode:                schema.CullMode(intOr(p, PropCullMode, int(schema.CullBack))),
			RenderQueueOffsetNumber: offset,
		},
		Color: MToonColor{
			LitColor:             colorOr(p, PropColor, color.White),
			LitMultiplyTexture:   textureOf(p, PropMainTex),
			ShadeColor:           colorOr(p, PropShadeColor, color.Color{R: 0.97, G: 0.81, B: 0.86, A: 1}),
			ShadeMultiplyTexture: textureOf(p, PropShadeTexture),
			CutoutThresholdValue: floatOr(p, PropCutoff, 0.5),
		},
		Lighting: MToonLighting{
			LitAndShadeMixing: MToonLitAndShadeMixing{
				ShadingShiftValue:                          floatOr(p, PropShadeShift, 0),
				ShadingToonyValue:                          floatOr(p, PropShadeToony, 0.9),
				ShadowReceiveMultiplierValue:               floatOr(p, PropReceiveShadowRate, 1),
				ShadowReceiveMultiplierMultiplyTexture:     textureOf(p, PropReceiveShadowTexture),
				LitAndShadeMixingMultiplierValue:           floatOr(p, PropShadingGradeRate, 1),
				LitAndShadeMixingMultiplierMultiplyTexture: textureOf(p, PropShadingGradeTexture),
			},
			LightingInfluence: MToonLightingInfluence{
				LightColorAttenuationValue: floatOr(p, PropLightColorAttenuation, 0),
				GiIntensityValue:           floatOr(p, PropIndirectLightIntensity, 0.1),
			},
			Normal: MToonNormal{
				NormalTexture:    textureOf(p, PropBumpMap),
				NormalScaleValue: floatOr(p, PropBumpScale, 1),
			},
		},
		Emission: MToonEmission{
			EmissionColor:           colorOr(p, PropEmissionColor, color.Black),
			EmissionMultiplyTexture: textureOf(p, PropEmissionMap),
		},
		MatCap: MToonMatCap{
			AdditiveTexture: textureOf(p, PropSphereAdd),
		},
		Rim: MToonRim{
			RimColor:             colorOr(p, PropRimColor, color.Black),
			RimMultiplyTexture:   textureOf(p, PropRimTexture),
			RimLightingMixValue:  floatOr(p, PropRimLightingMix, 0),
			RimFresnelPowerValue: floatOr(p, PropRimFresnelPower, 1),
			RimLiftValue:         floatOr(p, PropRimLift, 0),
		},
		Outline: MToonOutline{
			OutlineWidthMode:              schema.MToonOutlineWidthMode(intOr(p, PropOutlineWidthMode, 0)),
			OutlineWidthValue:             floatOr(p, PropOutlineWidth, 0.5),
			OutlineWidthMultiplyTexture:   textureOf(p, PropOutlineWidthTexture),
			OutlineScaledMaxDistanceValue: floatOr(p, PropOutlineScaledMaxDistance, 1),
			OutlineColorMode:              schema.MToonOutlineColorMode(intOr(p, PropOutlineColorMode, 0)),
			OutlineColor:                  colorOr(p, PropOutlineColor, color.Black),
			OutlineLightingMixValue:       floatOr(p, PropOutlineLightingMix, 1),
		},
		TextureOption: MToonTextureOption{
			MainTextureLeftBottomOriginScale:  mainTex.Scale,
			MainTextureLeftBottomOriginOffset: mainTex.Offset,
			UvAnimationMaskTexture:            textureOf(p, PropUvAnimMaskTexture),
			UvAnimationScrollXSpeedValue:      floatOr(p, PropUvAnimScrollX, 0),
			UvAnimationScrollYSpeedValue:      floatOr(p, PropUvAnimScrollY, 0),
			UvAnimationRotationSpeedValue:     floatOr(p, PropUvAnimRotation, 0),
		},
	}
}

// Apply writes the definition back as shader properties, keywords and the
// render queue.
func (d MToonDefinition) Apply(s PropertySink) {
	mode := d.Rendering.RenderMode

	s.SetFloat(PropMToonVersion, float32(d.Meta.VersionNumber))
	s.SetFloat(PropBlendMode, float32(mode))
	s.SetFloat(PropCullMode, float32(d.Rendering.CullMode))
	s.SetRenderQueue(RenderQueueBase(mode) + ClampQueueOffset(mode, d.Rendering.RenderQueueOffsetNumber))
	s.SetKeyword(KeywordAlphaTest, mode == schema.MToonCutout)
	s.SetKeyword(KeywordAlphaBlend, mode == schema.MToonTransparent || mode == schema.MToonTransparentWithZWrite)

	s.SetColor(PropColor, d.Color.LitColor)
	s.SetTexture(PropMainTex, TextureSlot{
		Texture: d.Color.LitMultiplyTexture,
		Scale:   d.TextureOption.MainTextureLeftBottomOriginScale,
		Offset:  d.TextureOption.MainTextureLeftBottomOriginOffset,
	})
	s.SetColor(PropShadeColor, d.Color.ShadeColor)
	setTexture(s, PropShadeTexture, d.Color.ShadeMultiplyTexture)
	s.SetFloat(PropCutoff, d.Color.CutoutThresholdValue)

	mix := d.Lighting.LitAndShadeMixing
	s.SetFloat(PropShadeShift, mix.ShadingShiftValue)
	s.SetFloat(PropShadeToony, mix.ShadingToonyValue)
	s.SetFloat(PropReceiveShadowRate, mix.ShadowReceiveMultiplierValue)
	setTexture(s, PropReceiveShadowTexture, mix.ShadowReceiveMultiplierMultiplyTexture)
	s.SetFloat(PropShadingGradeRate, mix.LitAndShadeMixingMultiplierValue)
	setTexture(s, PropShadingGradeTexture, mix.LitAndShadeMixingMultiplierMultiplyTexture)
	s.SetFloat(PropLightColorAttenuation, d.Lighting.LightingInfluence.LightColorAttenuationValue)
	s.SetFloat(PropIndirectLightIntensity, d.Lighting.LightingInfluence.GiIntensityValue)
	setTexture(s, PropBumpMap, d.Lighting.Normal.NormalTexture)
	s.SetFloat(PropBumpScale, d.Lighting.Normal.NormalScaleValue)

	s.SetColor(PropEmissionColor, d.Emission.EmissionColor)
	setTexture(s, PropEmissionMap, d.Emission.EmissionMultiplyTexture)

	setTexture(s, PropSphereAdd, d.MatCap.AdditiveTexture)

	s.SetColor(PropRimColor, d.Rim.RimColor)
	setTexture(s, PropRimTexture, d.Rim.RimMultiplyTexture)
	s.SetFloat(PropRimLightingMix, d.Rim.RimLightingMixValue)
	s.SetFloat(PropRimFresnelPower, d.Rim.RimFresnelPowerValue)
	s.SetFloat(PropRimLift, d.Rim.RimLiftValue)

	s.SetFloat(PropOutlineWidthMode, float32(d.Outline.OutlineWidthMode))
	s.SetFloat(PropOutlineWidth, d.Outline.OutlineWidthValue)
	setTexture(s, PropOutlineWidthTexture, d.Outline.OutlineWidthMultiplyTexture)
	s.SetFloat(PropOutlineScaledMaxDistance, d.Outline.OutlineScaledMaxDistanceValue)
	s.SetFloat(PropOutlineColorMode, float32(d.Outline.OutlineColorMode))
	s.SetColor(PropOutlineColor, d.Outline.OutlineColor)
	s.SetFloat(PropOutlineLightingMix, d.Outline.OutlineLightingMixValue)

	setTexture(s, PropUvAnimMaskTexture, d.TextureOption.UvAnimationMaskTexture)
	s.SetFloat(PropUvAnimScrollX, d.TextureOption.UvAnimationScrollXSpeedValue)
	s.SetFloat(PropUvAnimScrollY, d.TextureOption.UvAnimationScrollYSpeedValue)
	s.SetFloat(PropUvAnimRotation, d.TextureOption.UvAnimationRotationSpeedValue)
}
