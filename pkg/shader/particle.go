package shader

import (
	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/texture"
)

// Particle shader property names.
const (
	PropMode                     = "_Mode"
	PropColorMode                = "_ColorMode"
	PropFlipbookMode             = "_FlipbookMode"
	PropCull                     = "_Cull"
	PropSoftParticlesEnabled     = "_SoftParticlesEnabled"
	PropSoftParticleFadeParams   = "_SoftParticleFadeParams"
	PropCameraFadingEnabled      = "_CameraFadingEnabled"
	PropCameraFadeParams         = "_CameraFadeParams"
	PropDistortionEnabled        = "_DistortionEnabled"
	PropGrabTexture              = "_GrabTexture"
	PropDistortionStrengthScaled = "_DistortionStrengthScaled"
	PropDistortionBlend          = "_DistortionBlend"
	PropColorAddSubDiff          = "_ColorAddSubDiff"
	PropMainTex                  = "_MainTex"
	PropColor                    = "_Color"
	PropCutoff                   = "_Cutoff"
	PropMetallicGlossMap         = "_MetallicGlossMap"
	PropMetallic                 = "_Metallic"
	PropGlossiness               = "_Glossiness"
	PropBumpMap                  = "_BumpMap"
	PropBumpScale                = "_BumpScale"
	PropLightingEnabled          = "_LightingEnabled"
	PropEmissionEnabled          = "_EmissionEnabled"
	PropEmissionColor            = "_EmissionColor"
	PropEmissionMap              = "_EmissionMap"
)

// ParticleDefinition holds the parameters of the standard particle shaders.
// Colors are gamma space.
type ParticleDefinition struct {
	RenderMode               schema.ParticleBlendMode
	ColorMode                schema.ParticleColorMode
	FlipBookMode             schema.ParticleFlipBookMode
	CullMode                 schema.CullMode
	SoftParticlesEnabled     bool
	SoftParticleFadeParams   math.Vec4
	CameraFadingEnabled      bool
	CameraFadeParams         math.Vec4
	DistortionEnabled        bool
	GrabTexture              *texture.Texture
	DistortionStrengthScaled float32
	DistortionBlend          float32
	ColorAddSubDiff          color.Color
	MainTex                  TextureSlot
	Color                    color.Color
	Cutoff                   float32
	MetallicGlossMap         *texture.Texture
	Metallic                 float32
	Glossiness               float32
	BumpMap                  *texture.Texture
	BumpScale                float32
	LightingEnabled          bool
	EmissionEnabled          bool
	EmissionColor            color.Color
	EmissionMap              *texture.Texture
}

// ParticleFrom extracts a particle definition. Missing properties take the
// shader defaults.
func ParticleFrom(p Properties) ParticleDefinition {
	return ParticleDefinition{
		RenderMode:               schema.ParticleBlendMode(intOr(p, PropMode, 0)),
		ColorMode:                schema.ParticleColorMode(intOr(p, PropColorMode, 0)),
		FlipBookMode:             schema.ParticleFlipBookMode(intOr(p, PropFlipbookMode, 0)),
		CullMode:                 schema.CullMode(intOr(p, PropCull, int(schema.CullBack))),
		SoftParticlesEnabled:     boolOr(p, PropSoftParticlesEnabled, false),
		SoftParticleFadeParams:   vectorOr(p, PropSoftParticleFadeParams, math.Vec4{}),
		CameraFadingEnabled:      boolOr(p, PropCameraFadingEnabled, false),
		CameraFadeParams:         vectorOr(p, PropCameraFadeParams, math.Vec4{}),
		DistortionEnabled:        boolOr(p, PropDistortionEnabled, false),
		GrabTexture:              textureOf(p, PropGrabTexture),
		DistortionStrengthScaled: floatOr(p, PropDistortionStrengthScaled, 0.1),
		DistortionBlend:          floatOr(p, PropDistortionBlend, 0.5),
		ColorAddSubDiff:          colorOr(p, PropColorAddSubDiff, color.Clear),
		MainTex:                  slotOr(p, PropMainTex),
		Color:                    colorOr(p, PropColor, color.White),
		Cutoff:                   floatOr(p, PropCutoff, 0.5),
		MetallicGlossMap:         textureOf(p, PropMetallicGlossMap),
		Metallic:                 floatOr(p, PropMetallic, 0),
		Glossiness:               floatOr(p, PropGlossiness, 0.5),
		BumpMap:                  textureOf(p, PropBumpMap),
		BumpScale:                floatOr(p, PropBumpScale, 1),
		LightingEnabled:          boolOr(p, PropLightingEnabled, false),
		EmissionEnabled:          boolOr(p, PropEmissionEnabled, false),
		EmissionColor:            colorOr(p, PropEmissionColor, color.Black),
		EmissionMap:              textureOf(p, PropEmissionMap),
	}
}

// Apply writes the definition back as shader properties.
func (d ParticleDefinition) Apply(s PropertySink) {
	s.SetFloat(PropMode, float32(d.RenderMode))
	s.SetFloat(PropColorMode, float32(d.ColorMode))
	s.SetFloat(PropFlipbookMode, float32(d.FlipBookMode))
	s.SetFloat(PropCull, float32(d.CullMode))
	setBool(s, PropSoftParticlesEnabled, d.SoftParticlesEnabled)
	s.SetVector(PropSoftParticleFadeParams, d.SoftParticleFadeParams)
	setBool(s, PropCameraFadingEnabled, d.CameraFadingEnabled)
	s.SetVector(PropCameraFadeParams, d.CameraFadeParams)
	setBool(s, PropDistortionEnabled, d.DistortionEnabled)
	setTexture(s, PropGrabTexture, d.GrabTexture)
	s.SetFloat(PropDistortionStrengthScaled, d.DistortionStrengthScaled)
	s.SetFloat(PropDistortionBlend, d.DistortionBlend)
	s.SetColor(PropColorAddSubDiff, d.ColorAddSubDiff)
	s.SetTexture(PropMainTex, d.MainTex)
	s.SetColor(PropColor, d.Color)
	s.SetFloat(PropCutoff, d.Cutoff)
	setTexture(s, PropMetallicGlossMap, d.MetallicGlossMap)
	s.SetFloat(PropMetallic, d.Metallic)
	s.SetFloat(PropGlossiness, d.Glossiness)
	setTexture(s, PropBumpMap, d.BumpMap)
	s.SetFloat(PropBumpScale, d.BumpScale)
	setBool(s, PropLightingEnabled, d.LightingEnabled)
	setBool(s, PropEmissionEnabled, d.EmissionEnabled)
	s.SetColor(PropEmissionColor, d.EmissionColor)
	setTexture(s, PropEmissionMap, d.EmissionMap)
}
