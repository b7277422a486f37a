package shader

import (
	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/texture"
)

// Standard shader property names not shared with the other shaders.
const (
	PropGlossMapScale     = "_GlossMapScale"
	PropOcclusionMap      = "_OcclusionMap"
	PropOcclusionStrength = "_OcclusionStrength"

	KeywordEmission = "_EMISSION"
)

// StandardMode is the Standard shader rendering mode (_Mode).
type StandardMode int

// Standard rendering modes.
const (
	StandardOpaque      StandardMode = 0
	StandardCutout      StandardMode = 1
	StandardFade        StandardMode = 2
	StandardTransparent StandardMode = 3
)

// StandardDefinition holds the parameters of the Standard shader.
type StandardDefinition struct {
	Mode              StandardMode
	Color             color.Color
	MainTex           TextureSlot
	Cutoff            float32
	Metallic          float32
	Glossiness        float32
	GlossMapScale     float32
	MetallicGlossMap  *texture.Texture
	BumpMap           *texture.Texture
	BumpScale         float32
	OcclusionMap      *texture.Texture
	OcclusionStrength float32
	EmissionEnabled   bool
	EmissionColor     color.Color
	EmissionMap       *texture.Texture
}

// StandardFrom extracts a Standard definition.
func StandardFrom(p Properties) StandardDefinition {
	return StandardDefinition{
		Mode:              StandardMode(intOr(p, PropMode, 0)),
		Color:             colorOr(p, PropColor, color.White),
		MainTex:           slotOr(p, PropMainTex),
		Cutoff:            floatOr(p, PropCutoff, 0.5),
		Metallic:          floatOr(p, PropMetallic, 0),
		Glossiness:        floatOr(p, PropGlossiness, 0.5),
		GlossMapScale:     floatOr(p, PropGlossMapScale, 1),
		MetallicGlossMap:  textureOf(p, PropMetallicGlossMap),
		BumpMap:           textureOf(p, PropBumpMap),
		BumpScale:         floatOr(p, PropBumpScale, 1),
		OcclusionMap:      textureOf(p, PropOcclusionMap),
		OcclusionStrength: floatOr(p, PropOcclusionStrength, 1),
		EmissionEnabled:   p.Keyword(KeywordEmission),
		EmissionColor:     colorOr(p, PropEmissionColor, color.Black),
		EmissionMap:       textureOf(p, PropEmissionMap),
	}
}

// Apply writes the definition back as shader properties, keywords and the
// render queue of the mode.
func (d StandardDefinition) Apply(s PropertySink) {
	s.SetFloat(PropMode, float32(d.Mode))
	s.SetKeyword(KeywordAlphaTest, d.Mode == StandardCutout)
	s.SetKeyword(KeywordAlphaBlend, d.Mode == StandardFade)
	s.SetKeyword(KeywordAlphaPremultiply, d.Mode == StandardTransparent)
	switch d.Mode {
	case StandardCutout:
		s.SetRenderQueue(QueueAlphaTest)
	case StandardFade, StandardTransparent:
		s.SetRenderQueue(QueueTransparent)
	default:
		s.SetRenderQueue(QueueGeometry)
	}

	s.SetColor(PropColor, d.Color)
	s.SetTexture(PropMainTex, d.MainTex)
	s.SetFloat(PropCutoff, d.Cutoff)
	s.SetFloat(PropMetallic, d.Metallic)
	s.SetFloat(PropGlossiness, d.Glossiness)
	s.SetFloat(PropGlossMapScale, d.GlossMapScale)
	setTexture(s, PropMetallicGlossMap, d.MetallicGlossMap)
	setTexture(s, PropBumpMap, d.BumpMap)
	s.SetFloat(PropBumpScale, d.BumpScale)
	setTexture(s, PropOcclusionMap, d.OcclusionMap)
	s.SetFloat(PropOcclusionStrength, d.OcclusionStrength)
	s.SetKeyword(KeywordEmission, d.EmissionEnabled)
	s.SetColor(PropEmissionColor, d.EmissionColor)
	setTexture(s, PropEmissionMap, d.EmissionMap)
}

// EmissionActive reports whether the emission block should be exported.
func (d StandardDefinition) EmissionActive() bool {
	return d.EmissionEnabled || !d.EmissionColor.IsBlack()
}
