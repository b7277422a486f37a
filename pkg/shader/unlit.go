package shader

import (
	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/schema"
)

// UnlitDefinition holds the parameters shared by the unlit shaders.
type UnlitDefinition struct {
	RenderMode schema.MToonRenderMode
	Color      color.Color
	MainTex    TextureSlot
	Cutoff     float32
	CullMode   schema.CullMode

	// ModeFromProperty is set for shaders that store the render mode in
	// _BlendMode rather than in the shader name.
	ModeFromProperty bool
}

// UnlitFrom extracts an unlit definition. info selects whether the render
// mode is fixed by the shader or read from the material.
func UnlitFrom(info Info, p Properties) UnlitDefinition {
	def := UnlitDefinition{
		RenderMode:       info.UnlitMode,
		Color:            colorOr(p, PropColor, color.White),
		Cutoff:           floatOr(p, PropCutoff, 0.5),
		CullMode:         schema.CullMode(intOr(p, PropCullMode, int(schema.CullBack))),
		ModeFromProperty: info.UnlitModeFromProperty,
	}
	if info.UnlitModeFromProperty {
		def.RenderMode = schema.MToonRenderMode(intOr(p, PropBlendMode, 0))
	}
	if info.UnlitTextured {
		def.MainTex = slotOr(p, PropMainTex)
	} else {
		def.MainTex = DefaultSlot
	}
	return def
}

// Apply writes the definition back as shader properties.
func (d UnlitDefinition) Apply(s PropertySink) {
	s.SetColor(PropColor, d.Color)
	s.SetTexture(PropMainTex, d.MainTex)
	s.SetFloat(PropCutoff, d.Cutoff)
	if d.ModeFromProperty {
		s.SetFloat(PropBlendMode, float32(d.RenderMode))
		s.SetFloat(PropCullMode, float32(d.CullMode))
	}
	s.SetKeyword(KeywordAlphaTest, d.RenderMode == schema.MToonCutout)
	s.SetKeyword(KeywordAlphaBlend, d.RenderMode == schema.MToonTransparent || d.RenderMode == schema.MToonTransparentWithZWrite)
	s.SetRenderQueue(RenderQueueBase(d.RenderMode))
}
