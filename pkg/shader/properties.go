package shader

import (
	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/texture"
)

// TextureSlot is a texture property: the texture plus its scale and offset.
// Texture may be nil while scale/offset are still meaningful.
type TextureSlot struct {
	Texture *texture.Texture
	Scale   math.Vec2
	Offset  math.Vec2
}

// DefaultSlot is an empty texture property with unit scale.
var DefaultSlot = TextureSlot{Scale: math.Vec2{X: 1, Y: 1}}

// ST returns scale and offset packed as (sx, sy, ox, oy), the _ST layout.
func (s TextureSlot) ST() math.Vec4 {
	return math.Vec4{X: s.Scale.X, Y: s.Scale.Y, Z: s.Offset.X, W: s.Offset.Y}
}

// SlotFromST unpacks an _ST vector.
func SlotFromST(tex *texture.Texture, st []float32) TextureSlot {
	v := math.Vec4FromArray(st)
	if len(st) < 4 {
		v = DefaultSlot.ST()
	}
	return TextureSlot{
		Texture: tex,
		Scale:   math.Vec2{X: v.X, Y: v.Y},
		Offset:  math.Vec2{X: v.Z, Y: v.W},
	}
}

// Properties reads shader properties of a material.
// Colors are returned as stored by the engine (gamma space).
type Properties interface {
	Float(name string) (float32, bool)
	Color(name string) (color.Color, bool)
	Vector(name string) (math.Vec4, bool)
	Texture(name string) (TextureSlot, bool)
	Keyword(name string) bool

	// RenderQueue returns the material queue, or -1 for the shader default.
	RenderQueue() int
}

// PropertySink writes shader properties onto a material.
type PropertySink interface {
	SetFloat(name string, v float32)
	SetColor(name string, c color.Color)
	SetVector(name string, v math.Vec4)
	SetTexture(name string, slot TextureSlot)
	SetKeyword(name string, enabled bool)
	SetRenderQueue(queue int)
}

func floatOr(p Properties, name string, def float32) float32 {
	if v, ok := p.Float(name); ok {
		return v
	}
	return def
}

func intOr(p Properties, name string, def int) int {
	if v, ok := p.Float(name); ok {
		return int(v)
	}
	return def
}

func boolOr(p Properties, name string, def bool) bool {
	if v, ok := p.Float(name); ok {
		return v != 0
	}
	return def
}

func colorOr(p Properties, name string, def color.Color) color.Color {
	if v, ok := p.Color(name); ok {
		return v
	}
	return def
}

func vectorOr(p Properties, name string, def math.Vec4) math.Vec4 {
	if v, ok := p.Vector(name); ok {
		return v
	}
	return def
}

func slotOr(p Properties, name string) TextureSlot {
	if s, ok := p.Texture(name); ok {
		return s
	}
	return DefaultSlot
}

func textureOf(p Properties, name string) *texture.Texture {
	if s, ok := p.Texture(name); ok {
		return s.Texture
	}
	return nil
}

func setBool(s PropertySink, name string, v bool) {
	if v {
		s.SetFloat(name, 1)
		return
	}
	s.SetFloat(name, 0)
}

// setTexture writes a texture property, leaving absent textures unset.
func setTexture(s PropertySink, name string, tex *texture.Texture) {
	if tex == nil {
		return
	}
	s.SetTexture(name, TextureSlot{Texture: tex, Scale: DefaultSlot.Scale})
}
