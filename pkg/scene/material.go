// Package scene is the engine-neutral object model exported to and imported
// from VGO files: materials with named shader properties, game objects,
// colliders and rigid bodies.
package scene

import (
	"sort"

	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/shader"
)

// QueueFromShader marks a material that uses its shader's render queue.
const QueueFromShader = -1

// Material is a named shader plus its property values.
type Material struct {
	Name   string
	Shader string
	Queue  int

	Floats   map[string]float32
	Colors   map[string]color.Color
	Vectors  map[string]math.Vec4
	Textures map[string]shader.TextureSlot
	Keywords map[string]bool
}

// NewMaterial creates an empty material using the given shader.
func NewMaterial(name, shaderName string) *Material {
	return &Material{
		Name:     name,
		Shader:   shaderName,
		Queue:    QueueFromShader,
		Floats:   make(map[string]float32),
		Colors:   make(map[string]color.Color),
		Vectors:  make(map[string]math.Vec4),
		Textures: make(map[string]shader.TextureSlot),
		Keywords: make(map[string]bool),
	}
}

func (m *Material) Float(name string) (float32, bool) {
	v, ok := m.Floats[name]
	return v, ok
}

func (m *Material) Color(name string) (color.Color, bool) {
	v, ok := m.Colors[name]
	return v, ok
}

func (m *Material) Vector(name string) (math.Vec4, bool) {
	v, ok := m.Vectors[name]
	return v, ok
}

func (m *Material) Texture(name string) (shader.TextureSlot, bool) {
	v, ok := m.Textures[name]
	return v, ok
}

func (m *Material) Keyword(name string) bool {
	return m.Keywords[name]
}

func (m *Material) RenderQueue() int {
	return m.Queue
}

func (m *Material) SetFloat(name string, v float32) {
	if m.Floats == nil {
		m.Floats = make(map[string]float32)
	}
	m.Floats[name] = v
}

func (m *Material) SetColor(name string, c color.Color) {
	if m.Colors == nil {
		m.Colors = make(map[string]color.Color)
	}
	m.Colors[name] = c
}

func (m *Material) SetVector(name string, v math.Vec4) {
	if m.Vectors == nil {
		m.Vectors = make(map[string]math.Vec4)
	}
	m.Vectors[name] = v
}

func (m *Material) SetTexture(name string, slot shader.TextureSlot) {
	if m.Textures == nil {
		m.Textures = make(map[string]shader.TextureSlot)
	}
	m.Textures[name] = slot
}

// SetKeyword enables or disables a shader keyword. Disabled keywords are
// removed.
func (m *Material) SetKeyword(name string, enabled bool) {
	if !enabled {
		delete(m.Keywords, name)
		return
	}
	if m.Keywords == nil {
		m.Keywords = make(map[string]bool)
	}
	m.Keywords[name] = true
}

func (m *Material) SetRenderQueue(queue int) {
	m.Queue = queue
}

// KeywordList returns the enabled keywords, sorted.
func (m *Material) KeywordList() []string {
	list := make([]string, 0, len(m.Keywords))
	for k, on := range m.Keywords {
		if on {
			list = append(list, k)
		}
	}
	sort.Strings(list)
	return list
}

var (
	_ shader.Properties   = (*Material)(nil)
	_ shader.PropertySink = (*Material)(nil)
)
