// Package vgo converts between the scene object model and VGO documents:
// glTF files whose extensions carry engine materials, colliders and rigid
// bodies.
package vgo

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/texture"
)

var (
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrMissingPayload       = errors.New("material extension payload missing")
	ErrShapeMismatch        = errors.New("collider shape mismatch")
)

// ShapeMismatchError is returned by a strict ColliderConverter when the
// record describes a different shape than the live collider.
type ShapeMismatchError struct {
	Record   schema.ColliderType
	Collider schema.ColliderType
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("collider shape mismatch: record %s, collider %s", e.Record, e.Collider)
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// textureSlots allocates texture indices and keeps the first error, so a
// record can be filled in one expression.
type textureSlots struct {
	tbl *texture.Table
	err error
}

func (t *textureSlots) copy(tex *texture.Texture, cs texture.ColorSpace) schema.TextureIndex {
	if t.err != nil || tex == nil {
		return schema.NoTexture
	}
	idx, err := t.tbl.Copy(tex, cs)
	if err != nil {
		t.err = err
	}
	return idx
}

func (t *textureSlots) convert(tex *texture.Texture, c texture.Converter) schema.TextureIndex {
	if t.err != nil || tex == nil {
		return schema.NoTexture
	}
	idx, err := t.tbl.Convert(tex, c)
	if err != nil {
		t.err = err
	}
	return idx
}

// textureRefs resolves texture indices and keeps the first error.
type textureRefs struct {
	res *texture.Resolver
	err error
}

func (t *textureRefs) get(idx schema.TextureIndex) *texture.Texture {
	if t.err != nil || !idx.Valid() || t.res == nil {
		return nil
	}
	tex, err := t.res.Resolve(idx)
	if err != nil {
		t.err = err
	}
	return tex
}

func (t *textureRefs) index(i int) *texture.Texture {
	return t.get(schema.TextureAt(i))
}

// linear converts a gamma color to the linear array stored in records.
func linear(c color.Color) []float32 {
	return c.Linear().ToArray()
}

// gamma converts a linear record color back to gamma space. Empty arrays
// yield def.
func gamma(a []float32, def color.Color) color.Color {
	if len(a) == 0 {
		return def
	}
	return color.FromArray(a).Gamma()
}

func factor4(a []float32) *[4]float64 {
	if len(a) == 0 {
		return nil
	}
	c := color.FromArray(a).Float64()
	return &c
}

func factor3(a []float32) [3]float64 {
	return color.FromArray(a).RGB()
}

func setExtension(ext *gltf.Extensions, key string, v any) {
	if *ext == nil {
		*ext = make(gltf.Extensions)
	}
	(*ext)[key] = v
}
