package texture

import (
	"bytes"
	"fmt"
	"image"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/pkg/schema"
)

type slotKey struct {
	tex     *Texture
	variant string
}

// Table allocates texture slots in a glTF document during one export pass.
// Requesting the same texture with the same variant twice returns the same
// slot. A Table is not safe for concurrent use.
type Table struct {
	doc     *gltf.Document
	format  Format
	log     *zap.Logger
	slots   map[slotKey]int
	sources []*Texture
	sampler *int
}

// Option configures a Table.
type Option func(*Table)

// WithFormat sets the encoding for textures that need re-encoding.
func WithFormat(f Format) Option {
	return func(t *Table) { t.format = f }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Table) { t.log = l }
}

// NewTable creates a table writing into doc.
func NewTable(doc *gltf.Document, opts ...Option) *Table {
	t := &Table{
		doc:    doc,
		format: FormatPNG,
		log:    zap.NewNop(),
		slots:  make(map[slotKey]int),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of allocated slots.
func (t *Table) Len() int {
	return len(t.sources)
}

// Source returns the texture stored in slot i, or nil.
func (t *Table) Source(i int) *Texture {
	if i < 0 || i >= len(t.sources) {
		return nil
	}
	return t.sources[i]
}

// Copy embeds tex unchanged (re-encoding only when the container cannot
// hold its format) and returns its slot. A nil texture yields NoTexture.
func (t *Table) Copy(tex *Texture, cs ColorSpace) (schema.TextureIndex, error) {
	if tex == nil {
		return schema.NoTexture, nil
	}
	key := slotKey{tex: tex, variant: "copy/" + cs.String()}
	if i, ok := t.slots[key]; ok {
		return schema.TextureAt(i), nil
	}

	data, err := tex.Bytes()
	if err != nil {
		return schema.NoTexture, err
	}
	mime := tex.MimeType
	if mime == "" {
		mime = Sniff(data, tex.Path)
	}

	if !passthrough(mime, t.format) {
		img, err := Decode(data, mime)
		if err != nil {
			return schema.NoTexture, fmt.Errorf("decoding texture %q: %w", tex.Name, err)
		}
		data, mime, err = Encode(img, t.format)
		if err != nil {
			return schema.NoTexture, fmt.Errorf("encoding texture %q: %w", tex.Name, err)
		}
	}

	return t.add(key, data, mime)
}

// Convert decodes tex, applies c and embeds the result. A nil texture
// yields NoTexture.
func (t *Table) Convert(tex *Texture, c Converter) (schema.TextureIndex, error) {
	if tex == nil {
		return schema.NoTexture, nil
	}
	key := slotKey{tex: tex, variant: "convert/" + c.Name()}
	if i, ok := t.slots[key]; ok {
		return schema.TextureAt(i), nil
	}

	img, err := decodeTexture(tex)
	if err != nil {
		return schema.NoTexture, err
	}
	data, mime, err := Encode(c.Convert(img), t.format)
	if err != nil {
		return schema.NoTexture, fmt.Errorf("encoding texture %q: %w", tex.Name, err)
	}

	return t.add(key, data, mime)
}

func decodeTexture(tex *Texture) (image.Image, error) {
	data, err := tex.Bytes()
	if err != nil {
		return nil, err
	}
	mime := tex.MimeType
	if mime == "" {
		mime = Sniff(data, tex.Path)
	}
	img, err := Decode(data, mime)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %q: %w", tex.Name, err)
	}
	return img, nil
}

func (t *Table) add(key slotKey, data []byte, mime string) (schema.TextureIndex, error) {
	img, err := modeler.WriteImage(t.doc, key.tex.Name, mime, bytes.NewReader(data))
	if err != nil {
		return schema.NoTexture, fmt.Errorf("writing image %q: %w", key.tex.Name, err)
	}

	gt := &gltf.Texture{Name: key.tex.Name, Sampler: t.defaultSampler()}
	if mime == MimeWebP {
		gt.Extensions = gltf.Extensions{
			schema.ExtTextureWebP: &schema.TextureWebP{Source: gltf.Index(img)},
		}
		schema.MarkUsed(t.doc, schema.ExtTextureWebP)
		markRequired(t.doc, schema.ExtTextureWebP)
	} else {
		gt.Source = gltf.Index(img)
	}

	t.doc.Textures = append(t.doc.Textures, gt)
	slot := len(t.doc.Textures) - 1
	t.slots[key] = slot
	for len(t.sources) <= slot {
		t.sources = append(t.sources, nil)
	}
	t.sources[slot] = key.tex

	t.log.Debug("texture slot allocated",
		zap.String("texture", key.tex.Name),
		zap.String("variant", key.variant),
		zap.String("mime", mime),
		zap.Int("slot", slot))

	return schema.TextureAt(slot), nil
}

func (t *Table) defaultSampler() *int {
	if t.sampler == nil {
		t.doc.Samplers = append(t.doc.Samplers, &gltf.Sampler{})
		t.sampler = gltf.Index(len(t.doc.Samplers) - 1)
	}
	i := *t.sampler
	return &i
}

func markRequired(doc *gltf.Document, name string) {
	for _, req := range doc.ExtensionsRequired {
		if req == name {
			return
		}
	}
	doc.ExtensionsRequired = append(doc.ExtensionsRequired, name)
}
