package vgo

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/scene"
	"github.com/Faultbox/univgo/pkg/texture"
)

// DefaultGenerator is written to asset.generator when none is configured.
const DefaultGenerator = "univgo"

// Exporter builds VGO documents from scene objects.
type Exporter struct {
	Generator     string
	TextureFormat texture.Format
	Right         *schema.Right
	Log           *zap.Logger
}

// Export builds a document for root and materials. Materials referenced by
// renderers under root are exported too; each material is written once.
func (e *Exporter) Export(root *scene.GameObject, materials []*scene.Material) (*gltf.Document, error) {
	var roots []*scene.GameObject
	if root != nil {
		roots = append(roots, root)
	}
	return e.export(roots, materials, e.Right)
}

// ExportScene builds a document for every root of s. The scene rights take
// precedence over the exporter's.
func (e *Exporter) ExportScene(s *scene.Scene) (*gltf.Document, error) {
	right := e.Right
	if s.Right != nil {
		right = s.Right
	}
	return e.export(s.Roots, s.Materials, right)
}

type exportPass struct {
	doc       *gltf.Document
	log       *zap.Logger
	textures  *texture.Table
	materials map[*scene.Material]int
	exporter  MaterialExporter
	nodesUsed bool
}

func (e *Exporter) export(roots []*scene.GameObject, materials []*scene.Material, right *schema.Right) (*gltf.Document, error) {
	log := logger(e.Log)

	doc := gltf.NewDocument()
	doc.Asset.Generator = e.Generator
	if doc.Asset.Generator == "" {
		doc.Asset.Generator = DefaultGenerator
	}

	format := e.TextureFormat
	if format == "" {
		format = texture.FormatPNG
	}

	p := &exportPass{
		doc:       doc,
		log:       log,
		textures:  texture.NewTable(doc, texture.WithFormat(format), texture.WithLogger(log)),
		materials: make(map[*scene.Material]int),
		exporter:  MaterialExporter{Log: log},
	}

	for _, m := range materials {
		if _, err := p.material(m); err != nil {
			return nil, err
		}
	}

	sceneNodes := make([]int, 0, len(roots))
	for _, r := range roots {
		if r == nil {
			continue
		}
		idx, err := p.node(r)
		if err != nil {
			return nil, err
		}
		sceneNodes = append(sceneNodes, idx)
	}
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
		doc.Scene = gltf.Index(0)
	}
	doc.Scenes[0].Nodes = sceneNodes

	setExtension(&doc.Extensions, schema.ExtVGO, &schema.Root{
		GenVersion: schema.CurrentVersion.String(),
		Right:      right,
	})
	schema.MarkUsed(doc, schema.ExtVGO)
	if p.nodesUsed {
		schema.MarkUsed(doc, schema.ExtNodes)
	}
	for _, name := range materialExtensions(doc) {
		schema.MarkUsed(doc, name)
	}

	log.Info("document exported",
		zap.Int("nodes", len(doc.Nodes)),
		zap.Int("materials", len(doc.Materials)),
		zap.Int("textures", p.textures.Len()))

	return doc, nil
}

func (p *exportPass) material(m *scene.Material) (int, error) {
	if m == nil {
		return -1, nil
	}
	if i, ok := p.materials[m]; ok {
		return i, nil
	}
	gm, err := p.exporter.Export(m, p.textures)
	if err != nil {
		return -1, err
	}
	p.doc.Materials = append(p.doc.Materials, gm)
	i := len(p.doc.Materials) - 1
	p.materials[m] = i
	return i, nil
}

func (p *exportPass) node(obj *scene.GameObject) (int, error) {
	t := obj.Transform
	n := &gltf.Node{
		Name:        obj.Name,
		Translation: t.Position.ReverseZ().Float64(),
		Rotation:    t.Rotation.ReverseZ().Float64(),
		Scale:       t.Scale.Float64(),
	}
	p.doc.Nodes = append(p.doc.Nodes, n)
	idx := len(p.doc.Nodes) - 1

	rec := &schema.Nodes{
		GameObject: &schema.GameObject{
			IsActive: obj.Active,
			IsStatic: obj.Static,
			Tag:      obj.Tag,
			Layer:    obj.Layer,
		},
		Rigidbody: RigidbodyFrom(obj.Rigidbody),
	}
	for _, c := range obj.Colliders {
		if cr := ColliderFrom(c); cr != nil {
			rec.Colliders = append(rec.Colliders, cr)
		} else if !isNilCollider(c) {
			p.log.Debug("collider skipped",
				zap.String("node", obj.Name),
				zap.String("shape", string(c.Shape())))
		}
	}
	if r := obj.Renderer; r != nil {
		rr := &schema.Renderer{
			Mesh:                r.Mesh,
			Enabled:             r.Enabled,
			UpdateWhenOffscreen: r.UpdateWhenOffscreen,
		}
		for _, m := range r.Materials {
			mi, err := p.material(m)
			if err != nil {
				return -1, err
			}
			if mi >= 0 {
				rr.Materials = append(rr.Materials, mi)
			}
		}
		rec.Renderer = rr
	}
	setExtension(&n.Extensions, schema.ExtNodes, rec)
	p.nodesUsed = true

	for _, c := range obj.Children {
		if c == nil {
			continue
		}
		ci, err := p.node(c)
		if err != nil {
			return -1, err
		}
		n.Children = append(n.Children, ci)
	}
	return idx, nil
}

// materialExtensions returns the extension keys used by the document's
// materials, sorted.
func materialExtensions(doc *gltf.Document) []string {
	seen := make(map[string]bool)
	for _, m := range doc.Materials {
		for k := range m.Extensions {
			seen[k] = true
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Save writes doc to path: JSON with embedded buffers for .gltf, GLB
// otherwise.
func Save(doc *gltf.Document, path string) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".gltf") {
		for _, b := range doc.Buffers {
			if b.URI == "" && len(b.Data) > 0 {
				b.EmbeddedResource()
			}
		}
		err = gltf.Save(doc, path)
	} else {
		err = gltf.SaveBinary(doc, path)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
