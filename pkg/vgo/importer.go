package vgo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/scene"
	"github.com/Faultbox/univgo/pkg/texture"
)

// Extensions accepted by Importer.Load.
var importExtensions = map[string]bool{
	".vgo":  true,
	".glb":  true,
	".gltf": true,
}

// ImportOptions controls how imported objects are set up.
type ImportOptions struct {
	ShowMeshes          bool
	UpdateWhenOffscreen bool
	StrictColliders     bool
}

// Importer reads VGO documents into scenes.
type Importer struct {
	// Version is the reader version compared against the file's. The zero
	// value means schema.CurrentVersion.
	Version schema.Version
	Log     *zap.Logger
}

// Load opens path and builds its scene. An empty path returns nil, nil.
// Decoding runs in the background; if ctx is done first Load returns
// ctx.Err() and no scene.
func (im *Importer) Load(ctx context.Context, path string, opts ImportOptions) (*scene.Scene, error) {
	if path == "" {
		return nil, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !importExtensions[ext] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		doc *gltf.Document
		err error
	}
	done := make(chan result, 1)
	go func() {
		doc, err := gltf.Open(path)
		done <- result{doc, err}
	}()

	var doc *gltf.Document
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("open %s: %w", path, r.err)
		}
		doc = r.doc
	}

	s, err := im.Build(doc, filepath.Dir(path), opts)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Build converts a decoded document. dir resolves relative image URIs.
func (im *Importer) Build(doc *gltf.Document, dir string, opts ImportOptions) (*scene.Scene, error) {
	log := logger(im.Log)
	s := &scene.Scene{}

	if err := im.checkVersion(doc, s, log); err != nil {
		return nil, err
	}

	res := texture.NewResolver(doc, dir)
	mi := MaterialImporter{Log: log}
	for _, gm := range doc.Materials {
		m, err := mi.Import(gm, res)
		if err != nil {
			return nil, err
		}
		s.Materials = append(s.Materials, m)
	}

	b := &treeBuilder{
		doc:       doc,
		scene:     s,
		opts:      opts,
		colliders: ColliderConverter{Strict: opts.StrictColliders, Log: log},
		visited:   make(map[int]bool),
	}
	for _, i := range rootNodes(doc) {
		obj, err := b.node(i)
		if err != nil {
			return nil, err
		}
		if obj != nil {
			s.Roots = append(s.Roots, obj)
		}
	}

	log.Info("document imported",
		zap.String("version", s.Version.String()),
		zap.Int("roots", len(s.Roots)),
		zap.Int("materials", len(s.Materials)))

	return s, nil
}

func (im *Importer) checkVersion(doc *gltf.Document, s *scene.Scene, log *zap.Logger) error {
	root, err := schema.Get[schema.Root](doc.Extensions, schema.ExtVGO)
	if err != nil {
		return err
	}
	if root == nil {
		log.Debug("no VGO root extension, reading as plain glTF")
		return nil
	}

	v, err := schema.ParseVersion(root.GenVersion)
	if err != nil {
		return err
	}
	reader := im.Version
	if reader == (schema.Version{}) {
		reader = schema.CurrentVersion
	}
	compat, err := schema.CheckCompatibility(v, reader)
	if err != nil {
		return err
	}
	if compat == schema.NewerMinor {
		log.Warn("file written by a newer VGO version",
			zap.String("file", v.String()),
			zap.String("reader", reader.String()))
	}

	s.Version = v
	s.Right = root.Right
	return nil
}

// rootNodes returns the nodes of the default scene, or every node that is
// nobody's child when the document has no scene.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		i := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			i = *doc.Scene
		}
		return doc.Scenes[i].Nodes
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

type treeBuilder struct {
	doc       *gltf.Document
	scene     *scene.Scene
	opts      ImportOptions
	colliders ColliderConverter
	visited   map[int]bool
}

func (b *treeBuilder) node(i int) (*scene.GameObject, error) {
	if i < 0 || i >= len(b.doc.Nodes) || b.visited[i] {
		return nil, nil
	}
	b.visited[i] = true
	n := b.doc.Nodes[i]

	obj := scene.NewGameObject(n.Name)
	obj.Transform = scene.Transform{
		Position: math.Vec3FromFloat64(n.Translation).ReverseZ(),
		Rotation: math.QuatFromFloat64(n.Rotation).ReverseZ(),
		Scale:    math.Vec3FromFloat64(n.Scale),
	}

	rec, err := schema.Get[schema.Nodes](n.Extensions, schema.ExtNodes)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Name, err)
	}
	if rec != nil {
		if g := rec.GameObject; g != nil {
			obj.Active = g.IsActive
			obj.Static = g.IsStatic
			obj.Tag = g.Tag
			obj.Layer = g.Layer
		}
		for _, cr := range rec.Colliders {
			c := NewCollider(cr)
			if c == nil {
				continue
			}
			if _, err := b.colliders.Apply(c, cr); err != nil {
				return nil, fmt.Errorf("node %q: %w", n.Name, err)
			}
			obj.Colliders = append(obj.Colliders, c)
		}
		obj.Rigidbody = NewRigidbody(rec.Rigidbody)
	}

	switch {
	case n.Mesh != nil:
		obj.Renderer = b.renderer(*n.Mesh)
	case rec != nil && rec.Renderer != nil:
		obj.Renderer = b.recordRenderer(rec.Renderer)
	}

	for _, c := range n.Children {
		child, err := b.node(c)
		if err != nil {
			return nil, err
		}
		if child != nil {
			obj.AddChild(child)
		}
	}
	return obj, nil
}

// recordRenderer rebuilds a renderer from its VGO_nodes record.
// ShowMeshes off hides it; UpdateWhenOffscreen on forces that flag.
func (b *treeBuilder) recordRenderer(rec *schema.Renderer) *scene.Renderer {
	r := &scene.Renderer{
		Mesh:                rec.Mesh,
		Enabled:             rec.Enabled && b.opts.ShowMeshes,
		UpdateWhenOffscreen: rec.UpdateWhenOffscreen || b.opts.UpdateWhenOffscreen,
	}
	for _, mi := range rec.Materials {
		if mi >= 0 && mi < len(b.scene.Materials) {
			r.Materials = append(r.Materials, b.scene.Materials[mi])
		}
	}
	return r
}

func (b *treeBuilder) renderer(mesh int) *scene.Renderer {
	r := &scene.Renderer{
		Mesh:                fmt.Sprintf("mesh_%d", mesh),
		Enabled:             b.opts.ShowMeshes,
		UpdateWhenOffscreen: b.opts.UpdateWhenOffscreen,
	}
	if mesh < 0 || mesh >= len(b.doc.Meshes) {
		return r
	}
	gmesh := b.doc.Meshes[mesh]
	if gmesh.Name != "" {
		r.Mesh = gmesh.Name
	}
	for _, prim := range gmesh.Primitives {
		if prim.Material == nil {
			continue
		}
		if mi := *prim.Material; mi >= 0 && mi < len(b.scene.Materials) {
			r.Materials = append(r.Materials, b.scene.Materials[mi])
		}
	}
	return r
}
