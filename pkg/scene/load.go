package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/univgo/pkg/color"
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/shader"
	"github.com/Faultbox/univgo/pkg/texture"
)

var (
	ErrUnknownTexture  = errors.New("unknown texture")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownCollider = errors.New("unknown collider type")
	ErrDuplicateName   = errors.New("duplicate name")
)

// fileScene is the YAML scene description.
type fileScene struct {
	Name      string         `yaml:"name"`
	Right     *schema.Right  `yaml:"right"`
	Textures  []fileTexture  `yaml:"textures"`
	Materials []fileMaterial `yaml:"materials"`
	Objects   []fileObject   `yaml:"objects"`
}

type fileTexture struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type fileMaterial struct {
	Name        string                 `yaml:"name"`
	Shader      string                 `yaml:"shader"`
	RenderQueue *int                   `yaml:"render_queue"`
	Floats      map[string]float32     `yaml:"floats"`
	Colors      map[string][]float32   `yaml:"colors"`
	Vectors     map[string][]float32   `yaml:"vectors"`
	Textures    map[string]fileTexSlot `yaml:"textures"`
	Keywords    []string               `yaml:"keywords"`
}

type fileTexSlot struct {
	Texture string    `yaml:"texture"`
	Scale   []float32 `yaml:"scale"`
	Offset  []float32 `yaml:"offset"`
}

type fileObject struct {
	Name      string         `yaml:"name"`
	Position  []float32      `yaml:"position"`
	Rotation  []float32      `yaml:"rotation"`
	Scale     []float32      `yaml:"scale"`
	Active    *bool          `yaml:"active"`
	Static    bool           `yaml:"static"`
	Tag       string         `yaml:"tag"`
	Layer     int            `yaml:"layer"`
	Mesh      string         `yaml:"mesh"`
	Materials []string       `yaml:"materials"`
	Colliders []fileCollider `yaml:"colliders"`
	Rigidbody *fileRigidbody `yaml:"rigidbody"`
	Children  []fileObject   `yaml:"children"`
}

type fileCollider struct {
	Type           string              `yaml:"type"`
	Enabled        *bool               `yaml:"enabled"`
	IsTrigger      bool                `yaml:"is_trigger"`
	Center         []float32           `yaml:"center"`
	Size           []float32           `yaml:"size"`
	Radius         *float32            `yaml:"radius"`
	Height         *float32            `yaml:"height"`
	Direction      *int                `yaml:"direction"`
	Convex         bool                `yaml:"convex"`
	PhysicMaterial *filePhysicMaterial `yaml:"physic_material"`
}

type filePhysicMaterial struct {
	Name            string  `yaml:"name"`
	DynamicFriction float32 `yaml:"dynamic_friction"`
	StaticFriction  float32 `yaml:"static_friction"`
	Bounciness      float32 `yaml:"bounciness"`
	FrictionCombine int     `yaml:"friction_combine"`
	BounceCombine   int     `yaml:"bounce_combine"`
}

type fileRigidbody struct {
	Mass                   *float32 `yaml:"mass"`
	Drag                   float32  `yaml:"drag"`
	AngularDrag            *float32 `yaml:"angular_drag"`
	UseGravity             *bool    `yaml:"use_gravity"`
	IsKinematic            bool     `yaml:"is_kinematic"`
	Interpolation          int      `yaml:"interpolation"`
	CollisionDetectionMode int      `yaml:"collision_detection_mode"`
	Constraints            int      `yaml:"constraints"`
}

// LoadFile reads a YAML scene description. Texture paths are relative to
// the file's directory.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene description. dir resolves relative texture
// paths.
func Parse(data []byte, dir string) (*Scene, error) {
	var f fileScene
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	p := parser{
		textures:  make(map[string]*texture.Texture),
		materials: make(map[string]*Material),
	}

	for _, ft := range f.Textures {
		if _, ok := p.textures[ft.Name]; ok {
			return nil, fmt.Errorf("%w: texture %q", ErrDuplicateName, ft.Name)
		}
		path := ft.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		tex := texture.Load(path)
		if ft.Name != "" {
			tex.Name = ft.Name
		}
		p.textures[ft.Name] = tex
	}

	s := &Scene{Name: f.Name, Version: schema.CurrentVersion, Right: f.Right}

	for _, fm := range f.Materials {
		if _, ok := p.materials[fm.Name]; ok {
			return nil, fmt.Errorf("%w: material %q", ErrDuplicateName, fm.Name)
		}
		m, err := p.material(fm)
		if err != nil {
			return nil, err
		}
		p.materials[fm.Name] = m
		s.Materials = append(s.Materials, m)
	}

	for _, fo := range f.Objects {
		obj, err := p.object(fo)
		if err != nil {
			return nil, err
		}
		s.Roots = append(s.Roots, obj)
	}

	return s, nil
}

type parser struct {
	textures  map[string]*texture.Texture
	materials map[string]*Material
}

func (p *parser) material(fm fileMaterial) (*Material, error) {
	m := NewMaterial(fm.Name, fm.Shader)
	if fm.RenderQueue != nil {
		m.Queue = *fm.RenderQueue
	}
	for k, v := range fm.Floats {
		m.SetFloat(k, v)
	}
	for k, v := range fm.Colors {
		m.SetColor(k, color.FromArray(v))
	}
	for k, v := range fm.Vectors {
		m.SetVector(k, math.Vec4FromArray(v))
	}
	for k, v := range fm.Textures {
		slot := shader.DefaultSlot
		if v.Texture != "" {
			tex, ok := p.textures[v.Texture]
			if !ok {
				return nil, fmt.Errorf("%w: %q in material %q", ErrUnknownTexture, v.Texture, fm.Name)
			}
			slot.Texture = tex
		}
		if len(v.Scale) > 0 {
			slot.Scale = math.Vec2FromArray(v.Scale)
		}
		slot.Offset = math.Vec2FromArray(v.Offset)
		m.SetTexture(k, slot)
	}
	for _, k := range fm.Keywords {
		m.SetKeyword(k, true)
	}
	return m, nil
}

func (p *parser) object(fo fileObject) (*GameObject, error) {
	obj := NewGameObject(fo.Name)
	obj.Transform.Position = math.Vec3FromArray(fo.Position)
	if len(fo.Rotation) > 0 {
		obj.Transform.Rotation = math.QuatFromArray(fo.Rotation)
	}
	if len(fo.Scale) > 0 {
		obj.Transform.Scale = math.Vec3FromArray(fo.Scale)
	}
	if fo.Active != nil {
		obj.Active = *fo.Active
	}
	obj.Static = fo.Static
	obj.Tag = fo.Tag
	obj.Layer = fo.Layer

	if fo.Mesh != "" || len(fo.Materials) > 0 {
		r := &Renderer{Mesh: fo.Mesh, Enabled: true}
		for _, name := range fo.Materials {
			m, ok := p.materials[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q on object %q", ErrUnknownMaterial, name, fo.Name)
			}
			r.Materials = append(r.Materials, m)
		}
		obj.Renderer = r
	}

	for _, fc := range fo.Colliders {
		c, err := collider(fc)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", fo.Name, err)
		}
		obj.Colliders = append(obj.Colliders, c)
	}

	if fr := fo.Rigidbody; fr != nil {
		rb := DefaultRigidbody()
		if fr.Mass != nil {
			rb.Mass = *fr.Mass
		}
		if fr.AngularDrag != nil {
			rb.AngularDrag = *fr.AngularDrag
		}
		if fr.UseGravity != nil {
			rb.UseGravity = *fr.UseGravity
		}
		rb.Drag = fr.Drag
		rb.IsKinematic = fr.IsKinematic
		rb.Interpolation = fr.Interpolation
		rb.CollisionDetectionMode = fr.CollisionDetectionMode
		rb.Constraints = fr.Constraints
		obj.Rigidbody = rb
	}

	for _, fc := range fo.Children {
		child, err := p.object(fc)
		if err != nil {
			return nil, err
		}
		obj.AddChild(child)
	}

	return obj, nil
}

func collider(fc fileCollider) (Collider, error) {
	var c Collider
	switch strings.ToLower(fc.Type) {
	case "box":
		box := NewBoxCollider()
		if len(fc.Size) > 0 {
			box.Size = math.Vec3FromArray(fc.Size)
		}
		c = box
	case "capsule":
		capsule := NewCapsuleCollider()
		if fc.Radius != nil {
			capsule.Radius = *fc.Radius
		}
		if fc.Height != nil {
			capsule.Height = *fc.Height
		}
		if fc.Direction != nil {
			capsule.Direction = *fc.Direction
		}
		c = capsule
	case "sphere":
		sphere := NewSphereCollider()
		if fc.Radius != nil {
			sphere.Radius = *fc.Radius
		}
		c = sphere
	case "mesh":
		c = &MeshCollider{ColliderBase: ColliderBase{Enabled: true}, Convex: fc.Convex}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollider, fc.Type)
	}

	base := c.Base()
	if fc.Enabled != nil {
		base.Enabled = *fc.Enabled
	}
	base.IsTrigger = fc.IsTrigger
	base.Center = math.Vec3FromArray(fc.Center)
	if pm := fc.PhysicMaterial; pm != nil {
		base.Material = &PhysicMaterial{
			Name:            pm.Name,
			DynamicFriction: pm.DynamicFriction,
			StaticFriction:  pm.StaticFriction,
			Bounciness:      pm.Bounciness,
			FrictionCombine: schema.PhysicMaterialCombine(pm.FrictionCombine),
			BounceCombine:   schema.PhysicMaterialCombine(pm.BounceCombine),
		}
	}
	return c, nil
}
