package scene

import (
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
)

// Transform is a local transform in engine (left-handed) coordinates.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{Rotation: math.QuatIdentity(), Scale: math.Vec3One}
}

// GameObject is a node in the object tree.
type GameObject struct {
	Name      string
	Transform Transform
	Active    bool
	Static    bool
	Tag       string
	Layer     int

	Colliders []Collider
	Rigidbody *Rigidbody
	Renderer  *Renderer

	Children []*GameObject
}

// NewGameObject creates an active object with an identity transform.
func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:      name,
		Transform: IdentityTransform(),
		Active:    true,
	}
}

// AddChild appends child and returns it.
func (g *GameObject) AddChild(child *GameObject) *GameObject {
	g.Children = append(g.Children, child)
	return child
}

// Walk visits g and its descendants depth-first.
func (g *GameObject) Walk(fn func(obj *GameObject, depth int)) {
	g.walk(fn, 0)
}

func (g *GameObject) walk(fn func(*GameObject, int), depth int) {
	fn(g, depth)
	for _, c := range g.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns the first descendant (or g itself) with the given name.
func (g *GameObject) Find(name string) *GameObject {
	if g.Name == name {
		return g
	}
	for _, c := range g.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Rigidbody is the physics body of a game object.
type Rigidbody struct {
	Mass                   float32
	Drag                   float32
	AngularDrag            float32
	UseGravity             bool
	IsKinematic            bool
	Interpolation          int
	CollisionDetectionMode int
	Constraints            int
}

// DefaultRigidbody returns a rigid body with engine defaults.
func DefaultRigidbody() *Rigidbody {
	return &Rigidbody{Mass: 1, AngularDrag: 0.05, UseGravity: true}
}

// Renderer draws a mesh with a list of materials.
type Renderer struct {
	Mesh                string
	Materials           []*Material
	Enabled             bool
	UpdateWhenOffscreen bool
}

// Scene is a loaded or imported object tree.
type Scene struct {
	Name      string
	Roots     []*GameObject
	Materials []*Material
	Version   schema.Version
	Right     *schema.Right
}

// Walk visits every object of every root.
func (s *Scene) Walk(fn func(obj *GameObject, depth int)) {
	for _, r := range s.Roots {
		r.Walk(fn)
	}
}

// Material returns the material with the given name, or nil.
func (s *Scene) Material(name string) *Material {
	for _, m := range s.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}
