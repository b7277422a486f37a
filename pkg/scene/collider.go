package scene

import (
	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
)

// ShapeMesh is the shape tag of mesh colliders, which have no VGO record.
const ShapeMesh schema.ColliderType = "Mesh"

// Collider is a collision shape attached to a game object.
type Collider interface {
	Shape() schema.ColliderType
	Base() *ColliderBase
}

// ColliderBase holds the fields shared by every collider shape.
// Center is in engine coordinates.
type ColliderBase struct {
	Enabled   bool
	IsTrigger bool
	Center    math.Vec3
	Material  *PhysicMaterial
}

// Base returns the shared fields.
func (b *ColliderBase) Base() *ColliderBase { return b }

type BoxCollider struct {
	ColliderBase
	Size math.Vec3
}

func (*BoxCollider) Shape() schema.ColliderType { return schema.ColliderBox }

type CapsuleCollider struct {
	ColliderBase
	Radius    float32
	Height    float32
	Direction int
}

func (*CapsuleCollider) Shape() schema.ColliderType { return schema.ColliderCapsule }

type SphereCollider struct {
	ColliderBase
	Radius float32
}

func (*SphereCollider) Shape() schema.ColliderType { return schema.ColliderSphere }

// MeshCollider uses the object's mesh as its shape.
type MeshCollider struct {
	ColliderBase
	Convex bool
}

func (*MeshCollider) Shape() schema.ColliderType { return ShapeMesh }

// PhysicMaterial is the surface of a collider.
type PhysicMaterial struct {
	Name            string
	DynamicFriction float32
	StaticFriction  float32
	Bounciness      float32
	FrictionCombine schema.PhysicMaterialCombine
	BounceCombine   schema.PhysicMaterialCombine
}

// NewBoxCollider returns an enabled unit box.
func NewBoxCollider() *BoxCollider {
	return &BoxCollider{ColliderBase: ColliderBase{Enabled: true}, Size: math.Vec3One}
}

// NewCapsuleCollider returns an enabled Y-axis capsule.
func NewCapsuleCollider() *CapsuleCollider {
	return &CapsuleCollider{ColliderBase: ColliderBase{Enabled: true}, Radius: 0.5, Height: 2, Direction: 1}
}

// NewSphereCollider returns an enabled sphere.
func NewSphereCollider() *SphereCollider {
	return &SphereCollider{ColliderBase: ColliderBase{Enabled: true}, Radius: 0.5}
}
