package vgo

import (
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/pkg/math"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/scene"
)

// ApplyResult tells what ColliderConverter.Apply did.
type ApplyResult int

// Apply results.
const (
	Applied ApplyResult = iota
	IgnoredNilCollider
	IgnoredNilRecord
	IgnoredShapeMismatch
)

// String returns the result name.
func (r ApplyResult) String() string {
	switch r {
	case Applied:
		return "applied"
	case IgnoredNilCollider:
		return "ignored: nil collider"
	case IgnoredNilRecord:
		return "ignored: nil record"
	case IgnoredShapeMismatch:
		return "ignored: shape mismatch"
	default:
		return "unknown"
	}
}

// ColliderFrom converts a live collider into its record. Nil colliders and
// shapes without a record type (mesh colliders) return nil.
func ColliderFrom(c scene.Collider) *schema.Collider {
	if isNilCollider(c) {
		return nil
	}

	base := c.Base()
	rec := &schema.Collider{
		Enabled:        base.Enabled,
		IsTrigger:      base.IsTrigger,
		Center:         base.Center.ReverseZ().ToArray(),
		PhysicMaterial: PhysicMaterialFrom(base.Material),
	}

	switch v := c.(type) {
	case *scene.BoxCollider:
		rec.Type = schema.ColliderBox
		rec.Size = v.Size.ToArray()
	case *scene.CapsuleCollider:
		rec.Type = schema.ColliderCapsule
		rec.Radius = v.Radius
		rec.Height = v.Height
		rec.Direction = v.Direction
	case *scene.SphereCollider:
		rec.Type = schema.ColliderSphere
		rec.Radius = v.Radius
	default:
		return nil
	}
	return rec
}

// NewCollider creates a default collider of the shape declared by rec, or
// nil for unknown shapes. Use ColliderConverter.Apply to copy the values.
func NewCollider(rec *schema.Collider) scene.Collider {
	if rec == nil {
		return nil
	}
	switch rec.Type {
	case schema.ColliderBox:
		return scene.NewBoxCollider()
	case schema.ColliderCapsule:
		return scene.NewCapsuleCollider()
	case schema.ColliderSphere:
		return scene.NewSphereCollider()
	default:
		return nil
	}
}

// ColliderConverter applies collider records onto live colliders.
//
// A record is applied only when its shape tag matches the collider. In
// lenient mode (the default) a mismatch is reported through the result
// alone; in strict mode it also returns a *ShapeMismatchError.
type ColliderConverter struct {
	Strict bool
	Log    *zap.Logger
}

// Apply copies rec onto c.
func (cc ColliderConverter) Apply(c scene.Collider, rec *schema.Collider) (ApplyResult, error) {
	if isNilCollider(c) {
		return IgnoredNilCollider, nil
	}
	if rec == nil {
		return IgnoredNilRecord, nil
	}
	if c.Shape() != rec.Type {
		if cc.Strict {
			logger(cc.Log).Warn("collider record not applied",
				zap.String("record", string(rec.Type)),
				zap.String("collider", string(c.Shape())))
			return IgnoredShapeMismatch, &ShapeMismatchError{Record: rec.Type, Collider: c.Shape()}
		}
		return IgnoredShapeMismatch, nil
	}

	base := c.Base()
	base.Enabled = rec.Enabled
	base.IsTrigger = rec.IsTrigger
	base.Center = math.Vec3FromArray(rec.Center).ReverseZ()
	base.Material = NewPhysicMaterial(rec.PhysicMaterial)

	switch v := c.(type) {
	case *scene.BoxCollider:
		v.Size = math.Vec3FromArray(rec.Size)
	case *scene.CapsuleCollider:
		v.Radius = rec.Radius
		v.Height = rec.Height
		v.Direction = rec.Direction
	case *scene.SphereCollider:
		v.Radius = rec.Radius
	}
	return Applied, nil
}

func isNilCollider(c scene.Collider) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *scene.BoxCollider:
		return v == nil
	case *scene.CapsuleCollider:
		return v == nil
	case *scene.SphereCollider:
		return v == nil
	case *scene.MeshCollider:
		return v == nil
	default:
		return false
	}
}

// PhysicMaterialFrom converts a physic material into its record.
func PhysicMaterialFrom(pm *scene.PhysicMaterial) *schema.PhysicMaterial {
	if pm == nil {
		return nil
	}
	return &schema.PhysicMaterial{
		DynamicFriction: pm.DynamicFriction,
		StaticFriction:  pm.StaticFriction,
		Bounciness:      pm.Bounciness,
		FrictionCombine: pm.FrictionCombine,
		BounceCombine:   pm.BounceCombine,
	}
}

// NewPhysicMaterial converts a physic material record.
func NewPhysicMaterial(rec *schema.PhysicMaterial) *scene.PhysicMaterial {
	if rec == nil {
		return nil
	}
	return &scene.PhysicMaterial{
		DynamicFriction: rec.DynamicFriction,
		StaticFriction:  rec.StaticFriction,
		Bounciness:      rec.Bounciness,
		FrictionCombine: rec.FrictionCombine,
		BounceCombine:   rec.BounceCombine,
	}
}

// RigidbodyFrom converts a rigid body into its record.
func RigidbodyFrom(rb *scene.Rigidbody) *schema.Rigidbody {
	if rb == nil {
		return nil
	}
	return &schema.Rigidbody{
		Mass:                   rb.Mass,
		Drag:                   rb.Drag,
		AngularDrag:            rb.AngularDrag,
		UseGravity:             rb.UseGravity,
		IsKinematic:            rb.IsKinematic,
		Interpolation:          rb.Interpolation,
		CollisionDetectionMode: rb.CollisionDetectionMode,
		Constraints:            rb.Constraints,
	}
}

// NewRigidbody converts a rigid body record.
func NewRigidbody(rec *schema.Rigidbody) *scene.Rigidbody {
	if rec == nil {
		return nil
	}
	return &scene.Rigidbody{
		Mass:                   rec.Mass,
		Drag:                   rec.Drag,
		AngularDrag:            rec.AngularDrag,
		UseGravity:             rec.UseGravity,
		IsKinematic:            rec.IsKinematic,
		Interpolation:          rec.Interpolation,
		CollisionDetectionMode: rec.CollisionDetectionMode,
		Constraints:            rec.Constraints,
	}
}
