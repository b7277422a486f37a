package schema

// Nodes is the VGO_nodes extension attached to a glTF node.
type Nodes struct {
	GameObject *GameObject `json:"gameObject,omitempty"`
	Colliders  []*Collider `json:"colliders,omitempty"`
	Rigidbody  *Rigidbody  `json:"rigidbody,omitempty"`
	Renderer   *Renderer   `json:"renderer,omitempty"`
}

// Renderer links a node to its materials when no glTF mesh carries them.
// Materials are indices into the document's materials.
type Renderer struct {
	Mesh                string `json:"mesh,omitempty"`
	Enabled             bool   `json:"enabled"`
	UpdateWhenOffscreen bool   `json:"updateWhenOffscreen,omitempty"`
	Materials           []int  `json:"materials,omitempty"`
}

// GameObject carries the flags glTF nodes have no field for.
type GameObject struct {
	IsActive bool   `json:"isActive"`
	IsStatic bool   `json:"isStatic,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Layer    int    `json:"layer,omitempty"`
}

// ColliderType is the shape tag of a collider record.
type ColliderType string

// Collider shapes.
const (
	ColliderBox     ColliderType = "Box"
	ColliderCapsule ColliderType = "Capsule"
	ColliderSphere  ColliderType = "Sphere"
)

// Collider is a shape-tagged collider record. Center is stored in the
// glTF (Z-reversed) convention.
type Collider struct {
	Type      ColliderType `json:"type"`
	Enabled   bool         `json:"enabled"`
	IsTrigger bool         `json:"isTrigger"`
	Center    []float32    `json:"center,omitempty"`

	// Box
	Size []float32 `json:"size,omitempty"`

	// Capsule, Sphere
	Radius float32 `json:"radius,omitempty"`

	// Capsule
	Height    float32 `json:"height,omitempty"`
	Direction int     `json:"direction,omitempty"`

	PhysicMaterial *PhysicMaterial `json:"physicMaterial,omitempty"`
}

// PhysicMaterialCombine selects how two friction or bounce values combine.
type PhysicMaterialCombine int

// Combine modes.
const (
	CombineAverage  PhysicMaterialCombine = 0
	CombineMultiply PhysicMaterialCombine = 1
	CombineMinimum  PhysicMaterialCombine = 2
	CombineMaximum  PhysicMaterialCombine = 3
)

// PhysicMaterial is the physics surface attached to a collider.
type PhysicMaterial struct {
	DynamicFriction float32               `json:"dynamicFriction"`
	StaticFriction  float32               `json:"staticFriction"`
	Bounciness      float32               `json:"bounciness"`
	FrictionCombine PhysicMaterialCombine `json:"frictionCombine"`
	BounceCombine   PhysicMaterialCombine `json:"bounceCombine"`
}

// Rigidbody is the rigid body record attached to a node.
type Rigidbody struct {
	Mass                   float32 `json:"mass"`
	Drag                   float32 `json:"drag"`
	AngularDrag            float32 `json:"angularDrag"`
	UseGravity             bool    `json:"useGravity"`
	IsKinematic            bool    `json:"isKinematic"`
	Interpolation          int     `json:"interpolation,omitempty"`
	CollisionDetectionMode int     `json:"collisionDetectionMode,omitempty"`
	Constraints            int     `json:"constraints,omitempty"`
}
