package scene

import (
	"github.com/Faultbox/skybridge/internal/engine/picking"
	"github.com/Faultbox/skybridge/pkg/math"
)

// Kind is the geometric kind of a scene object.
type Kind uint8

const (
	// KindPlane is a 1x1 quad on the local XY plane (image panels).
	KindPlane Kind = iota
	// KindDisc is a unit-radius circle on the local XY plane (ripples).
	KindDisc
	// KindModel is a loaded model, picked by its bounding box.
	KindModel
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindDisc:
		return "disc"
	case KindModel:
		return "model"
	default:
		return "unknown"
	}
}

// DiscSegments is the tessellation used when drawing discs.
const DiscSegments = 32

// Material holds the surface appearance of an object.
// Opacity is the only property animated at runtime.
type Material struct {
	Texture string     // Texture path, empty for flat color
	Color   [3]float32 // Tint (RGB)
	Opacity float32
}

// Object is a node in the scene.
type Object struct {
	ID   uint32
	Name string
	Kind Kind

	// Transform
	Position math.Vec3
	Rotation math.Vec3 // Euler angles (radians), XYZ order
	Scale    math.Vec3

	Material *Material
	Visible  bool

	// Source is the asset path for models.
	Source string
	// Bounds is the local bounding box used for picking models.
	Bounds picking.AABB
}

func newObject(name string, kind Kind, texture string) *Object {
	return &Object{
		Name:  name,
		Kind:  kind,
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
		Material: &Material{
			Texture: texture,
			Color:   [3]float32{1, 1, 1},
			Opacity: 1,
		},
		Visible: true,
	}
}

// NewPlane creates a visible image panel.
func NewPlane(name, texture string) *Object {
	return newObject(name, KindPlane, texture)
}

// NewDisc creates a visible flat white disc.
func NewDisc(name string) *Object {
	return newObject(name, KindDisc, "")
}

// NewModel creates a model placeholder with the given local bounds.
func NewModel(name, source string, bounds picking.AABB) *Object {
	o := newObject(name, KindModel, "")
	o.Source = source
	o.Bounds = bounds
	return o
}

// WorldMatrix returns the object's local-to-world transform.
func (o *Object) WorldMatrix() math.Mat4 {
	return math.Compose(o.Position, o.Rotation, o.Scale)
}

// IntersectRay implements picking.Intersector. Hidden objects are never hit.
func (o *Object) IntersectRay(r picking.Ray) (float32, bool) {
	if !o.Visible {
		return 0, false
	}

	switch o.Kind {
	case KindPlane:
		return r.IntersectShape(o.WorldMatrix(), picking.ShapeRect)
	case KindDisc:
		return r.IntersectShape(o.WorldMatrix(), picking.ShapeCircle)
	case KindModel:
		return r.IntersectAABB(picking.TransformAABB(o.Bounds, o.Position, o.Scale))
	}
	return 0, false
}
