// Package picking provides ray casting and object picking utilities.
package picking

import (
	"fmt"

	"github.com/Faultbox/skybridge/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Shape identifies a planar outline lying on the local z=0 plane.
type Shape int

const (
	// ShapeRect is a unit square centered on the origin (extent ±0.5).
	ShapeRect Shape = iota
	// ShapeCircle is a unit-radius circle centered on the origin.
	ShapeCircle
)

// NDC converts pixel coordinates to normalized device coordinates in [-1, 1],
// with Y pointing up.
//
// Pixel input must be finite and the viewport non-empty; anything else is a
// caller bug and panics.
func NDC(screenX, screenY float32, viewportW, viewportH int) math.Vec2 {
	if viewportW <= 0 || viewportH <= 0 {
		panic(fmt.Sprintf("picking: invalid viewport %dx%d", viewportW, viewportH))
	}
	if !finite(screenX) || !finite(screenY) {
		panic(fmt.Sprintf("picking: invalid pointer position (%v, %v)", screenX, screenY))
	}
	return math.Vec2{
		X: 2*screenX/float32(viewportW) - 1,
		Y: 1 - 2*screenY/float32(viewportH), // Flip Y
	}
}

// ScreenToRay converts screen coordinates to a world-space ray.
// invViewProj is the inverse of the camera's view-projection matrix.
func ScreenToRay(screenX, screenY float32, viewportW, viewportH int, invViewProj math.Mat4) Ray {
	ndc := NDC(screenX, screenY, viewportW, viewportH)
	return NDCToRay(ndc, invViewProj)
}

// NDCToRay unprojects a normalized device coordinate into a world-space ray
// starting on the near plane.
func NDCToRay(ndc math.Vec2, invViewProj math.Mat4) Ray {
	nearWorld := unproject(invViewProj, math.Vec4{ndc.X, ndc.Y, -1, 1})
	farWorld := unproject(invViewProj, math.Vec4{ndc.X, ndc.Y, 1, 1})

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

func unproject(invViewProj math.Mat4, p math.Vec4) math.Vec3 {
	w := invViewProj.MulVec4(p)
	if w[3] != 0 {
		return math.Vec3{X: w[0] / w[3], Y: w[1] / w[3], Z: w[2] / w[3]}
	}
	return math.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// IntersectShape intersects the ray with a planar shape drawn on the z=0 plane
// of the local space described by world. Only the front face, the side local
// +Z points to, is hit. Returns the world-space distance along the ray.
func (r Ray) IntersectShape(world math.Mat4, shape Shape) (t float32, hit bool) {
	inv := world.Inverse()
	localOrigin := inv.TransformPoint(r.Origin)
	localDir := inv.TransformDirection(r.Direction)

	if localDir.Z > -1e-6 {
		return 0, false // Parallel, or approaching the back face
	}

	// The affine map preserves the ray parameter, so s is also the world distance.
	s := -localOrigin.Z / localDir.Z
	if s < 0 {
		return 0, false // Plane behind ray origin
	}

	x := localOrigin.X + s*localDir.X
	y := localOrigin.Y + s*localDir.Y

	switch shape {
	case ShapeRect:
		if x < -0.5 || x > 0.5 || y < -0.5 || y > 0.5 {
			return 0, false
		}
	case ShapeCircle:
		if x*x+y*y > 1 {
			return 0, false
		}
	default:
		return 0, false
	}
	return s, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math.MaxFloat)
	tmax := float32(math.MaxFloat)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates an AABB from two corners, handling negative scales.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// TransformAABB moves a local box into world space by position and scale.
func TransformAABB(local AABB, position, scale math.Vec3) AABB {
	return NewAABB(
		math.Vec3{
			X: local.Min.X*scale.X + position.X,
			Y: local.Min.Y*scale.Y + position.Y,
			Z: local.Min.Z*scale.Z + position.Z,
		},
		math.Vec3{
			X: local.Max.X*scale.X + position.X,
			Y: local.Max.Y*scale.Y + position.Y,
			Z: local.Max.Z*scale.Z + position.Z,
		},
	)
}

func finite(v float32) bool {
	return math.IsFinite(v)
}
