// Package camera provides the perspective camera the scene is viewed through.
package camera

import "github.com/Faultbox/skybridge/pkg/math"

// Camera is a perspective camera that looks from Position towards Target.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3 // Look-at point
	Up       math.Vec3

	// Projection
	FOV    float32 // Vertical field of view (degrees)
	Aspect float32 // Width / height
	Near   float32
	Far    float32
}

// New creates a camera at the origin looking down -Z.
func New(fov, aspect, near, far float32) *Camera {
	return &Camera{
		Target: math.Vec3{Z: -1},
		Up:     math.Vec3{Y: 1},
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// LookAt retargets the camera to face the given world point.
func (c *Camera) LookAt(target math.Vec3) {
	c.Target = target
}

// SetViewport updates the aspect ratio from viewport dimensions.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for the current FOV.
// It is rebuilt on every call, so FOV animation needs no explicit refresh.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	fovRad := math.DegToRad(c.FOV)
	return math.Perspective(fovRad, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// InverseViewProjection returns the matrix that unprojects NDC back to world space.
func (c *Camera) InverseViewProjection() math.Mat4 {
	return c.ViewProjection().Inverse()
}
