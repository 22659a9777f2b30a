package camera

import (
	"testing"

	"github.com/Faultbox/skybridge/pkg/math"
)

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New(75, 16.0/9.0, 0.1, 1000)
	got := c.ViewMatrix().TransformPoint(math.Vec3{Z: -5})
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z+5) > 1e-5 {
		t.Errorf("point ahead in view space = %v, want (0, 0, -5)", got)
	}
}

func TestViewStaysValidOnTarget(t *testing.T) {
	c := New(75, 1, 0.1, 1000)
	c.LookAt(math.Vec3{})

	got := c.ViewMatrix().TransformPoint(math.Vec3{Z: -5})
	if abs(got.Z+5) > 1e-5 {
		t.Errorf("camera on its target: point ahead at %v, want z -5", got)
	}
}

func TestSetViewport(t *testing.T) {
	c := New(75, 1, 0.1, 1000)
	c.SetViewport(1280, 720)
	if c.Aspect != float32(1280)/float32(720) {
		t.Errorf("Aspect = %v, want %v", c.Aspect, float32(1280)/float32(720))
	}

	// Degenerate sizes (minimized window) keep the previous aspect.
	c.SetViewport(0, 0)
	if c.Aspect != float32(1280)/float32(720) {
		t.Errorf("Aspect changed on zero viewport: %v", c.Aspect)
	}
}

func TestProjectionFollowsFOV(t *testing.T) {
	c := New(75, 1, 0.1, 1000)
	wide := c.ProjectionMatrix()
	c.FOV = 55
	narrow := c.ProjectionMatrix()

	// A narrower field of view magnifies: the Y scale term grows.
	if narrow[5] <= wide[5] {
		t.Errorf("narrow fov scale %v should exceed wide fov scale %v", narrow[5], wide[5])
	}
}

func TestInverseViewProjectionUnprojectsCenter(t *testing.T) {
	c := New(75, 1, 1, 100)
	c.Position = math.Vec3{X: 0, Y: 0, Z: 10}
	c.LookAt(math.Vec3{})

	inv := c.InverseViewProjection()
	near := inv.MulVec4(math.Vec4{0, 0, -1, 1})
	p := math.Vec3{X: near[0] / near[3], Y: near[1] / near[3], Z: near[2] / near[3]}

	// The NDC center on the near plane sits one unit in front of the eye.
	if abs(p.X) > 0.01 || abs(p.Y) > 0.01 || abs(p.Z-9) > 0.01 {
		t.Errorf("unprojected near center = %v, want (0, 0, 9)", p)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
