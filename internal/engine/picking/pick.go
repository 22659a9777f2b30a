package picking

import (
	"github.com/Faultbox/skybridge/internal/engine/camera"
	"github.com/Faultbox/skybridge/pkg/math"
)

// Intersector is anything a pick ray can hit.
type Intersector interface {
	// IntersectRay returns the distance along r to the first hit.
	IntersectRay(r Ray) (t float32, hit bool)
}

// Hit is the result of a successful pick.
type Hit[T Intersector] struct {
	Target   T
	Point    math.Vec3 // World-space hit point
	Distance float32
}

// Nearest returns the candidate hit closest to the ray origin.
// Candidates at equal distance resolve to the earlier one in the slice.
func Nearest[T Intersector](r Ray, candidates []T) (Hit[T], bool) {
	var best Hit[T]
	found := false

	for _, c := range candidates {
		t, ok := c.IntersectRay(r)
		if !ok {
			continue
		}
		if !found || t < best.Distance {
			best = Hit[T]{Target: c, Distance: t}
			found = true
		}
	}

	if found {
		best.Point = r.At(best.Distance)
	}
	return best, found
}

// Dispatcher turns pointer positions into rays against the active camera.
type Dispatcher struct {
	camera *camera.Camera
	width  int
	height int
}

// NewDispatcher creates a dispatcher for the given camera and viewport size.
func NewDispatcher(cam *camera.Camera, width, height int) *Dispatcher {
	return &Dispatcher{camera: cam, width: width, height: height}
}

// Resize updates the viewport used to normalize pointer positions.
func (d *Dispatcher) Resize(width, height int) {
	d.width = width
	d.height = height
}

// Viewport returns the current viewport size.
func (d *Dispatcher) Viewport() (width, height int) {
	return d.width, d.height
}

// Ray builds the pick ray for a pointer position in pixels.
func (d *Dispatcher) Ray(screenX, screenY float32) Ray {
	return ScreenToRay(screenX, screenY, d.width, d.height, d.camera.InverseViewProjection())
}

// Pick casts a ray through the pointer position and returns the nearest candidate hit.
// An empty candidate set yields no hit.
func Pick[T Intersector](d *Dispatcher, screenX, screenY float32, candidates []T) (Hit[T], bool) {
	if len(candidates) == 0 {
		return Hit[T]{}, false
	}
	return Nearest(d.Ray(screenX, screenY), candidates)
}
