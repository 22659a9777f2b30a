package gallery

import (
	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/pkg/math"
)

// Default fade distances in world units.
const (
	DefaultFadeStart = 22
	DefaultFadeEnd   = 26
)

// Fade maps camera distance to surface opacity: fully opaque up to Start,
// fully transparent from End, linear in between.
type Fade struct {
	Start float32
	End   float32
}

// DefaultFade returns the standard fade band.
func DefaultFade() Fade {
	return Fade{Start: DefaultFadeStart, End: DefaultFadeEnd}
}

// Opacity returns the opacity for a surface at the given distance.
func (f Fade) Opacity(distance float32) float32 {
	switch {
	case distance <= f.Start:
		return 1
	case distance >= f.End:
		return 0
	}
	return 1 - (distance-f.Start)/(f.End-f.Start)
}

// Apply writes the opacity of every surface from its distance to eye.
// Visibility is left alone.
func (f Fade) Apply(eye math.Vec3, surfaces []*scene.Object) {
	for _, s := range surfaces {
		s.Material.Opacity = f.Opacity(eye.Distance(s.Position))
	}
}
