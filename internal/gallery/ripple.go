package gallery

import (
	"fmt"

	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/internal/engine/tween"
	"github.com/Faultbox/skybridge/pkg/math"
)

// RippleConfig holds ripple animation tuning.
type RippleConfig struct {
	Duration float32 // Seconds
	MaxScale float32
}

// DefaultRippleConfig returns the standard ripple tuning.
func DefaultRippleConfig() RippleConfig {
	return RippleConfig{Duration: 1, MaxScale: 10}
}

// Ripples spawns expanding, fading discs at picked points.
type Ripples struct {
	cfg    RippleConfig
	scene  *scene.Scene
	tweens *tween.Manager

	// live maps each ripple's scale property to the ripple; the scale
	// completion is what removes it.
	live  map[*float32]*scene.Object
	count int
}

// NewRipples creates an emitter that adds ripples to sc.
func NewRipples(cfg RippleConfig, sc *scene.Scene) *Ripples {
	return &Ripples{
		cfg:    cfg,
		scene:  sc,
		tweens: tween.New(),
		live:   make(map[*float32]*scene.Object),
	}
}

// Emit places a ripple flat on the ground plane at point and starts its
// scale and fade animations side by side.
func (rp *Ripples) Emit(point math.Vec3) *scene.Object {
	rp.count++
	disc := scene.NewDisc(fmt.Sprintf("ripple-%d", rp.count))
	disc.Position = point
	disc.Rotation.X = -math.Pi / 2
	rp.scene.Add(disc)

	rp.tweens.To(&disc.Scale.X, rp.cfg.MaxScale, rp.cfg.Duration, tween.EaseOut, disc.Name)
	rp.tweens.To(&disc.Scale.Y, rp.cfg.MaxScale, rp.cfg.Duration, tween.EaseOut, disc.Name)
	rp.tweens.To(&disc.Material.Opacity, 0, rp.cfg.Duration, tween.EaseOut, disc.Name)
	rp.live[&disc.Scale.X] = disc

	return disc
}

// Update advances ripple animations and removes ripples whose scale
// animation finished.
func (rp *Ripples) Update(dt float32) {
	for _, d := range rp.tweens.Update(dt) {
		disc, ok := rp.live[d.Target]
		if !ok {
			continue
		}
		delete(rp.live, d.Target)
		rp.scene.Remove(disc)
	}
}

// Live returns the number of ripples still in the scene.
func (rp *Ripples) Live() int {
	return len(rp.live)
}
