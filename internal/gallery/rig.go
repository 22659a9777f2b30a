package gallery

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/engine/camera"
	"github.com/Faultbox/skybridge/internal/engine/event"
	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/internal/engine/tween"
	"github.com/Faultbox/skybridge/internal/logger"
	"github.com/Faultbox/skybridge/pkg/math"
)

// Tween tags owned by the rig.
const (
	tagTilt       = "rig.tilt"
	tagZoom       = "rig.zoom"
	tagOverlayIn  = "rig.overlay.in"
	tagOverlayOut = "rig.overlay.out"
	tagOpening    = "rig.opening"
)

// RigConfig holds the camera rig tuning.
type RigConfig struct {
	ZBoundary       float32   // Forward scroll stops once camera z reaches this
	LookAt          math.Vec3 // Retargeted after every scroll step
	Tilt            float32   // Companion x-rotation magnitude while scrolling
	TiltDuration    float32   // Seconds
	ZoomDeltaFOV    float32   // Degrees subtracted while zoomed
	ZoomDuration    float32   // Seconds, for both fov and overlay fades
	OverlayOpacity  float32   // Overlay opacity while zoomed
	OpeningTarget   math.Vec3 // Camera position at the end of the opening
	OpeningLookAt   math.Vec3 // Look-at point held during the opening
	OpeningDuration float32   // Seconds
}

// DefaultRigConfig returns the standard rig tuning.
func DefaultRigConfig() RigConfig {
	return RigConfig{
		ZBoundary:       -186,
		LookAt:          math.Vec3{},
		Tilt:            0.6,
		TiltDuration:    0.5,
		ZoomDeltaFOV:    20,
		ZoomDuration:    0.5,
		OverlayOpacity:  0.5,
		OpeningTarget:   math.Vec3{X: 18, Y: 8, Z: 8},
		OpeningLookAt:   math.Vec3{X: 0, Y: 0, Z: -1},
		OpeningDuration: 2,
	}
}

// OverlayState is the zoom overlay as the HUD layer should present it.
type OverlayState struct {
	Visible bool
	Opacity float32
}

// openingPhase tracks the one-shot opening motion.
type openingPhase uint8

const (
	openingIdle openingPhase = iota
	openingRunning
	openingDone
)

// Rig couples scroll input to camera travel and the companion drone's tilt,
// and owns the zoom and opening animations.
type Rig struct {
	cfg       RigConfig
	camera    *camera.Camera
	companion *scene.Object
	tweens    *tween.Manager
	log       *zap.Logger

	zoomed  bool
	restFOV float32

	overlay OverlayState
	opening openingPhase

	// OverlayChanged fires when the overlay is shown (zoom in) and when it is
	// hidden after the zoom-out fade completes.
	OverlayChanged event.Event[OverlayState]
}

// NewRig creates a rig driving cam and companion.
func NewRig(cfg RigConfig, cam *camera.Camera, companion *scene.Object) *Rig {
	return &Rig{
		cfg:       cfg,
		camera:    cam,
		companion: companion,
		tweens:    tween.New(),
		log:       logger.Named("rig"),
		restFOV:   cam.FOV,
	}
}

// OnScroll applies one wheel tick. deltaSign is the sign of the wheel delta;
// other values are reduced to their sign.
//
// The camera and companion move together unless the camera has reached the
// boundary and the tick pushes further forward. The companion tilt animates
// on every tick regardless.
func (r *Rig) OnScroll(deltaSign int) {
	step := float32(sign(deltaSign))

	if r.camera.Position.Z > r.cfg.ZBoundary || step < 0 {
		r.camera.Position.Z -= step
		r.companion.Position.Z -= step
		r.camera.LookAt(r.cfg.LookAt)
	} else {
		r.log.Debug("scroll clamped", zap.Float32("z", r.camera.Position.Z))
	}

	target := r.cfg.Tilt
	if step > 0 {
		target = -r.cfg.Tilt
	}
	r.tweens.To(&r.companion.Rotation.X, target, r.cfg.TiltDuration, tween.EaseOut, tagTilt)
}

// ZoomIn narrows the field of view and fades the overlay in.
// Does nothing while already zoomed.
func (r *Rig) ZoomIn() {
	if r.zoomed {
		return
	}
	r.zoomed = true

	r.restFOV = r.camera.FOV
	r.tweens.To(&r.camera.FOV, r.restFOV-r.cfg.ZoomDeltaFOV, r.cfg.ZoomDuration, tween.EaseOut, tagZoom)

	r.overlay.Visible = true
	r.tweens.To(&r.overlay.Opacity, r.cfg.OverlayOpacity, r.cfg.ZoomDuration, tween.EaseOut, tagOverlayIn)
	r.OverlayChanged.Publish(r.overlay)

	r.log.Debug("zoom in", zap.Float32("restFOV", r.restFOV))
}

// ZoomOut restores the field of view and fades the overlay out; the overlay
// is hidden once the fade completes. Does nothing unless zoomed.
func (r *Rig) ZoomOut() {
	if !r.zoomed {
		return
	}
	r.zoomed = false

	r.tweens.To(&r.camera.FOV, r.restFOV, r.cfg.ZoomDuration, tween.EaseOut, tagZoom)
	r.tweens.To(&r.overlay.Opacity, 0, r.cfg.ZoomDuration, tween.EaseOut, tagOverlayOut)

	r.log.Debug("zoom out", zap.Float32("restFOV", r.restFOV))
}

// BeginOpening starts the scripted fly-in. It runs at most once per rig;
// later calls return false.
func (r *Rig) BeginOpening() bool {
	if r.opening != openingIdle {
		return false
	}
	r.opening = openingRunning
	r.tweens.ToVec3(&r.camera.Position, r.cfg.OpeningTarget, r.cfg.OpeningDuration, tween.EaseOut, tagOpening)
	r.camera.LookAt(r.cfg.OpeningLookAt)

	r.log.Info("opening motion started")
	return true
}

// Update advances the rig animations by dt seconds.
func (r *Rig) Update(dt float32) {
	for _, d := range r.tweens.Update(dt) {
		if d.Tag == tagOverlayOut {
			r.overlay.Visible = false
			r.OverlayChanged.Publish(r.overlay)
		}
	}

	if r.opening == openingRunning {
		r.camera.LookAt(r.cfg.OpeningLookAt)
		if !r.tweens.Running(tagOpening) {
			r.opening = openingDone
			r.log.Info("opening motion finished")
		}
	}
}

// Zoomed reports whether a zoom request is active.
func (r *Rig) Zoomed() bool {
	return r.zoomed
}

// Overlay returns the current overlay state.
func (r *Rig) Overlay() OverlayState {
	return r.overlay
}

// Opening reports whether the opening motion is running and whether it ever started.
func (r *Rig) Opening() (running, started bool) {
	return r.opening == openingRunning, r.opening != openingIdle
}

// Animating reports whether any rig tween is in flight.
func (r *Rig) Animating() bool {
	return r.tweens.Len() > 0
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
