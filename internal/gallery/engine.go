package gallery

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/engine/camera"
	"github.com/Faultbox/skybridge/internal/engine/picking"
	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/internal/logger"
)

// Config collects the tuning for every core component.
type Config struct {
	Fade       Fade
	Rig        RigConfig
	Ripple     RippleConfig
	ZoomButton uint8 // Pointer button that holds the zoom
	Width      int   // Initial viewport
	Height     int
}

// DefaultConfig returns the standard tuning with the right mouse button
// (SDL numbering) as the zoom button.
func DefaultConfig() Config {
	return Config{
		Fade:       DefaultFade(),
		Rig:        DefaultRigConfig(),
		Ripple:     DefaultRippleConfig(),
		ZoomButton: 3,
		Width:      1280,
		Height:     720,
	}
}

// ClickKind classifies what a click did.
type ClickKind uint8

const (
	// ClickMiss hit nothing.
	ClickMiss ClickKind = 1 << iota
	// ClickRipple spawned a ripple.
	ClickRipple
	// ClickCycle advanced a carousel.
	ClickCycle
)

// ClickResult describes the outcome of HandleClick.
type ClickResult struct {
	Kind   ClickKind
	Ripple *scene.Object // Spawned ripple, if any
	Group  *Group        // Cycled group, if any
}

// Engine routes input to the core components and runs the per-frame passes.
// All methods must be called from the render loop's goroutine.
type Engine struct {
	scene      *scene.Scene
	camera     *camera.Camera
	registry   *Registry
	dispatcher *picking.Dispatcher
	rig        *Rig
	ripples    *Ripples
	fade       Fade
	zoomButton uint8
	ready      bool
	log        *zap.Logger
}

// New wires the core around an already built scene.
func New(cfg Config, sc *scene.Scene, cam *camera.Camera, reg *Registry, companion *scene.Object) *Engine {
	if companion == nil {
		// Scroll still tilts something even if the drone model is missing.
		companion = scene.NewModel("companion", "", picking.AABB{})
	}
	cam.SetViewport(cfg.Width, cfg.Height)

	return &Engine{
		scene:      sc,
		camera:     cam,
		registry:   reg,
		dispatcher: picking.NewDispatcher(cam, cfg.Width, cfg.Height),
		rig:        NewRig(cfg.Rig, cam, companion),
		ripples:    NewRipples(cfg.Ripple, sc),
		fade:       cfg.Fade,
		zoomButton: cfg.ZoomButton,
		log:        logger.Named("gallery"),
	}
}

// HandleClick picks at a pointer position. A hit anywhere in the scene
// spawns a ripple; a hit on a carousel member also cycles its group.
func (e *Engine) HandleClick(x, y float32) ClickResult {
	var res ClickResult

	if hit, ok := picking.Pick(e.dispatcher, x, y, e.scene.Objects()); ok {
		res.Kind |= ClickRipple
		res.Ripple = e.ripples.Emit(hit.Point)
	}

	if hit, ok := picking.Pick(e.dispatcher, x, y, e.registry.Pickable()); ok {
		if g := e.registry.Cycle(hit.Target); g != nil {
			res.Kind |= ClickCycle
			res.Group = g
		}
	}

	if res.Kind == 0 {
		res.Kind = ClickMiss
	}
	return res
}

// HandleWheel applies a wheel event; only the sign of deltaY matters.
func (e *Engine) HandleWheel(deltaY float32) {
	switch {
	case deltaY > 0:
		e.rig.OnScroll(1)
	case deltaY < 0:
		e.rig.OnScroll(-1)
	default:
		e.rig.OnScroll(0)
	}
}

// HandleButton forwards presses and releases of the zoom button to the rig.
func (e *Engine) HandleButton(button uint8, pressed bool) {
	if button != e.zoomButton {
		return
	}
	if pressed {
		e.rig.ZoomIn()
	} else {
		e.rig.ZoomOut()
	}
}

// MarkReady records that every asynchronous load has finished.
func (e *Engine) MarkReady() {
	if e.ready {
		return
	}
	e.ready = true
	e.log.Info("scene ready")
}

// Ready reports whether MarkReady was called.
func (e *Engine) Ready() bool {
	return e.ready
}

// Begin starts the opening motion. It only runs once the scene is ready,
// and only the first time.
func (e *Engine) Begin() bool {
	if !e.ready {
		e.log.Debug("begin ignored, scene not ready")
		return false
	}
	return e.rig.BeginOpening()
}

// Resize updates the viewport used for picking and the camera aspect.
func (e *Engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.dispatcher.Resize(width, height)
	e.camera.SetViewport(width, height)
}

// Frame advances animations by dt seconds and then fades surfaces from the
// camera position they produced. Input for the frame must already be handled.
func (e *Engine) Frame(dt float32) {
	e.rig.Update(dt)
	e.ripples.Update(dt)
	e.fade.Apply(e.camera.Position, e.registry.Surfaces())
}

// Retune swaps in new tuning while running. Animations already in flight
// finish with the values they started with; the viewport is left alone.
func (e *Engine) Retune(cfg Config) {
	e.fade = cfg.Fade
	e.zoomButton = cfg.ZoomButton
	e.rig.cfg = cfg.Rig
	e.ripples.cfg = cfg.Ripple
	e.log.Info("tuning updated",
		zap.Float32("fadeStart", cfg.Fade.Start),
		zap.Float32("fadeEnd", cfg.Fade.End),
		zap.Float32("zBoundary", cfg.Rig.ZBoundary))
}

// Scene returns the scene graph.
func (e *Engine) Scene() *scene.Scene { return e.scene }

// Camera returns the active camera.
func (e *Engine) Camera() *camera.Camera { return e.camera }

// Registry returns the surface registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Rig returns the camera rig.
func (e *Engine) Rig() *Rig { return e.rig }

// Ripples returns the ripple emitter.
func (e *Engine) Ripples() *Ripples { return e.ripples }
