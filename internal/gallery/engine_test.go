package gallery

import (
	"testing"

	"github.com/Faultbox/skybridge/internal/engine/camera"
	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/pkg/math"
)

// newTestEngine builds a camera at the origin looking down -Z with an
// 800x600 viewport and a two-member group 10 units ahead.
func newTestEngine(t *testing.T) (*Engine, []*scene.Object) {
	t.Helper()

	sc := scene.New()
	reg := NewRegistry()
	members := panels("A", "B")
	for _, m := range members {
		m.Position = math.Vec3{Z: -10}
		m.Scale = math.Vec3{X: 4, Y: 3, Z: 1}
		sc.Add(m)
		reg.Register("project", m)
	}

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	cam := camera.New(75, 1, 0.1, 1000)
	return New(cfg, sc, cam, reg, nil), members
}

func TestHandleClickRippleAndCycle(t *testing.T) {
	e, members := newTestEngine(t)

	res := e.HandleClick(400, 300)
	if res.Kind != ClickRipple|ClickCycle {
		t.Fatalf("Kind = %b, want ripple|cycle", res.Kind)
	}
	if res.Group == nil || res.Group.Name() != "project" {
		t.Errorf("Group = %v, want project", res.Group)
	}
	if res.Ripple == nil || !near(res.Ripple.Position.Z, -10) {
		t.Errorf("ripple = %+v, want at z -10", res.Ripple)
	}
	if members[0].Visible || !members[1].Visible {
		t.Error("click on A should reveal B")
	}

	res = e.HandleClick(400, 300)
	if res.Kind&ClickCycle == 0 || !members[0].Visible {
		t.Error("second click should reveal A again")
	}
}

func TestHandleClickMiss(t *testing.T) {
	e, members := newTestEngine(t)

	res := e.HandleClick(0, 0)
	if res.Kind != ClickMiss {
		t.Errorf("Kind = %b, want miss", res.Kind)
	}
	if e.Ripples().Live() != 0 {
		t.Error("miss spawned a ripple")
	}
	if !members[0].Visible {
		t.Error("miss changed the carousel")
	}
}

func TestHandleClickNonCarouselSurface(t *testing.T) {
	sc := scene.New()
	wall := scene.NewPlane("wall", "")
	wall.Position = math.Vec3{Z: -5}
	wall.Scale = math.Vec3{X: 10, Y: 10, Z: 1}
	sc.Add(wall)

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	e := New(cfg, sc, camera.New(75, 1, 0.1, 1000), NewRegistry(), nil)

	res := e.HandleClick(400, 300)
	if res.Kind != ClickRipple {
		t.Errorf("Kind = %b, want ripple only", res.Kind)
	}
}

func TestHandleWheelAndButton(t *testing.T) {
	e, _ := newTestEngine(t)

	e.HandleWheel(53.0)
	e.Frame(1)
	if !near(e.Camera().Position.Z, -1) {
		t.Errorf("camera z = %v, want -1", e.Camera().Position.Z)
	}

	e.HandleButton(1, true)
	if e.Rig().Zoomed() {
		t.Error("left button must not zoom")
	}
	e.HandleButton(3, true)
	if !e.Rig().Zoomed() {
		t.Error("right button press should zoom")
	}
	e.HandleButton(3, false)
	if e.Rig().Zoomed() {
		t.Error("right button release should unzoom")
	}
}

func TestScrollOntoLookAtPointStillPicks(t *testing.T) {
	e, _ := newTestEngine(t)

	// Back one step, then forward again: the camera lands on the origin it looks at.
	e.HandleWheel(-1)
	e.HandleWheel(1)
	e.Frame(1)

	if e.Camera().Position != (math.Vec3{}) {
		t.Fatalf("camera at %v, want origin", e.Camera().Position)
	}
	res := e.HandleClick(400, 300)
	if res.Kind != ClickRipple|ClickCycle {
		t.Errorf("Kind = %b, want ripple|cycle on the panel ahead", res.Kind)
	}
}

func TestBeginRequiresReady(t *testing.T) {
	e, _ := newTestEngine(t)

	if e.Begin() {
		t.Fatal("Begin() before ready = true")
	}
	e.MarkReady()
	if !e.Begin() {
		t.Fatal("Begin() after ready = false")
	}
	if e.Begin() {
		t.Error("opening started twice")
	}
}

func TestFrameFadesSurfaces(t *testing.T) {
	e, members := newTestEngine(t)
	far := scene.NewPlane("far", "")
	far.Position = math.Vec3{Z: -24}
	e.Registry().AddFreestanding(far)

	e.Frame(0.016)
	if members[0].Material.Opacity != 1 {
		t.Errorf("near surface opacity = %v, want 1", members[0].Material.Opacity)
	}
	if far.Material.Opacity != 0.5 {
		t.Errorf("far surface opacity = %v, want 0.5", far.Material.Opacity)
	}
}

func TestResizeIgnoresInvalid(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Resize(0, 100)
	e.Resize(400, 400)
	if e.Camera().Aspect != 1 {
		t.Errorf("aspect = %v, want 1", e.Camera().Aspect)
	}
	if res := e.HandleClick(200, 200); res.Kind&ClickCycle == 0 {
		t.Error("center click after resize should hit the carousel")
	}
}

func TestRetune(t *testing.T) {
	e, _ := newTestEngine(t)
	far := scene.NewPlane("far", "")
	far.Position = math.Vec3{Z: -24}
	e.Registry().AddFreestanding(far)

	cfg := DefaultConfig()
	cfg.Fade = Fade{Start: 30, End: 40}
	cfg.Rig.ZBoundary = 0
	cfg.ZoomButton = 2
	e.Retune(cfg)

	e.Frame(0.016)
	if far.Material.Opacity != 1 {
		t.Errorf("opacity = %v, want 1 with the wider band", far.Material.Opacity)
	}

	e.HandleWheel(1)
	if e.Camera().Position.Z != 0 {
		t.Errorf("camera moved past the new boundary: z = %v", e.Camera().Position.Z)
	}

	e.HandleButton(2, true)
	if !e.Rig().Zoomed() {
		t.Error("retuned zoom button ignored")
	}
}
