package gallery

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/pkg/math"
)

func TestRippleLifecycle(t *testing.T) {
	sc := scene.New()
	rp := NewRipples(DefaultRippleConfig(), sc)

	point := math.Vec3{X: 1, Y: 2, Z: -30}
	disc := rp.Emit(point)

	if !sc.Contains(disc) {
		t.Fatal("ripple not added to scene")
	}
	if disc.Kind != scene.KindDisc {
		t.Errorf("kind = %v, want disc", disc.Kind)
	}
	if disc.Position != point {
		t.Errorf("position = %v, want %v", disc.Position, point)
	}
	if !near(disc.Rotation.X, -gomath.Pi/2) {
		t.Errorf("rotation x = %v, want -pi/2", disc.Rotation.X)
	}

	rp.Update(0.5)
	if !sc.Contains(disc) {
		t.Fatal("ripple removed before its duration")
	}
	if disc.Scale.X <= 1 || disc.Scale.X >= 10 {
		t.Errorf("mid scale = %v, want in (1, 10)", disc.Scale.X)
	}
	if disc.Scale.X != disc.Scale.Y {
		t.Errorf("scale x %v != y %v", disc.Scale.X, disc.Scale.Y)
	}
	if disc.Material.Opacity <= 0 || disc.Material.Opacity >= 1 {
		t.Errorf("mid opacity = %v, want in (0, 1)", disc.Material.Opacity)
	}

	rp.Update(0.6)
	if sc.Contains(disc) {
		t.Error("ripple still in scene after its duration")
	}
	if rp.Live() != 0 {
		t.Errorf("Live() = %d, want 0", rp.Live())
	}
}

func TestRipplesIndependent(t *testing.T) {
	sc := scene.New()
	rp := NewRipples(DefaultRippleConfig(), sc)

	first := rp.Emit(math.Vec3{})
	rp.Update(0.6)
	second := rp.Emit(math.Vec3{X: 3})

	if first.Name == second.Name {
		t.Errorf("ripples share name %q", first.Name)
	}
	if rp.Live() != 2 {
		t.Fatalf("Live() = %d, want 2", rp.Live())
	}

	rp.Update(0.5)
	if sc.Contains(first) || !sc.Contains(second) {
		t.Error("first ripple should be gone, second still live")
	}
}
