package scene

import (
	"testing"

	"github.com/Faultbox/skybridge/internal/engine/picking"
	"github.com/Faultbox/skybridge/pkg/math"
)

func TestBuildDrawList(t *testing.T) {
	near := NewPlane("near", "")
	near.Position = math.Vec3{Z: -5}
	far := NewPlane("far", "")
	far.Position = math.Vec3{Z: -50}
	faded := NewPlane("faded", "")
	faded.Material.Opacity = 0
	hidden := NewPlane("hidden", "")
	hidden.Visible = false
	ripple := NewDisc("ripple")
	ripple.Position = math.Vec3{Z: -20}
	ripple.Material.Opacity = 0.4
	bridge := NewModel("bridge", "bridge.glb", picking.AABB{})

	dl := BuildDrawList([]*Object{near, faded, bridge, far, hidden, ripple}, math.Vec3{})

	if len(dl.Opaque) != 1 || dl.Opaque[0] != bridge {
		t.Errorf("opaque = %v, want [bridge]", names(dl.Opaque))
	}
	want := []string{"far", "ripple", "near"}
	got := names(dl.Blended)
	if len(got) != len(want) {
		t.Fatalf("blended = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("blended = %v, want %v", got, want)
			break
		}
	}
}

func names(objs []*Object) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.Name
	}
	return out
}
