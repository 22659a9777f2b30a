package scenefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/pkg/math"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if err := l.Validate(); err != nil {
		t.Fatalf("default layout invalid: %v", err)
	}

	wantGroups := map[string]int{"project": 2, "liveProject": 2, "cert": 7}
	for _, g := range l.Groups {
		if wantGroups[g.Name] != len(g.Textures) {
			t.Errorf("group %s has %d textures, want %d", g.Name, len(g.Textures), wantGroups[g.Name])
		}
	}
	if len(l.Images) != 5 {
		t.Errorf("got %d freestanding images, want 5", len(l.Images))
	}
	if got := len(l.Awaited()); got != DefaultExpectedLoads {
		t.Errorf("Awaited() = %d, want %d", got, DefaultExpectedLoads)
	}
	// background + 11 group images + 5 freestanding
	if got := len(l.Textures()); got != 17 {
		t.Errorf("Textures() = %d, want 17", got)
	}
}

func TestBuild(t *testing.T) {
	b, err := Build(DefaultLayout())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if b.Scene.Len() != 4+11+5 {
		t.Errorf("scene has %d objects, want 20", b.Scene.Len())
	}
	if b.Companion == nil || b.Companion.Name != "drone" {
		t.Fatalf("companion = %v, want drone", b.Companion)
	}
	if b.Companion.Position != (math.Vec3{X: 4, Y: 8, Z: 18}) || b.Companion.Rotation.X != -0.6 {
		t.Errorf("drone placed at %v rot %v", b.Companion.Position, b.Companion.Rotation)
	}
	if b.Scene.Find("bridge").Scale != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Error("zero model scale should become 1")
	}

	cert := b.Registry.Group("cert")
	if cert == nil || cert.Len() != 7 {
		t.Fatalf("cert group = %v", cert)
	}
	for i, m := range cert.Members() {
		if m.Visible != (i == 0) {
			t.Errorf("cert member %d visible = %v", i, m.Visible)
		}
		if m.Position != (math.Vec3{X: 18, Y: 8, Z: -146}) {
			t.Errorf("cert member %d at %v", i, m.Position)
		}
		if m.Scale != (math.Vec3{X: 18, Y: 9, Z: 5}) {
			t.Errorf("cert member %d scale %v", i, m.Scale)
		}
	}

	if len(b.Registry.Pickable()) != 11 {
		t.Errorf("Pickable() = %d, want 11", len(b.Registry.Pickable()))
	}
	if len(b.Registry.Surfaces()) != 16 {
		t.Errorf("Surfaces() = %d, want 16", len(b.Registry.Surfaces()))
	}
	for _, s := range b.Registry.Surfaces() {
		if s.Kind != scene.KindPlane || !b.Scene.Contains(s) {
			t.Errorf("surface %s not a plane in the scene", s.Name)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"unnamed group", func(l *Layout) { l.Groups[0].Name = "" }},
		{"duplicate group", func(l *Layout) { l.Groups[1].Name = l.Groups[0].Name }},
		{"empty group", func(l *Layout) { l.Groups[2].Textures = nil }},
		{"two companions", func(l *Layout) { l.Models[0].Companion = true }},
		{"inverted bounds", func(l *Layout) { l.Models[2].Bounds = [2]Vec{{1, 1, 1}, {0, 0, 0}} }},
		{"unnamed model", func(l *Layout) { l.Models[3].Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(l)
			if err := l.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
			if _, err := Build(l); err == nil {
				t.Error("Build() accepted an invalid layout")
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := DefaultLayout()
	c := orig.Clone()

	c.Groups[0].Textures[0] = "changed.png"
	c.Models[1].Position[0] = 99

	if orig.Groups[0].Textures[0] == "changed.png" {
		t.Error("clone shares group textures")
	}
	if orig.Models[1].Position[0] == 99 {
		t.Error("clone shares model positions")
	}
	if c.Panel != orig.Panel {
		t.Error("panel style not copied")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "layout"+ext)
			orig := DefaultLayout()
			if err := orig.SaveTo(path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}

			l, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(l.Groups) != 3 || l.Groups[2].Name != "cert" || len(l.Groups[2].Textures) != 7 {
				t.Errorf("groups did not survive: %+v", l.Groups)
			}
			if l.Panel != orig.Panel {
				t.Errorf("panel = %+v, want %+v", l.Panel, orig.Panel)
			}
			if l.Models[1].Position != orig.Models[1].Position || !l.Models[1].Companion {
				t.Errorf("drone = %+v", l.Models[1])
			}

			b, err := Build(l)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if b.Registry.Group("liveProject").Len() != 2 {
				t.Error("liveProject group lost members")
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	src := `
background: sky.jpg
panel:
  x: 0
  y: 2
  rotation: [0, 0, 0]
  scale: [4, 3, 1]
groups:
  - name: gallery
    z: -10
    textures: [a.png, b.png, c.png]
images:
  - name: intro
    texture: intro.png
    z: -5
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := Build(l)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Companion != nil {
		t.Error("layout without models should have no companion")
	}
	g := b.Registry.Group("gallery")
	if g == nil || g.Len() != 3 || g.Visible().Name != "gallery-1" {
		t.Fatalf("gallery group = %+v", g)
	}
	if g.Visible().Position != (math.Vec3{Y: 2, Z: -10}) {
		t.Errorf("panel at %v", g.Visible().Position)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("groups: [unterminated"), 0644)
	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("groups:\n  - name: empty\n    z: 1\n"), 0644)

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad, invalid} {
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%s) = nil error", filepath.Base(path))
		}
	}
}

func TestReadyCounter(t *testing.T) {
	c := NewReadyCounter(2)
	fired := 0
	c.Ready.Subscribe(func(n int) { fired++ })

	if c.Done("bridge") {
		t.Error("ready after one of two loads")
	}
	if c.Done("bridge") {
		t.Error("duplicate report counted")
	}
	if c.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", c.Remaining())
	}
	if !c.Done("drone") {
		t.Error("second load did not make the scene ready")
	}
	c.Done("pelican")

	if !c.IsReady() || fired != 1 {
		t.Errorf("IsReady=%v fired=%d, want true/1", c.IsReady(), fired)
	}
}

func TestDefaultLayoutReadyWaitsForEveryModel(t *testing.T) {
	l := DefaultLayout()
	awaited := l.Awaited()
	if len(awaited) != len(l.Models) {
		t.Fatalf("Awaited() = %v, want every model source", awaited)
	}

	c := NewReadyCounter(len(awaited))
	for i, src := range awaited {
		ready := c.Done(src)
		if last := i == len(awaited)-1; ready != last {
			t.Errorf("Done(%s) = %v after %d of %d loads", src, ready, i+1, len(awaited))
		}
	}
}

func TestReadyCounterNothingToWait(t *testing.T) {
	if !NewReadyCounter(0).IsReady() {
		t.Error("counter with no expected loads should start ready")
	}
}

func TestAwaitedDistinct(t *testing.T) {
	l := DefaultLayout()
	l.Models = append(l.Models, Model{Name: "bridge-copy", Source: l.Models[0].Source, Await: true})

	if got := len(l.Awaited()); got != DefaultExpectedLoads {
		t.Errorf("Awaited() = %d, want %d with a shared source", got, DefaultExpectedLoads)
	}
}
