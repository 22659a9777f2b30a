package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func writeFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/images/sky.png", pngHeader)

	m := NewManager(root)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"relative", "assets/images/sky.png", nil},
		{"web style", "/assets/images/sky.png", nil},
		{"missing", "assets/images/none.png", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := m.Load(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(data) != len(pngHeader) {
				t.Errorf("got %d bytes, want %d", len(data), len(pngHeader))
			}
		})
	}
}

func TestLoadCaches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.bin", []byte("one"))
	m := NewManager(root)

	if _, err := m.Load("a.bin"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Changing the file on disk must not affect the cached copy.
	writeFile(t, root, "a.bin", []byte("two"))
	data, _ := m.Load("a.bin")
	if string(data) != "one" {
		t.Errorf("got %q, want cached %q", data, "one")
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses; want 1, 1", hits, misses)
	}

	m.Close()
	data, _ = m.Load("a.bin")
	if string(data) != "two" {
		t.Errorf("after Close got %q, want %q", data, "two")
	}
}

func TestRootPriority(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()
	writeFile(t, base, "x.txt", []byte("base"))
	writeFile(t, override, "x.txt", []byte("override"))

	m := NewManager(base)
	if err := m.AddRoot(override); err != nil {
		t.Fatalf("AddRoot: %v", err)
	}

	data, err := m.Load("x.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "override" {
		t.Errorf("got %q, want override", data)
	}
}

func TestAddRootRejectsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file", []byte("x"))

	m := NewManager()
	if err := m.AddRoot(filepath.Join(root, "file")); err == nil {
		t.Error("expected error for a file root")
	}
	if err := m.AddRoot(filepath.Join(root, "missing")); err == nil {
		t.Error("expected error for a missing root")
	}
}

func TestLoadAsync(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "models/bridge.glb", []byte("glTF\x02\x00\x00\x00\x10\x00\x00\x00"))
	writeFile(t, root, "models/drone.glb", []byte("glTF\x02\x00\x00\x00\x10\x00\x00\x00"))
	m := NewManager(root)

	results := map[string]Result{}
	for r := range m.LoadAsync(context.Background(), 1, "models/bridge.glb", "models/drone.glb", "models/gone.glb") {
		results[r.Path] = r
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, p := range []string{"models/bridge.glb", "models/drone.glb"} {
		if results[p].Err != nil || !IsModel(results[p].Data) {
			t.Errorf("%s: err=%v model=%v", p, results[p].Err, IsModel(results[p].Data))
		}
	}
	if !errors.Is(results["models/gone.glb"].Err, ErrNotFound) {
		t.Errorf("gone.glb err = %v, want ErrNotFound", results["models/gone.glb"].Err)
	}
}

func TestLoadAsyncCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(t.TempDir())
	for r := range m.LoadAsync(ctx, 0, "a", "b") {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", r.Path, r.Err)
		}
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngHeader, "image/png"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'}, "image/jpeg"},
		{"glb", []byte("glTF\x02\x00\x00\x00\x10\x00\x00\x00"), "model/gltf-binary"},
		{"text", []byte("hello world"), ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.data); got != tt.want {
				t.Errorf("Sniff() = %q, want %q", got, tt.want)
			}
		})
	}

	if !IsImage(pngHeader) {
		t.Error("IsImage(png) = false")
	}
}
