// Package scenefile describes the explorable scene as data and builds it.
//
// A layout lists the carousel groups, the freestanding images and the
// models. Layouts are read from YAML or TOML; DefaultLayout is the built-in
// portfolio scene.
package scenefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/skybridge/pkg/math"
)

// Vec is a three-component vector written as a list: [x, y, z].
type Vec [3]float32

// Vec3 converts v for the scene graph.
func (v Vec) Vec3() math.Vec3 {
	return math.V3([3]float32(v))
}

// PanelStyle is the placement shared by every image panel. Each panel only
// chooses its depth.
type PanelStyle struct {
	X        float32 `yaml:"x" toml:"x"`
	Y        float32 `yaml:"y" toml:"y"`
	Rotation Vec     `yaml:"rotation" toml:"rotation"`
	Scale    Vec     `yaml:"scale" toml:"scale"`
}

// Group is a carousel: several images stacked at one depth, one shown at a time.
type Group struct {
	Name     string   `yaml:"name" toml:"name"`
	Z        float32  `yaml:"z" toml:"z"`
	Textures []string `yaml:"textures" toml:"textures"`
}

// Image is a freestanding panel. It fades with distance but never cycles.
type Image struct {
	Name    string  `yaml:"name" toml:"name"`
	Texture string  `yaml:"texture" toml:"texture"`
	Z       float32 `yaml:"z" toml:"z"`
}

// Model is a loaded model, picked by its bounding box.
type Model struct {
	Name     string `yaml:"name" toml:"name"`
	Source   string `yaml:"source" toml:"source"`
	Position Vec    `yaml:"position" toml:"position"`
	Rotation Vec    `yaml:"rotation" toml:"rotation"`
	Scale    Vec    `yaml:"scale,omitempty" toml:"scale,omitempty"` // Zero means 1
	// Bounds is the local box as [min, max].
	Bounds [2]Vec `yaml:"bounds" toml:"bounds"`
	// Companion marks the model that follows the camera on scroll.
	Companion bool `yaml:"companion,omitempty" toml:"companion,omitempty"`
	// Await counts the model toward scene readiness.
	Await bool `yaml:"await,omitempty" toml:"await,omitempty"`
}

// Layout is a complete scene description.
type Layout struct {
	Background string     `yaml:"background" toml:"background"`
	Panel      PanelStyle `yaml:"panel" toml:"panel"`
	Groups     []Group    `yaml:"groups" toml:"groups"`
	Images     []Image    `yaml:"images" toml:"images"`
	Models     []Model    `yaml:"models" toml:"models"`
}

// DefaultLayout returns the built-in portfolio scene.
func DefaultLayout() *Layout {
	pelicanBounds := [2]Vec{{-2, -1, -3}, {2, 1, 3}}

	return &Layout{
		Background: "assets/images/world/textures/skyTexture.jpg",
		Panel: PanelStyle{
			X:        18,
			Y:        8,
			Rotation: Vec{0, math.Pi, 0},
			Scale:    Vec{18, 9, 5},
		},
		Groups: []Group{
			{Name: "project", Z: -86, Textures: []string{
				"assets/images/portfolio/project/project1.png",
				"assets/images/portfolio/project/project2.png",
			}},
			{Name: "liveProject", Z: -106, Textures: []string{
				"assets/images/portfolio/liveProject/liveProject1.png",
				"assets/images/portfolio/liveProject/liveProject2.png",
			}},
			{Name: "cert", Z: -146, Textures: []string{
				"assets/images/portfolio/cert/cert1.png",
				"assets/images/portfolio/cert/cert2.png",
				"assets/images/portfolio/cert/cert3.png",
				"assets/images/portfolio/cert/cert4.png",
				"assets/images/portfolio/cert/cert5.png",
				"assets/images/portfolio/cert/cert6.png",
				"assets/images/portfolio/cert/cert7.png",
			}},
		},
		Images: []Image{
			{Name: "aboutMe1", Texture: "assets/images/portfolio/aboutMe/aboutMe1.png", Z: -25},
			{Name: "aboutMe2", Texture: "assets/images/portfolio/aboutMe/aboutMe2.png", Z: -45},
			{Name: "aboutMe3", Texture: "assets/images/portfolio/aboutMe/aboutMe3.png", Z: -66},
			{Name: "pcBuilding", Texture: "assets/images/portfolio/misc/pc_building.png", Z: -126},
			{Name: "aboutMe4", Texture: "assets/images/portfolio/aboutMe/aboutMe4.png", Z: -166},
		},
		Models: []Model{
			{
				Name:   "bridge",
				Source: "assets/models/bridge/bridge.glb",
				Bounds: [2]Vec{{-6, -3, -190}, {6, 0, 20}},
				Await:  true,
			},
			{
				Name:      "drone",
				Source:    "assets/models/drone/drone.glb",
				Position:  Vec{4, 8, 18},
				Rotation:  Vec{-0.6, 0, 0},
				Bounds:    [2]Vec{{-1, -0.4, -1}, {1, 0.4, 1}},
				Companion: true,
				Await:     true,
			},
			{
				Name:     "pelican_1",
				Source:   "assets/models/spacecrafts/pelican_1.glb",
				Position: Vec{-8, 2, -14},
				Rotation: Vec{0, -math.Pi / 1.5, 0},
				Scale:    Vec{2, 2, 2},
				Bounds:   pelicanBounds,
				Await:    true,
			},
			{
				Name:     "pelican_2",
				Source:   "assets/models/spacecrafts/pelican_2.glb",
				Position: Vec{-1, 24, -122},
				Rotation: Vec{0.6, math.Pi / 4, 0},
				Scale:    Vec{2, 2, 2},
				Bounds:   pelicanBounds,
				Await:    true,
			},
		},
	}
}

// Clone returns a deep copy of l.
func (l *Layout) Clone() *Layout {
	out := &Layout{}
	if err := copier.CopyWithOption(out, l, copier.Option{DeepCopy: true}); err != nil {
		// Both sides are the same type; copier only fails on mismatched kinds.
		panic(fmt.Sprintf("scenefile: clone layout: %v", err))
	}
	return out
}

// Textures returns every texture path the layout references, background
// first, without duplicates.
func (l *Layout) Textures() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	add(l.Background)
	for _, g := range l.Groups {
		for _, t := range g.Textures {
			add(t)
		}
	}
	for _, img := range l.Images {
		add(img.Texture)
	}
	return out
}

// Awaited returns the distinct model sources that count toward readiness.
func (l *Layout) Awaited() []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range l.Models {
		if m.Await && !seen[m.Source] {
			seen[m.Source] = true
			out = append(out, m.Source)
		}
	}
	return out
}

// Validate reports the first structural problem in the layout.
func (l *Layout) Validate() error {
	groups := make(map[string]bool)
	for i, g := range l.Groups {
		if g.Name == "" {
			return fmt.Errorf("group %d has no name", i)
		}
		if groups[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		groups[g.Name] = true
		if len(g.Textures) == 0 {
			return fmt.Errorf("group %q has no textures", g.Name)
		}
	}

	companions := 0
	for _, m := range l.Models {
		if m.Name == "" {
			return fmt.Errorf("model with source %q has no name", m.Source)
		}
		lo, hi := m.Bounds[0], m.Bounds[1]
		if lo[0] > hi[0] || lo[1] > hi[1] || lo[2] > hi[2] {
			return fmt.Errorf("model %q has inverted bounds", m.Name)
		}
		if m.Companion {
			companions++
		}
	}
	if companions > 1 {
		return fmt.Errorf("%d companion models, at most one allowed", companions)
	}
	return nil
}

// Load reads a layout file. The format follows the extension: .toml for
// TOML, anything else is parsed as YAML.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}

	l := &Layout{}
	if isTOML(path) {
		err = toml.Unmarshal(data, l)
	} else {
		err = yaml.Unmarshal(data, l)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", path, err)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return l, nil
}

// SaveTo writes the layout, choosing the format from the extension as Load does.
func (l *Layout) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(l)
	} else {
		data, err = yaml.Marshal(l)
	}
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating layout dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
