package scenefile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/engine/picking"
	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/internal/gallery"
	"github.com/Faultbox/skybridge/internal/logger"
	"github.com/Faultbox/skybridge/pkg/math"
)

// Built is the result of Build.
type Built struct {
	Scene     *scene.Scene
	Registry  *gallery.Registry
	Companion *scene.Object // nil when the layout marks none
}

// Build creates the scene graph and the surface registry for a layout.
// Models are added first, then group panels in group order, then
// freestanding panels.
func Build(l *Layout) (*Built, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	b := &Built{
		Scene:    scene.New(),
		Registry: gallery.NewRegistry(),
	}
	b.Scene.Background = l.Background

	for _, m := range l.Models {
		obj := scene.NewModel(m.Name, m.Source, picking.NewAABB(m.Bounds[0].Vec3(), m.Bounds[1].Vec3()))
		obj.Position = m.Position.Vec3()
		obj.Rotation = m.Rotation.Vec3()
		if m.Scale != (Vec{}) {
			obj.Scale = m.Scale.Vec3()
		}
		b.Scene.Add(obj)
		if m.Companion {
			b.Companion = obj
		}
	}

	for _, g := range l.Groups {
		for i, tex := range g.Textures {
			panel := newPanel(l.Panel, fmt.Sprintf("%s-%d", g.Name, i+1), tex, g.Z)
			b.Scene.Add(panel)
			b.Registry.Register(g.Name, panel)
		}
	}

	for _, img := range l.Images {
		panel := newPanel(l.Panel, img.Name, img.Texture, img.Z)
		b.Scene.Add(panel)
		b.Registry.AddFreestanding(panel)
	}

	logger.Info("scene built",
		zap.Int("objects", b.Scene.Len()),
		zap.Int("groups", len(b.Registry.Groups())),
		zap.Int("freestanding", len(b.Registry.Freestanding())))

	return b, nil
}

func newPanel(style PanelStyle, name, texture string, z float32) *scene.Object {
	p := scene.NewPlane(name, texture)
	p.Position = math.Vec3{X: style.X, Y: style.Y, Z: z}
	p.Rotation = style.Rotation.Vec3()
	if style.Scale != (Vec{}) {
		p.Scale = style.Scale.Vec3()
	}
	return p
}
