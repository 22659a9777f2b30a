package scene

import (
	"sort"

	"github.com/Faultbox/skybridge/pkg/math"
)

// DrawList splits the drawable objects of a scene for rendering: Opaque in
// scene order, Blended sorted back to front from the eye. Hidden and fully
// transparent objects are left out.
type DrawList struct {
	Opaque  []*Object
	Blended []*Object
}

// BuildDrawList sorts objects for a frame viewed from eye.
func BuildDrawList(objects []*Object, eye math.Vec3) DrawList {
	var dl DrawList
	for _, o := range objects {
		if !o.Visible || o.Material.Opacity <= 0 {
			continue
		}
		if o.Material.Opacity >= 1 && o.Kind == KindModel {
			dl.Opaque = append(dl.Opaque, o)
			continue
		}
		dl.Blended = append(dl.Blended, o)
	}

	sort.SliceStable(dl.Blended, func(i, j int) bool {
		return eye.Distance(dl.Blended[i].Position) > eye.Distance(dl.Blended[j].Position)
	})
	return dl
}
