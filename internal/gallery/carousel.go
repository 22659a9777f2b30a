// Package gallery implements the interaction and presentation core of the
// explorable scene: carousel groups of image panels, distance fading, the
// scroll-driven camera rig, click ripples and the dispatch that ties them to
// pointer input.
package gallery

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/internal/logger"
)

// Group is a carousel: an ordered set of surfaces sharing one visibility slot.
// The first member is always the only visible one.
type Group struct {
	name    string
	members []*scene.Object
}

// NewGroup creates a group from surfaces in cycle order and shows the first.
func NewGroup(name string, members ...*scene.Object) *Group {
	g := &Group{name: name}
	g.members = append(g.members, members...)
	g.reveal()
	return g
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Add appends a surface to the end of the cycle.
func (g *Group) Add(s *scene.Object) {
	if g.Contains(s) {
		return
	}
	g.members = append(g.members, s)
	g.reveal()
}

// Members returns the surfaces in current cycle order.
func (g *Group) Members() []*scene.Object {
	out := make([]*scene.Object, len(g.members))
	copy(out, g.members)
	return out
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// Visible returns the member currently shown, or nil for an empty group.
func (g *Group) Visible() *scene.Object {
	if len(g.members) == 0 {
		return nil
	}
	return g.members[0]
}

// Index returns the position of s in the cycle, or -1.
func (g *Group) Index(s *scene.Object) int {
	for i, m := range g.members {
		if m == s {
			return i
		}
	}
	return -1
}

// Contains reports whether s is a member.
func (g *Group) Contains(s *scene.Object) bool {
	return g.Index(s) >= 0
}

// Cycle moves hit to the back of the line and shows whichever member is now
// first. Picking the visible member therefore advances to the next one.
// Returns false, changing nothing, if hit is not a member.
func (g *Group) Cycle(hit *scene.Object) bool {
	i := g.Index(hit)
	if i < 0 {
		return false
	}

	g.members = append(g.members[:i], g.members[i+1:]...)
	hit.Visible = false
	g.members = append(g.members, hit)
	g.reveal()

	logger.Debug("carousel cycled",
		zap.String("group", g.name),
		zap.String("picked", hit.Name),
		zap.String("visible", g.members[0].Name))
	return true
}

// reveal shows index 0 and hides everything else.
func (g *Group) reveal() {
	for i, m := range g.members {
		m.Visible = i == 0
	}
}
