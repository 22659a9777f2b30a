package gallery

import (
	"github.com/Faultbox/skybridge/internal/engine/scene"
)

// Registry tracks which surfaces take part in carousel picking and distance
// fading. Groups keep their creation order; freestanding surfaces are faded
// but never cycled.
type Registry struct {
	groups       []*Group
	byName       map[string]*Group
	freestanding []*scene.Object
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Group)}
}

// Register adds a surface to the named group, creating the group on first use.
// The first surface of a group is shown, later ones start hidden.
func (r *Registry) Register(group string, s *scene.Object) *Group {
	g, ok := r.byName[group]
	if !ok {
		g = NewGroup(group)
		r.groups = append(r.groups, g)
		r.byName[group] = g
	}
	g.Add(s)
	return g
}

// AddGroup registers a prebuilt group. A group whose name is already taken
// is merged into the existing one.
func (r *Registry) AddGroup(g *Group) *Group {
	if existing, ok := r.byName[g.Name()]; ok {
		for _, m := range g.Members() {
			existing.Add(m)
		}
		return existing
	}
	r.groups = append(r.groups, g)
	r.byName[g.Name()] = g
	return g
}

// AddFreestanding registers an always-visible surface that only fades.
func (r *Registry) AddFreestanding(s *scene.Object) {
	for _, f := range r.freestanding {
		if f == s {
			return
		}
	}
	s.Visible = true
	r.freestanding = append(r.freestanding, s)
}

// Group returns the named group or nil.
func (r *Registry) Group(name string) *Group {
	return r.byName[name]
}

// Groups returns all groups in creation order.
func (r *Registry) Groups() []*Group {
	out := make([]*Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// Freestanding returns the surfaces that belong to no group.
func (r *Registry) Freestanding() []*scene.Object {
	out := make([]*scene.Object, len(r.freestanding))
	copy(out, r.freestanding)
	return out
}

// Pickable returns every carousel member: the candidate set for cycling.
func (r *Registry) Pickable() []*scene.Object {
	var out []*scene.Object
	for _, g := range r.groups {
		out = append(out, g.members...)
	}
	return out
}

// Surfaces returns every registered surface, grouped and freestanding.
func (r *Registry) Surfaces() []*scene.Object {
	out := r.Pickable()
	return append(out, r.freestanding...)
}

// GroupOf returns the group containing s, or nil.
func (r *Registry) GroupOf(s *scene.Object) *Group {
	for _, g := range r.groups {
		if g.Contains(s) {
			return g
		}
	}
	return nil
}

// Cycle advances the group that contains hit. At most one group is touched.
// Returns the cycled group, or nil if hit is in no group.
func (r *Registry) Cycle(hit *scene.Object) *Group {
	g := r.GroupOf(hit)
	if g == nil {
		return nil
	}
	g.Cycle(hit)
	return g
}
