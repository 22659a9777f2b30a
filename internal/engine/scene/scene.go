// Package scene holds the graph of objects that make up the explorable world.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/logger"
)

// Scene is an ordered collection of objects. Order is insertion order and
// is also the draw and pick order.
type Scene struct {
	// Background is the sky texture path.
	Background string

	objects []*Object
	nextID  uint32
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{nextID: 1}
}

// Add appends an object and assigns it an ID if it has none.
// Adding an object that is already present is a no-op.
func (s *Scene) Add(o *Object) {
	if s.Contains(o) {
		return
	}
	if o.ID == 0 {
		o.ID = s.nextID
		s.nextID++
	}
	s.objects = append(s.objects, o)
	logger.Debug("scene object added",
		zap.Uint32("id", o.ID),
		zap.String("name", o.Name),
		zap.Stringer("kind", o.Kind))
}

// Remove detaches an object. Returns false if it was not in the scene.
func (s *Scene) Remove(o *Object) bool {
	for i, obj := range s.objects {
		if obj == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the object is currently in the scene.
func (s *Scene) Contains(o *Object) bool {
	for _, obj := range s.objects {
		if obj == o {
			return true
		}
	}
	return false
}

// Objects returns a snapshot of the scene's objects.
// The slice may be iterated while the scene is modified.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) *Object {
	for _, obj := range s.objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}
