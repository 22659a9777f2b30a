// Package tween animates float properties over time with easing.
//
// A Manager owns every running tween for a set of properties. Tweens are
// keyed by the address of the property they drive: starting a tween on a
// property that is already animating replaces the running one. Completion is
// reported as Done values returned from Update rather than through callbacks.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/skybridge/pkg/math"
)

// Easing maps (elapsed, begin, change, duration) to the current value.
type Easing = ease.TweenFunc

// Common easings.
var (
	Linear  Easing = ease.Linear
	EaseOut Easing = ease.OutQuad // Power1/quadratic ease-out
)

// Done reports a tween that reached its end value during Update.
type Done struct {
	Target *float32
	Tag    string
}

type track struct {
	target *float32
	tween  *gween.Tween
	tag    string
}

// Manager advances the tweens it owns.
type Manager struct {
	tracks  []*track
	pending []Done // zero-duration tweens, reported on the next Update
}

// New creates an empty manager.
func New() *Manager {
	return &Manager{}
}

// To animates *target from its current value to `to` over duration seconds.
// Any tween already driving target is dropped without a Done report.
func (m *Manager) To(target *float32, to, duration float32, easing Easing, tag string) {
	m.Cancel(target)

	if duration <= 0 {
		*target = to
		m.pending = append(m.pending, Done{Target: target, Tag: tag})
		return
	}
	if easing == nil {
		easing = Linear
	}

	m.tracks = append(m.tracks, &track{
		target: target,
		tween:  gween.New(*target, to, duration, easing),
		tag:    tag,
	})
}

// ToVec3 animates all three components of *target with the same tag.
func (m *Manager) ToVec3(target *math.Vec3, to math.Vec3, duration float32, easing Easing, tag string) {
	m.To(&target.X, to.X, duration, easing, tag)
	m.To(&target.Y, to.Y, duration, easing, tag)
	m.To(&target.Z, to.Z, duration, easing, tag)
}

// Cancel stops the tween driving target, leaving the property where it is.
// Returns false if nothing was animating it.
func (m *Manager) Cancel(target *float32) bool {
	for i, tr := range m.tracks {
		if tr.target == target {
			m.tracks = append(m.tracks[:i], m.tracks[i+1:]...)
			return true
		}
	}
	return false
}

// Running reports whether any tween with the given tag is still animating.
func (m *Manager) Running(tag string) bool {
	for _, tr := range m.tracks {
		if tr.tag == tag {
			return true
		}
	}
	return false
}

// Len returns the number of running tweens.
func (m *Manager) Len() int {
	return len(m.tracks)
}

// Update advances every tween by dt seconds, writes the new values and
// returns the tweens that finished, in start order.
func (m *Manager) Update(dt float32) []Done {
	done := m.pending
	m.pending = nil

	kept := m.tracks[:0]
	for _, tr := range m.tracks {
		value, finished := tr.tween.Update(dt)
		*tr.target = value
		if finished {
			done = append(done, Done{Target: tr.target, Tag: tr.tag})
			continue
		}
		kept = append(kept, tr)
	}
	// Drop references held past the new length.
	for i := len(kept); i < len(m.tracks); i++ {
		m.tracks[i] = nil
	}
	m.tracks = kept

	return done
}
