// Package input turns SDL2 events into the events the scene reacts to.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	// WheelY is the vertical scroll amount, positive when scrolling down
	// (content moves up), the way browsers report deltaY.
	WheelY float32
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit {
			return true
		}
	}

	return false
}

// Translate converts one SDL event. ok is false for events that are ignored.
func Translate(event sdl.Event) (ev Event, ok bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		t := EventKeyDown
		if e.Type == sdl.KEYUP {
			t = EventKeyUp
		}
		return Event{Type: t, Key: e.Keysym.Scancode}, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = EventMouseUp
		}
		return Event{
			Type:   t,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}, true

	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		if y == 0 {
			return Event{}, false
		}
		return Event{Type: EventMouseWheel, WheelY: -y}, true
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
