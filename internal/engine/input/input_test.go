package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		want   Event
		wantOK bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"window focus ignored", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED}, Event{}, false},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_RETURN}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_RETURN},
			true,
		},
		{
			"key repeat ignored",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			Event{},
			false,
		},
		{
			"right button up",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT, X: 10, Y: 20},
			Event{Type: EventMouseUp, Button: sdl.BUTTON_RIGHT, MouseX: 10, MouseY: 20},
			true,
		},
		{
			"wheel up scrolls back",
			&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_NORMAL},
			Event{Type: EventMouseWheel, WheelY: -1},
			true,
		},
		{
			"wheel down scrolls forward",
			&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2, Direction: sdl.MOUSEWHEEL_NORMAL},
			Event{Type: EventMouseWheel, WheelY: 2},
			true,
		},
		{
			"flipped wheel",
			&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			Event{Type: EventMouseWheel, WheelY: 1},
			true,
		},
		{"horizontal wheel ignored", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 3}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
