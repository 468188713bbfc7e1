package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestMouseStateDelta(t *testing.T) {
	var m MouseState

	dx, dy := m.Delta(100, 200)
	if dx != 0 || dy != 0 {
		t.Errorf("first sample should give no delta, got (%v, %v)", dx, dy)
	}

	dx, dy = m.Delta(110, 190)
	if dx != 10 || dy != 10 {
		t.Errorf("delta = (%v, %v), want (10, 10)", dx, dy)
	}

	m.Reset()
	dx, dy = m.Delta(0, 0)
	if dx != 0 || dy != 0 {
		t.Errorf("delta after reset = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  EventType
		quit  bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, EventQuit, true},
		{"key down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}}, EventKeyDown, false},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}}, EventKeyUp, false},
		{"resize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600}, EventWindowResize, false},
		{"motion", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 5, Y: 6, XRel: 1, YRel: -1}, EventMouseMove, false},
		{"wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1}, EventMouseWheel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New()
			quit := in.translate(tt.event)
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			events := in.Events()
			if len(events) != 1 || events[0].Type != tt.want {
				t.Fatalf("events = %+v, want one of type %d", events, tt.want)
			}
		})
	}
}

func TestKeyRepeatIgnored(t *testing.T) {
	in := New()
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_UP}})
	if in.IsKeyPressed(sdl.SCANCODE_UP) {
		t.Error("repeated key should not count as a press")
	}
}

func TestButtonTracking(t *testing.T) {
	in := New()
	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT})
	if !in.IsButtonDown(sdl.BUTTON_RIGHT) {
		t.Error("right button should be down")
	}
	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT})
	if in.IsButtonDown(sdl.BUTTON_RIGHT) {
		t.Error("right button should be up")
	}
}
