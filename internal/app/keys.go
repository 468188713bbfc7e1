package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/quatviz/pkg/rotation"
)

// modeForKey maps the number keys 1-3 to rotation modes.
func modeForKey(key sdl.Scancode) (rotation.Mode, bool) {
	switch key {
	case sdl.SCANCODE_1:
		return rotation.ModeQuaternion, true
	case sdl.SCANCODE_2:
		return rotation.ModeEulerZYX, true
	case sdl.SCANCODE_3:
		return rotation.ModeTaitBryan, true
	}
	return 0, false
}

// nudgeForKey maps edit keys to a value index and step direction:
// Up/Down edit value 0, Right/Left value 1, PageUp/PageDown value 2.
func nudgeForKey(key sdl.Scancode) (index, steps int, ok bool) {
	switch key {
	case sdl.SCANCODE_UP:
		return 0, 1, true
	case sdl.SCANCODE_DOWN:
		return 0, -1, true
	case sdl.SCANCODE_RIGHT:
		return 1, 1, true
	case sdl.SCANCODE_LEFT:
		return 1, -1, true
	case sdl.SCANCODE_PAGEUP:
		return 2, 1, true
	case sdl.SCANCODE_PAGEDOWN:
		return 2, -1, true
	}
	return 0, 0, false
}

// advance moves an animation fraction forward by dt over period seconds,
// wrapping back to 0 after reaching 1.
func advance(t, dt, period float32) float32 {
	if period <= 0 {
		return 1
	}
	t += dt / period
	for t > 1 {
		t -= 1
	}
	return t
}
