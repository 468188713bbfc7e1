package ui

import (
	"errors"
	"image"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/quatviz/internal/engine/debug"
)

// ErrEmptyFramebuffer is returned when the window has no drawable area.
var ErrEmptyFramebuffer = errors.New("framebuffer has zero size")

// CaptureFramebuffer reads the front buffer, which holds the previous
// completed frame, and returns it top-down.
func CaptureFramebuffer() (*image.RGBA, error) {
	// DisplaySize is logical pixels, DisplayFramebufferScale is the multiplier
	io := imgui.CurrentIO()
	displaySize := io.DisplaySize()
	fbScale := io.DisplayFramebufferScale()
	width := int(displaySize.X * fbScale.X)
	height := int(displaySize.Y * fbScale.Y)
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyFramebuffer
	}

	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)

	return debug.FlipPixels(pixels, width, height)
}
