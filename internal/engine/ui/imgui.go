// Package ui provides the ImGui workbench: backend, wireframe draw list
// and the rotation panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/logger"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the ImGui backend and its window, then loads the
// OpenGL entry points used for framebuffer read-back.
func NewBackend(title string, width, height int, bg imgui.Vec4) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(bg)
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	logger.Info("workbench window created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
	)
	return b, nil
}

// Run starts the main render loop. frame is called once per frame
// between NewFrame and Render.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetTargetFPS caps the frame rate. Zero leaves it uncapped.
func (b *Backend) SetTargetFPS(fps int) {
	if fps > 0 {
		b.backend.SetTargetFPS(uint(fps))
	}
}

// OnDrop registers a handler for files dropped onto the window.
func (b *Backend) OnDrop(fn func(paths []string)) {
	b.backend.SetDropCallback(func(paths []string) {
		fn(paths)
	})
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the main viewport work area in logical pixels.
func Viewport() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// IsKeyDown checks if a key is currently held down.
func IsKeyDown(key imgui.Key) bool {
	return imgui.IsKeyDown(key)
}
