// Package window handles the SDL2 window and its 2D line renderer.
package window

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/logger"
	"github.com/Faultbox/quatviz/pkg/math"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window with an accelerated renderer. It implements
// pipeline.LineDrawer so the wireframe can draw straight into it.
type Window struct {
	config      Config
	sdlWindow   *sdl.Window
	sdlRenderer *sdl.Renderer
	lastColor   color.RGBA
}

// New creates a new window and its renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rflags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.sdlRenderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rflags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	if err := w.sdlRenderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		logger.Warn("failed to enable blending", zap.Error(err))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the renderer and window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.sdlRenderer != nil {
		w.sdlRenderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Clear fills the back buffer with bg.
func (w *Window) Clear(bg color.RGBA) {
	w.setColor(bg)
	_ = w.sdlRenderer.Clear()
}

// DrawSegment draws one screen-space line.
func (w *Window) DrawSegment(p1, p2 math.Vec2, c color.RGBA) {
	w.setColor(c)
	_ = w.sdlRenderer.DrawLineF(p1.X, p1.Y, p2.X, p2.Y)
}

func (w *Window) setColor(c color.RGBA) {
	if c == w.lastColor {
		return
	}
	w.lastColor = c
	_ = w.sdlRenderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// Present shows the back buffer.
func (w *Window) Present() {
	w.sdlRenderer.Present()
}

// Size returns the drawable size in pixels, which can differ from the
// window size on high-DPI displays.
func (w *Window) Size() (int, int) {
	width, height, err := w.sdlRenderer.GetOutputSize()
	if err != nil {
		ww, wh := w.sdlWindow.GetSize()
		return int(ww), int(wh)
	}
	return int(width), int(height)
}

// Snapshot reads the current back buffer into an image. Call it after
// drawing and before Present.
func (w *Window) Snapshot() (*image.RGBA, error) {
	width, height := w.Size()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// ABGR8888 is R,G,B,A byte order on little-endian hosts.
	err := w.sdlRenderer.ReadPixels(nil, sdl.PIXELFORMAT_ABGR8888, unsafe.Pointer(&img.Pix[0]), img.Stride)
	if err != nil {
		return nil, fmt.Errorf("SDL_RenderReadPixels failed: %w", err)
	}
	return img, nil
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
