package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/camera"
	"github.com/Faultbox/quatviz/internal/engine/debug"
	"github.com/Faultbox/quatviz/internal/engine/input"
	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/internal/engine/window"
	"github.com/Faultbox/quatviz/internal/logger"
)

// animationPeriod is the time for one identity-to-full sweep.
const animationPeriod = 4 // seconds

// Viewer is the interactive SDL viewer.
type Viewer struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	wire   *pipeline.Wireframe
	scene  *Scene

	fly      *camera.FlyCamera
	orbit    *camera.OrbitCamera
	useOrbit bool
	mouse    input.MouseState

	animate     bool
	screenshot  bool
	screenshots *debug.ScreenshotCapture
	lastStats   pipeline.Stats
}

// NewViewer opens the window and prepares the scene.
func NewViewer(cfg *config.Config) (*Viewer, error) {
	m, err := LoadMesh(cfg.Scene.Model)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:         cfg,
		input:       input.New(),
		fly:         NewFlyCamera(cfg.Camera),
		orbit:       NewOrbitCamera(cfg.Camera, m.Bounds()),
		useOrbit:    cfg.Camera.Kind == config.CameraOrbit,
		screenshots: debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "quatviz", cfg.Render.ScreenshotFormat),
	}
	v.scene = NewScene(m, &cfg.Rotation, cfg.Scene)

	v.window, err = window.New(window.Config{
		Title:      "quatviz",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := v.window.Size()
	v.wire = pipeline.NewWireframe(v.window, w, h)

	logger.Info("viewer initialized", zap.String("model", m.Name))
	return v, nil
}

// Run starts the frame loop: input, update, render, present.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if !v.cfg.Graphics.VSync && v.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
	}

	logger.Info("starting frame loop")

	for v.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		// 1. Process input
		if v.input.Update() {
			break
		}
		v.handleEvents()

		// 2. Update
		v.update(dt)

		// 3. Render
		if err := v.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Present
		v.window.Present()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.window.SetTitle(v.title(frameCount))
			logger.Debug("frame", zap.Int("fps", frameCount), zap.Object("stats", v.lastStats))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

// Close releases the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) camera() camera.Camera {
	if v.useOrbit {
		return v.orbit
	}
	return v.fly
}

func (v *Viewer) handleEvents() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			w, h := v.window.Size()
			v.wire.Resize(w, h)

		case input.EventKeyDown:
			v.handleKey(e.Key)

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_RIGHT || e.Button == sdl.BUTTON_LEFT {
				v.mouse.Reset()
				v.mouse.Delta(float32(e.MouseX), float32(e.MouseY))
			}

		case input.EventMouseMove:
			v.handleMouseMove(e)

		case input.EventMouseWheel:
			if v.useOrbit {
				v.orbit.HandleZoom(e.Wheel)
			}
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	if mode, ok := modeForKey(key); ok {
		v.cfg.Rotation.Mode = mode
		logger.Info("rotation mode", zap.Stringer("mode", mode))
		return
	}
	if i, steps, ok := nudgeForKey(key); ok {
		v.cfg.Rotation.Nudge(i, steps)
		logger.Debug("rotation values", zap.Float32s("values", valuesOf(v.cfg.Rotation.Values())))
		return
	}

	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_TAB:
		v.useOrbit = !v.useOrbit
	case sdl.SCANCODE_SPACE:
		v.animate = !v.animate
		if !v.animate {
			v.scene.T = 1
		}
	case sdl.SCANCODE_F12:
		v.screenshot = true
	}
}

func (v *Viewer) handleMouseMove(e input.Event) {
	look := v.input.IsButtonDown(sdl.BUTTON_RIGHT)
	drag := v.input.IsButtonDown(sdl.BUTTON_LEFT)
	if !look && !drag {
		return
	}
	dx, dy := v.mouse.Delta(float32(e.MouseX), float32(e.MouseY))
	if v.useOrbit {
		v.orbit.HandleDrag(dx, dy)
	} else if look {
		v.fly.HandleMouseMovement(dx, dy)
	}
}

func (v *Viewer) update(dt float32) {
	forward := v.input.Axis(sdl.SCANCODE_W, sdl.SCANCODE_S)
	right := v.input.Axis(sdl.SCANCODE_D, sdl.SCANCODE_A)
	up := v.input.Axis(sdl.SCANCODE_E, sdl.SCANCODE_Q)
	if v.useOrbit {
		v.orbit.HandleMovement(forward, right, up)
	} else {
		v.fly.Move(forward, right, up, dt)
	}

	if v.animate {
		v.scene.T = advance(v.scene.T, dt, animationPeriod)
	}
}

func (v *Viewer) render() error {
	w, h := v.window.Size()
	v.window.Clear(v.cfg.Scene.Background.ToRGBA())
	if w == 0 || h == 0 {
		// Minimized.
		return nil
	}

	cam := v.camera()
	v.lastStats = v.scene.Draw(v.wire, cam.ViewMatrix(), cam.ProjectionMatrix(w, h))

	if v.screenshot {
		v.screenshot = false
		img, err := v.window.Snapshot()
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
			return nil
		}
		path, err := v.screenshots.CaptureFromImage(img)
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
			return nil
		}
		logger.Info("screenshot saved", zap.String("path", path))
	}
	return nil
}

func (v *Viewer) title(fps int) string {
	kind := config.CameraFly
	if v.useOrbit {
		kind = config.CameraOrbit
	}
	vals := v.cfg.Rotation.Values()
	return fmt.Sprintf("quatviz | %s [%.1f %.2f %.2f] | %s camera | %d/%d edges | %d fps",
		v.cfg.Rotation.Mode, vals[0], vals[1], vals[2], kind, v.lastStats.Drawn, v.lastStats.Edges, fps)
}

func valuesOf(a [3]float32) []float32 {
	return a[:]
}
