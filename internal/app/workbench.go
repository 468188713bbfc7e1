package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/camera"
	"github.com/Faultbox/quatviz/internal/engine/debug"
	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/internal/engine/ui"
	"github.com/Faultbox/quatviz/internal/logger"
)

// Workbench is the ImGui front end: the wireframe fills the window and
// the rotation panel floats on top.
type Workbench struct {
	cfg     *config.Config
	backend *ui.Backend

	canvas ui.Canvas
	panel  *ui.Panel
	picker *ui.ModelPicker

	scene *Scene
	orbit *camera.OrbitCamera
	wire  *pipeline.Wireframe

	screenshots *debug.ScreenshotCapture
	captureNext bool
	lastTick    time.Time
}

// NewWorkbench creates the window and loads the configured model.
func NewWorkbench(cfg *config.Config) (*Workbench, error) {
	m, err := LoadMesh(cfg.Scene.Model)
	if err != nil {
		return nil, err
	}

	wb := &Workbench{
		cfg:         cfg,
		canvas:      ui.Canvas{Thickness: cfg.Render.LineWidth},
		picker:      ui.NewModelPicker(),
		orbit:       NewOrbitCamera(cfg.Camera, m.Bounds()),
		screenshots: debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "workbench", cfg.Render.ScreenshotFormat),
	}
	wb.scene = NewScene(m, &cfg.Rotation, cfg.Scene)
	wb.panel = ui.NewPanel(&cfg.Rotation)
	wb.panel.ModelName = modelName(cfg.Scene.Model)
	// The drawer is bound each frame to the current draw list.
	wb.wire = pipeline.NewWireframe(nil, cfg.Graphics.Width, cfg.Graphics.Height)

	bg := ui.ColorVec4(cfg.Scene.Background.ToRGBA())
	wb.backend, err = ui.NewBackend("quatviz workbench", cfg.Graphics.Width, cfg.Graphics.Height, bg)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbench: %w", err)
	}
	wb.backend.SetTargetFPS(cfg.Graphics.FPSLimit)
	wb.backend.OnDrop(func(paths []string) {
		for _, p := range paths {
			if strings.EqualFold(filepath.Ext(p), ".obj") {
				wb.picker.Offer(p)
				return
			}
		}
	})
	return wb, nil
}

// Run blocks until the window is closed.
func (wb *Workbench) Run() {
	wb.lastTick = time.Now()
	logger.Info("starting workbench")
	wb.backend.Run(wb.frame)
}

func (wb *Workbench) frame() {
	now := time.Now()
	dt := float32(now.Sub(wb.lastTick).Seconds())
	wb.lastTick = now

	// The front buffer holds the last finished frame, so capture first.
	if wb.captureNext {
		wb.captureNext = false
		wb.saveScreenshot()
	}

	if path, ok := wb.picker.Pending(); ok {
		wb.loadModel(path)
	}

	wb.handleKeys()

	if wb.panel.Animate {
		wb.scene.T = advance(wb.scene.T, dt, animationPeriod)
		wb.panel.T = wb.scene.T
	} else {
		wb.scene.T = wb.panel.T
	}

	dl, size, in := wb.canvas.Begin()
	if in.Hovered {
		if in.DragLeft.X != 0 || in.DragLeft.Y != 0 {
			wb.orbit.HandleDrag(in.DragLeft.X, in.DragLeft.Y)
		}
		if in.Wheel != 0 {
			wb.orbit.HandleZoom(in.Wheel)
		}
	}
	w, h := int(size.X), int(size.Y)
	if w > 0 && h > 0 {
		wb.wire.Drawer = dl
		wb.wire.Resize(w, h)
		wb.panel.Stats = wb.scene.Draw(wb.wire, wb.orbit.ViewMatrix(), wb.orbit.ProjectionMatrix(w, h))
	}
	wb.canvas.End()

	res := wb.panel.Draw()
	if res.LoadRequested {
		wb.picker.Open()
	}
	if res.Screenshot {
		wb.captureNext = true
	}
}

func (wb *Workbench) handleKeys() {
	if ui.IsKeyPressed(imgui.KeyF12) {
		wb.captureNext = true
	}
	if ui.IsKeyPressed(imgui.KeyEscape) {
		wb.backend.Close()
	}
	if imgui.CurrentIO().WantTextInput() {
		return
	}

	var forward, right, up float32
	if ui.IsKeyDown(imgui.KeyW) {
		forward++
	}
	if ui.IsKeyDown(imgui.KeyS) {
		forward--
	}
	if ui.IsKeyDown(imgui.KeyD) {
		right++
	}
	if ui.IsKeyDown(imgui.KeyA) {
		right--
	}
	if ui.IsKeyDown(imgui.KeyE) {
		up++
	}
	if ui.IsKeyDown(imgui.KeyQ) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		wb.orbit.HandleMovement(forward, right, up)
	}
}

func (wb *Workbench) loadModel(path string) {
	m, err := LoadMesh(path)
	if err != nil {
		logger.Warn("model load failed", zap.String("path", path), zap.Error(err))
		wb.panel.Status = "Load failed: " + err.Error()
		return
	}
	wb.scene.Mesh = m
	wb.orbit.FitToBounds(m.Bounds().Min, m.Bounds().Max)
	wb.cfg.Scene.Model = path
	wb.panel.ModelName = modelName(path)
	wb.panel.Status = ""
}

func (wb *Workbench) saveScreenshot() {
	img, err := ui.CaptureFramebuffer()
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		wb.panel.Status = "Screenshot failed"
		return
	}
	path, err := wb.screenshots.CaptureFromImage(img)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		wb.panel.Status = "Screenshot failed"
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	wb.panel.Status = "Saved " + path
}

func modelName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
