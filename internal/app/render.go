package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/debug"
	"github.com/Faultbox/quatviz/internal/engine/mesh"
	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/internal/engine/raster"
	"github.com/Faultbox/quatviz/internal/logger"
)

// Render draws the configured scene offscreen and writes one image per
// frame. With more than one frame the rotation is swept from identity to
// the full orientation. It returns the written paths and the edge counts
// summed over all frames.
func Render(cfg *config.Config, m *mesh.Mesh) ([]string, pipeline.Stats, error) {
	var total pipeline.Stats

	w, h := cfg.Graphics.Width, cfg.Graphics.Height
	if w <= 0 || h <= 0 {
		return nil, total, fmt.Errorf("invalid image size %dx%d", w, h)
	}
	frames := max(cfg.Render.Frames, 1)

	canvas := raster.NewCanvas(w, h)
	if cfg.Render.LineWidth > 0 {
		canvas.LineWidth = cfg.Render.LineWidth
	}
	wire := pipeline.NewWireframe(canvas, w, h)

	params := cfg.Rotation
	scene := NewScene(m, &params, cfg.Scene)
	cam := NewFlyCamera(cfg.Camera)
	view, proj := cam.ViewMatrix(), cam.ProjectionMatrix(w, h)

	paths := make([]string, 0, frames)
	for i := 0; i < frames; i++ {
		scene.T = FrameFraction(i, frames)

		canvas.Clear(cfg.Scene.Background.ToRGBA())
		st := scene.Draw(wire, view, proj)
		total.Add(st)

		path := FrameName(cfg.Render.Output, i, frames)
		if err := debug.SaveImage(path, canvas.Image()); err != nil {
			return paths, total, fmt.Errorf("writing frame %d: %w", i, err)
		}
		paths = append(paths, path)
		logger.Debug("frame rendered", zap.String("path", path), zap.Object("stats", st))
	}
	return paths, total, nil
}

// FrameFraction returns the interpolation fraction of frame i out of n:
// 1 for a single frame, otherwise evenly spaced from 0 to 1.
func FrameFraction(i, n int) float32 {
	if n <= 1 {
		return 1
	}
	return float32(i) / float32(n-1)
}

// FrameName returns the output path of frame i out of n. A single frame
// uses output unchanged; sequences get a zero-padded index before the
// extension.
func FrameName(output string, i, n int) string {
	if n <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return fmt.Sprintf("%s_%03d%s", base, i, ext)
}
