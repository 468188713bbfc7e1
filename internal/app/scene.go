// Package app wires meshes, rotations and cameras into the viewer,
// workbench and offscreen renderer.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/debug"
	"github.com/Faultbox/quatviz/internal/engine/mesh"
	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/internal/logger"
	"github.com/Faultbox/quatviz/pkg/math"
	"github.com/Faultbox/quatviz/pkg/rotation"
)

// Ground grid extent and spacing in world units.
const (
	gridSize = 10
	gridStep = 1
)

// maxLoggedWarnings caps per-line OBJ warnings in the log.
const maxLoggedWarnings = 10

// Scene is what one frame draws: the mesh before and after rotation plus
// the gizmos enabled in Options.
type Scene struct {
	Mesh    *mesh.Mesh
	Params  *rotation.Params
	Options config.SceneConfig

	// T is the interpolation fraction from identity (0) to the full
	// rotation (1).
	T float32
}

// NewScene creates a scene showing the full rotation of m.
func NewScene(m *mesh.Mesh, p *rotation.Params, opts config.SceneConfig) *Scene {
	return &Scene{Mesh: m, Params: p, Options: opts, T: 1}
}

// Spec returns the rotation at the current interpolation fraction.
func (s *Scene) Spec() rotation.Spec {
	return s.Params.Spec().Interpolate(s.T)
}

// Indicators returns the axes of the interpolated rotation, matching the
// drawn mesh.
func (s *Scene) Indicators() rotation.Axes {
	return s.Spec().Axes()
}

// ModelMatrix returns the model matrix of the rotated mesh.
func (s *Scene) ModelMatrix() math.Mat4 {
	return rotation.ToMatrix(s.Spec())
}

// Draw renders the scene through w and returns the combined edge counts.
func (s *Scene) Draw(w *pipeline.Wireframe, view, proj math.Mat4) pipeline.Stats {
	var st pipeline.Stats
	id := math.Identity()
	o := s.Options

	if o.ShowGrid {
		st.Add(w.DrawSegments(debug.GridSegments(gridSize, gridStep, debug.GridColor), id, view, proj))
	}
	if o.ShowAxes {
		st.Add(w.DrawAxes(view, proj, o.AxisLength))
	}
	if o.ShowReference {
		st.Add(w.DrawMesh(s.Mesh, id, view, proj, o.Reference.ToRGBA()))
	}

	model := s.ModelMatrix()
	st.Add(w.DrawMesh(s.Mesh, model, view, proj, o.Rotated.ToRGBA()))

	if o.ShowBBox && !s.Mesh.IsEmpty() {
		box := debug.BBoxSegments(s.Mesh.Bounds(), debug.DefaultBBoxPadding, debug.BBoxColor)
		st.Add(w.DrawSegments(box, model, view, proj))
	}
	if o.ShowIndicators {
		st.Add(w.DrawSegments(debug.AxisSegments(s.Indicators(), o.AxisLength), id, view, proj))
	}
	return st
}

// LoadMesh loads the OBJ at path, or the unit cube when path is empty.
// Skipped OBJ records are logged as warnings.
func LoadMesh(path string) (*mesh.Mesh, error) {
	if path == "" {
		return mesh.NewCube(1), nil
	}

	m, warnings, err := mesh.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	for i, w := range warnings {
		if i == maxLoggedWarnings {
			logger.Warn("more OBJ records skipped", zap.Int("count", len(warnings)-i))
			break
		}
		logger.Warn("OBJ record skipped", zap.String("path", path), zap.String("detail", w))
	}

	report := m.Validate()
	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("vertices", len(m.Vertices)),
		zap.Stringer("report", report),
	)
	return m, nil
}
