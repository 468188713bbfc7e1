package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/pkg/math"
	"github.com/Faultbox/quatviz/pkg/rotation"
)

const panelWidth = 320

var modes = []rotation.Mode{rotation.ModeQuaternion, rotation.ModeEulerZYX, rotation.ModeTaitBryan}

// PanelResult reports what the user did in the panel this frame.
type PanelResult struct {
	Changed       bool // rotation parameters were edited
	LoadRequested bool // "Load OBJ" was clicked
	Screenshot    bool
}

// Panel edits rotation parameters and shows the resulting matrix.
type Panel struct {
	Params *rotation.Params

	// Animate sweeps the rotation from identity to the full orientation.
	Animate bool
	// T is the interpolation fraction shown when not animating.
	T float32

	ModelName string
	Stats     pipeline.Stats
	Status    string
}

// NewPanel creates a panel editing p, showing the full rotation.
func NewPanel(p *rotation.Params) *Panel {
	return &Panel{Params: p, T: 1}
}

// Draw renders the panel in the top-left corner of the work area.
func (pn *Panel) Draw() PanelResult {
	var res PanelResult

	pos, _ := Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+10, pos.Y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0))
	imgui.SetNextWindowBgAlpha(0.85)
	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsAlwaysAutoResize
	if imgui.BeginV("Rotation", nil, flags) {
		res.Changed = pn.drawMode()
		imgui.Separator()
		if pn.drawValues() {
			res.Changed = true
		}
		imgui.Separator()
		pn.drawAnimation()
		imgui.Separator()
		pn.drawMatrix()
		imgui.Separator()
		res.LoadRequested, res.Screenshot = pn.drawModel()
	}
	imgui.End()

	return res
}

func (pn *Panel) drawMode() bool {
	changed := false
	for i, m := range modes {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.RadioButtonBool(m.String(), pn.Params.Mode == m) && pn.Params.Mode != m {
			pn.Params.Mode = m
			changed = true
		}
	}
	return changed
}

func (pn *Panel) drawValues() bool {
	p := pn.Params
	changed := false
	angle := func(label string, v *float32) {
		if imgui.SliderFloatV(label, v, -360, 360, "%.1f deg", imgui.SliderFlagsNone) {
			changed = true
		}
	}
	component := func(label string, v *float32) {
		if imgui.SliderFloatV(label, v, -1, 1, "%.2f", imgui.SliderFlagsNone) {
			changed = true
		}
	}

	switch p.Mode {
	case rotation.ModeEulerZYX:
		angle("Alpha (Z)", &p.Alpha)
		angle("Beta (Y)", &p.Beta)
		angle("Gamma (X)", &p.Gamma)
	case rotation.ModeTaitBryan:
		angle("Yaw", &p.Yaw)
		angle("Pitch", &p.Pitch)
		angle("Roll", &p.Roll)
	default:
		angle("Angle", &p.Angle)
		component("Axis X", &p.Axis.X)
		component("Axis Y", &p.Axis.Y)
		component("Axis Z", &p.Axis.Z)
		if imgui.Button("Normalize axis") {
			p.Axis = NormalizeAxis(p.Axis)
			changed = true
		}
		imgui.SameLine()
	}

	if imgui.Button("Reset") {
		ResetParams(p)
		changed = true
	}
	return changed
}

func (pn *Panel) drawAnimation() {
	imgui.Checkbox("Animate", &pn.Animate)
	if !pn.Animate {
		imgui.SliderFloatV("Interpolation", &pn.T, 0, 1, "%.2f", imgui.SliderFlagsNone)
	}
}

func (pn *Panel) drawMatrix() {
	spec := pn.Params.Spec()
	for _, row := range MatrixRows(spec.Interpolate(pn.T).Matrix()) {
		imgui.Text(row)
	}
	axes := spec.Axes()
	for i, v := range axes.Vectors {
		imgui.Text(fmt.Sprintf("%-6s (%6.3f, %6.3f, %6.3f)", axes.Labels[i], v.X, v.Y, v.Z))
	}
}

func (pn *Panel) drawModel() (load, screenshot bool) {
	name := pn.ModelName
	if name == "" {
		name = "cube"
	}
	imgui.Text("Model: " + name)
	imgui.Text(fmt.Sprintf("Edges: %d drawn / %d", pn.Stats.Drawn, pn.Stats.Edges))
	if pn.Stats.HasProblems() {
		imgui.TextDisabled(fmt.Sprintf("degenerate faces %d, bad indices %d",
			pn.Stats.DegenerateFaces, pn.Stats.BadIndices))
	}
	load = imgui.Button("Load OBJ...")
	imgui.SameLine()
	screenshot = imgui.Button("Screenshot (F12)")
	if pn.Status != "" {
		imgui.TextDisabled(pn.Status)
	}
	return load, screenshot
}

// MatrixRows formats the upper 3x3 of m, one row per line.
func MatrixRows(m math.Mat4) [3]string {
	var rows [3]string
	for r := 0; r < 3; r++ {
		rows[r] = fmt.Sprintf("[%7.3f %7.3f %7.3f]", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
	return rows
}

// NormalizeAxis scales v to unit length. A zero axis becomes +Y.
func NormalizeAxis(v math.Vec3) math.Vec3 {
	if v.Length() < pipeline.Epsilon {
		return math.UnitY
	}
	return v.Normalize()
}

// ResetParams restores the defaults while keeping the active mode.
func ResetParams(p *rotation.Params) {
	mode := p.Mode
	*p = rotation.DefaultParams()
	p.Mode = mode
}
