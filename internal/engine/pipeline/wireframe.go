package pipeline

import (
	"image/color"

	"github.com/Faultbox/quatviz/internal/engine/mesh"
	"github.com/Faultbox/quatviz/pkg/math"
)

// LineDrawer receives segments that are already projected and clipped.
type LineDrawer interface {
	DrawSegment(p1, p2 math.Vec2, c color.RGBA)
}

// Segment is a colored 3D line.
type Segment struct {
	A, B  math.Vec3
	Color color.RGBA
}

// Axis colors for X, Y and Z.
var (
	ColorX = color.RGBA{R: 255, A: 255}
	ColorY = color.RGBA{G: 255, A: 255}
	ColorZ = color.RGBA{B: 255, A: 255}
)

// Transform bundles the per-object matrices for one draw pass.
type Transform struct {
	ModelView math.Mat4
	MVP       math.Mat4
}

// NewTransform composes projection * view * model.
func NewTransform(model, view, proj math.Mat4) Transform {
	mv := view.Mul(model)
	return Transform{ModelView: mv, MVP: proj.Mul(mv)}
}

// Wireframe draws mesh edges through the clip stages onto a LineDrawer.
// It holds no per-frame state, so repeated calls with the same inputs
// produce the same segments.
type Wireframe struct {
	Viewport Viewport
	Drawer   LineDrawer
}

// NewWireframe creates a wireframe renderer for a width x height target.
func NewWireframe(d LineDrawer, width, height int) *Wireframe {
	return &Wireframe{
		Viewport: Viewport{Width: width, Height: height},
		Drawer:   d,
	}
}

// Resize updates the viewport after the target changed size.
func (w *Wireframe) Resize(width, height int) {
	w.Viewport = Viewport{Width: width, Height: height}
}

// ScreenSegment runs a-b through all clip stages and returns the screen
// endpoints. It does not draw.
func (w *Wireframe) ScreenSegment(a, b math.Vec3, t Transform) (p1, p2 math.Vec2, r Result) {
	a, b, ok := ClipNear(a, b, t.ModelView)
	if !ok {
		return p1, p2, ResultNearRejected
	}

	p1 = w.Viewport.Project(a, t.MVP).XY()
	p2 = w.Viewport.Project(b, t.MVP).XY()
	if !w.Viewport.ClipSegment(&p1, &p2) {
		return p1, p2, ResultScreenRejected
	}
	return p1, p2, ResultDrawn
}

func (w *Wireframe) edge(a, b math.Vec3, t Transform, c color.RGBA, s *Stats) {
	s.Edges++
	p1, p2, r := w.ScreenSegment(a, b, t)
	switch r {
	case ResultNearRejected:
		s.NearRejected++
	case ResultScreenRejected:
		s.ScreenRejected++
	default:
		s.Drawn++
		w.Drawer.DrawSegment(p1, p2, c)
	}
}

// DrawLine draws a single segment and reports whether anything was drawn.
func (w *Wireframe) DrawLine(a, b math.Vec3, model, view, proj math.Mat4, c color.RGBA) bool {
	var s Stats
	w.edge(a, b, NewTransform(model, view, proj), c, &s)
	return s.Drawn == 1
}

// DrawSegments draws independent colored segments with one transform.
func (w *Wireframe) DrawSegments(segs []Segment, model, view, proj math.Mat4) Stats {
	var s Stats
	t := NewTransform(model, view, proj)
	for _, seg := range segs {
		w.edge(seg.A, seg.B, t, seg.Color, &s)
	}
	return s
}

// DrawMesh draws every face perimeter, including the closing edge.
// Faces with fewer than 3 indices are skipped; an edge touching an
// out-of-range index is skipped. Both are counted in the returned Stats.
func (w *Wireframe) DrawMesh(m *mesh.Mesh, model, view, proj math.Mat4, c color.RGBA) Stats {
	var s Stats
	if m.IsEmpty() {
		return s
	}

	t := NewTransform(model, view, proj)
	n := len(m.Vertices)
	for _, face := range m.Faces {
		if len(face) < 3 {
			s.DegenerateFaces++
			continue
		}
		s.Faces++
		for i, i1 := range face {
			i2 := face[(i+1)%len(face)]
			if i1 < 0 || i1 >= n || i2 < 0 || i2 >= n {
				s.BadIndices++
				continue
			}
			w.edge(m.Vertices[i1], m.Vertices[i2], t, c, &s)
		}
	}
	return s
}

// DrawAxes draws the world X, Y and Z axes from the origin.
func (w *Wireframe) DrawAxes(view, proj math.Mat4, length float32) Stats {
	return w.DrawSegments(WorldAxes(length), math.Identity(), view, proj)
}

// WorldAxes returns red, green and blue segments along +X, +Y and +Z.
func WorldAxes(length float32) []Segment {
	return []Segment{
		{B: math.UnitX.Scale(length), Color: ColorX},
		{B: math.UnitY.Scale(length), Color: ColorY},
		{B: math.UnitZ.Scale(length), Color: ColorZ},
	}
}
