// Package mesh provides the polygon mesh container drawn by the wireframe pipeline.
package mesh

import (
	"fmt"

	"github.com/Faultbox/quatviz/pkg/formats"
	"github.com/Faultbox/quatviz/pkg/math"
)

// Mesh is an ordered vertex list plus polygon faces indexing into it.
// A mesh is built once and replaced wholesale when a new model is loaded;
// it is never mutated while it is being drawn.
type Mesh struct {
	Name     string
	Vertices []math.Vec3
	Faces    [][]int
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius returns half the box diagonal.
func (b Bounds) Radius() float32 {
	return b.Size().Length() * 0.5
}

// Corners returns the eight box corners. Bit 0 of the index selects X,
// bit 1 selects Y and bit 2 selects Z (0 = Min, 1 = Max).
func (b Bounds) Corners() [8]math.Vec3 {
	var c [8]math.Vec3
	for i := range c {
		c[i] = b.Min
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// Report summarizes structural problems found by Validate.
type Report struct {
	Faces           int
	Edges           int
	DegenerateFaces int // faces with fewer than 3 indices
	BadIndices      int // indices outside [0, len(Vertices))
}

// OK reports whether the mesh has no structural problems.
func (r Report) OK() bool {
	return r.DegenerateFaces == 0 && r.BadIndices == 0
}

func (r Report) String() string {
	return fmt.Sprintf("faces=%d edges=%d degenerate=%d bad_indices=%d",
		r.Faces, r.Edges, r.DegenerateFaces, r.BadIndices)
}

// NewCube creates an axis-aligned cube centered at the origin with the
// given half extent: 8 vertices and 6 quad faces wound counter-clockwise
// when seen from outside.
func NewCube(half float32) *Mesh {
	h := half
	return &Mesh{
		Name: "cube",
		Vertices: []math.Vec3{
			{X: -h, Y: -h, Z: -h},
			{X: h, Y: -h, Z: -h},
			{X: h, Y: h, Z: -h},
			{X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h},
			{X: h, Y: -h, Z: h},
			{X: h, Y: h, Z: h},
			{X: -h, Y: h, Z: h},
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // back
			{4, 5, 6, 7}, // front
			{0, 1, 5, 4}, // bottom
			{3, 7, 6, 2}, // top
			{1, 2, 6, 5}, // right
			{0, 4, 7, 3}, // left
		},
	}
}

// FromOBJ wraps parsed OBJ geometry. The slices are shared, not copied.
func FromOBJ(name string, obj *formats.OBJ) *Mesh {
	if obj == nil {
		return &Mesh{Name: name}
	}
	return &Mesh{
		Name:     name,
		Vertices: obj.Vertices,
		Faces:    obj.Faces,
	}
}

// Load reads an OBJ file into a mesh. Skipped records are returned as
// warnings alongside the mesh.
func Load(path string) (*Mesh, []string, error) {
	obj, err := formats.LoadOBJ(path)
	if err != nil {
		return nil, nil, err
	}
	return FromOBJ(path, obj), obj.Warnings, nil
}

// IsEmpty reports whether there is nothing to draw.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Faces) == 0
}

// Bounds computes the axis-aligned bounding box of all vertices.
// An empty mesh yields a zero box.
func (m *Mesh) Bounds() Bounds {
	if m == nil || len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Min.Z = min(b.Min.Z, v.Z)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
		b.Max.Z = max(b.Max.Z, v.Z)
	}
	return b
}

// EdgeCount returns the number of perimeter edges over all drawable faces,
// counting the closing edge of each polygon. Shared edges count once per face.
func (m *Mesh) EdgeCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, f := range m.Faces {
		if len(f) >= 3 {
			n += len(f)
		}
	}
	return n
}

// Validate checks every face for the index invariants.
func (m *Mesh) Validate() Report {
	var r Report
	if m == nil {
		return r
	}
	r.Faces = len(m.Faces)
	r.Edges = m.EdgeCount()
	for _, f := range m.Faces {
		if len(f) < 3 {
			r.DegenerateFaces++
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				r.BadIndices++
			}
		}
	}
	return r
}
