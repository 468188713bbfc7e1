// Package debug provides debug visualization utilities.
package debug

import (
	"image/color"

	"github.com/Faultbox/quatviz/internal/engine/mesh"
	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/pkg/math"
)

// BBoxEdgeCount is the number of segments in a box wireframe.
const BBoxEdgeCount = 12

// DefaultBBoxPadding is the default padding around a mesh box.
const DefaultBBoxPadding = 0.05

// BBoxColor is the default bounding box color.
var BBoxColor = color.RGBA{R: 255, G: 200, A: 255}

// bboxEdges indexes mesh.Bounds.Corners: bottom face, top face, then verticals.
var bboxEdges = [BBoxEdgeCount][2]int{
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// BBoxSegments returns the 12 edges of b grown by padding on all sides.
func BBoxSegments(b mesh.Bounds, padding float32, c color.RGBA) []pipeline.Segment {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	b.Min = b.Min.Sub(pad)
	b.Max = b.Max.Add(pad)

	corners := b.Corners()
	segs := make([]pipeline.Segment, 0, BBoxEdgeCount)
	for _, e := range bboxEdges {
		segs = append(segs, pipeline.Segment{A: corners[e[0]], B: corners[e[1]], Color: c})
	}
	return segs
}
