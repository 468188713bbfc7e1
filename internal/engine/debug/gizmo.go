package debug

import (
	"image/color"

	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/pkg/math"
	"github.com/Faultbox/quatviz/pkg/rotation"
)

// Indicator colors for the three rotation axes of the active mode.
var IndicatorColors = [3]color.RGBA{
	{R: 255, G: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, B: 255, A: 255},
}

// GridColor is the default ground grid color.
var GridColor = color.RGBA{R: 70, G: 70, B: 80, A: 255}

// AxisSegments draws each indicator axis as a line through the origin
// from -length to +length, so the rotation axis reads as an axis
// rather than a direction.
func AxisSegments(axes rotation.Axes, length float32) []pipeline.Segment {
	segs := make([]pipeline.Segment, 0, len(axes.Vectors))
	for i, v := range axes.Vectors {
		d := v.Normalize().Scale(length)
		segs = append(segs, pipeline.Segment{A: d.Negate(), B: d, Color: IndicatorColors[i]})
	}
	return segs
}

// GridSegments returns lines on the XZ plane at y=0 spanning
// [-size/2, size/2] every step units. A non-positive step yields nothing.
func GridSegments(size, step float32, c color.RGBA) []pipeline.Segment {
	if step <= 0 || size <= 0 {
		return nil
	}
	half := size / 2
	n := int(size/step) + 1
	segs := make([]pipeline.Segment, 0, 2*n)
	for i := 0; i < n; i++ {
		o := -half + float32(i)*step
		segs = append(segs,
			pipeline.Segment{A: math.Vec3{X: o, Z: -half}, B: math.Vec3{X: o, Z: half}, Color: c},
			pipeline.Segment{A: math.Vec3{X: -half, Z: o}, B: math.Vec3{X: half, Z: o}, Color: c},
		)
	}
	return segs
}
