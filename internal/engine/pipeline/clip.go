// Package pipeline projects mesh edges to the screen and clips them.
//
// Each edge goes through four stages: near-plane clip in camera space,
// projection with a guarded perspective divide, Cohen-Sutherland clip
// against the viewport, and finally a LineDrawer call.
package pipeline

import (
	gomath "math"

	"github.com/Faultbox/quatviz/pkg/math"
)

const (
	// NearPlane is the camera-space z threshold. The camera looks down -Z,
	// so points with z > NearPlane are behind it.
	NearPlane float32 = -0.1

	// Epsilon is the float32 machine epsilon used to guard the divide by w.
	Epsilon float32 = 1.1920929e-07

	// maxClipPasses bounds the Cohen-Sutherland loop. Each pass clears at
	// least one outcode bit, so four passes per endpoint suffice.
	maxClipPasses = 8
)

// Outcode bits for Cohen-Sutherland. Screen y grows downward, so Top is
// y < 0 and Bottom is y >= Height.
const (
	OutLeft   = 1
	OutRight  = 2
	OutBottom = 4
	OutTop    = 8
)

var nan32 = float32(gomath.NaN())

// NearPlaneFactor returns the interpolation factor at which the segment
// from camera-space depth z1 to z2 crosses NearPlane.
func NearPlaneFactor(z1, z2 float32) float32 {
	return (NearPlane - z1) / (z2 - z1)
}

// ClipNear clips the segment a-b against the near plane. a and b are in
// the space modelView maps to camera space. When exactly one endpoint is
// behind the plane it is replaced by the interpolated crossing point,
// computed in the input space so later transforms stay consistent.
// ok is false when both endpoints are behind.
func ClipNear(a, b math.Vec3, modelView math.Mat4) (math.Vec3, math.Vec3, bool) {
	za := modelView.TransformVec3(a).Z
	zb := modelView.TransformVec3(b).Z

	behindA := za > NearPlane
	behindB := zb > NearPlane

	switch {
	case behindA && behindB:
		return a, b, false
	case !behindA && !behindB:
		return a, b, true
	}

	cross := a.Lerp(b, NearPlaneFactor(za, zb))
	if behindA {
		return cross, b, true
	}
	return a, cross, true
}

// Viewport is the pixel rectangle segments are clipped to.
type Viewport struct {
	Width  int
	Height int
}

// Project maps p through mvp to screen coordinates. x and y are pixels
// with y pointing down; z is the NDC depth, left unscaled. When |w| is
// below Epsilon the result is all NaN and the point must not be drawn.
func (v Viewport) Project(p math.Vec3, mvp math.Mat4) math.Vec3 {
	clip := mvp.MulVec4(p.Point())
	if absf(clip.W) < Epsilon {
		return math.Vec3{X: nan32, Y: nan32, Z: nan32}
	}

	ndc := clip.XYZ().Scale(1 / clip.W)
	return math.Vec3{
		X: (ndc.X + 1) * 0.5 * float32(v.Width),
		Y: (1 - ndc.Y) * 0.5 * float32(v.Height),
		Z: ndc.Z,
	}
}

// edgeX and edgeY are the largest coordinates inside the half-open
// rectangle. Clipped endpoints land on them.
func (v Viewport) edgeX() float32 { return gomath.Nextafter32(float32(v.Width), 0) }
func (v Viewport) edgeY() float32 { return gomath.Nextafter32(float32(v.Height), 0) }

// Outcode classifies p against the pixel rectangle [0, W) x [0, H).
func (v Viewport) Outcode(p math.Vec2) int {
	code := 0
	if p.X < 0 {
		code |= OutLeft
	} else if p.X >= float32(v.Width) {
		code |= OutRight
	}
	if p.Y < 0 {
		code |= OutTop
	} else if p.Y >= float32(v.Height) {
		code |= OutBottom
	}
	return code
}

// ClipSegment clips the segment p1-p2 to the viewport in place using
// Cohen-Sutherland. It returns false when nothing of the segment is
// visible, including when either endpoint is NaN or infinite.
func (v Viewport) ClipSegment(p1, p2 *math.Vec2) bool {
	if !finite(*p1) || !finite(*p2) {
		return false
	}

	c1 := v.Outcode(*p1)
	c2 := v.Outcode(*p2)

	for pass := 0; pass < maxClipPasses; pass++ {
		if c1|c2 == 0 {
			return true
		}
		if c1&c2 != 0 {
			return false
		}

		out := c1
		if out == 0 {
			out = c2
		}

		var x, y float32
		dx := p2.X - p1.X
		dy := p2.Y - p1.Y
		switch {
		case out&OutTop != 0:
			x = p1.X + dx*(0-p1.Y)/dy
			y = 0
		case out&OutBottom != 0:
			y = v.edgeY()
			x = p1.X + dx*(y-p1.Y)/dy
		case out&OutRight != 0:
			x = v.edgeX()
			y = p1.Y + dy*(x-p1.X)/dx
		case out&OutLeft != 0:
			y = p1.Y + dy*(0-p1.X)/dx
			x = 0
		}
		// Overflow in the intersection.
		if !finite(math.Vec2{X: x, Y: y}) {
			return false
		}

		if out == c1 {
			*p1 = math.Vec2{X: x, Y: y}
			c1 = v.Outcode(*p1)
		} else {
			*p2 = math.Vec2{X: x, Y: y}
			c2 = v.Outcode(*p2)
		}
	}
	return c1|c2 == 0
}

func finite(p math.Vec2) bool {
	return !p.IsNaN() && !gomath.IsInf(float64(p.X), 0) && !gomath.IsInf(float64(p.Y), 0)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
