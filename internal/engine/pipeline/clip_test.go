package pipeline

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/quatviz/internal/engine/camera"
	"github.com/Faultbox/quatviz/pkg/math"
)

func approx(a, b, eps float32) bool {
	return float32(gomath.Abs(float64(a-b))) <= eps
}

func TestNearPlaneFactor(t *testing.T) {
	if got := NearPlaneFactor(-1, 1); !approx(got, 0.45, 1e-6) {
		t.Errorf("NearPlaneFactor(-1, 1) = %v, want 0.45", got)
	}
}

func TestClipNear(t *testing.T) {
	view := math.Identity()
	a := math.Vec3{Z: -1}
	b := math.Vec3{Z: 1}

	ca, cb, ok := ClipNear(a, b, view)
	if !ok {
		t.Fatal("segment crossing the near plane should survive")
	}
	if ca != a {
		t.Errorf("front endpoint changed: %v", ca)
	}
	if !approx(view.TransformVec3(cb).Z, NearPlane, 1e-6) {
		t.Errorf("clipped endpoint z = %v, want %v", cb.Z, NearPlane)
	}

	// Order of endpoints must not matter.
	cb2, ca2, ok := ClipNear(b, a, view)
	if !ok || ca2 != a || !approx(cb2.Z, NearPlane, 1e-6) {
		t.Errorf("reversed clip = %v %v %v", cb2, ca2, ok)
	}

	if _, _, ok := ClipNear(math.Vec3{Z: 1}, math.Vec3{Z: 2}, view); ok {
		t.Error("segment fully behind should be dropped")
	}

	front1, front2 := math.Vec3{X: 1, Z: -2}, math.Vec3{X: -1, Z: -3}
	g1, g2, ok := ClipNear(front1, front2, view)
	if !ok || g1 != front1 || g2 != front2 {
		t.Error("segment fully in front should pass unchanged")
	}
}

func TestClipNearInterpolatesInModelSpace(t *testing.T) {
	// Model rotates 90 degrees about Y, camera sits at z=5 looking down -Z.
	model := math.RotateY(math.Radians(90))
	view := math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.UnitY)
	mv := view.Mul(model)

	// Model-space X maps to world -Z, so these straddle the camera plane.
	a := math.Vec3{X: 0}
	b := math.Vec3{X: -10}

	_, cb, ok := ClipNear(a, b, mv)
	if !ok {
		t.Fatal("expected partial clip")
	}
	if z := mv.TransformVec3(cb).Z; !approx(z, NearPlane, 1e-4) {
		t.Errorf("camera-space z of clipped point = %v, want %v", z, NearPlane)
	}
}

func TestProjectOriginToCenter(t *testing.T) {
	cam := camera.NewFlyCamera(math.Vec3{Z: 5}, math.Vec3{}, math.UnitY)
	vp := Viewport{Width: 1920, Height: 1080}
	mvp := cam.ProjectionMatrix(vp.Width, vp.Height).Mul(cam.ViewMatrix())

	p := vp.Project(math.Vec3{}, mvp)
	if !approx(p.X, 960, 1e-2) || !approx(p.Y, 540, 1e-2) {
		t.Errorf("origin -> (%v, %v), want (960, 540)", p.X, p.Y)
	}
	if p.Z <= -1 || p.Z >= 1 {
		t.Errorf("depth %v should be inside NDC range", p.Z)
	}
}

func TestProjectZeroW(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	var zero math.Mat4

	if p := vp.Project(math.Vec3{X: 1, Y: 2, Z: 3}, zero); !p.IsNaN() {
		t.Errorf("w=0 should give NaN sentinel, got %v", p)
	}
}

func TestProjectYFlip(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	id := math.Identity()

	top := vp.Project(math.Vec3{X: -1, Y: 1}, id)
	if top.X != 0 || top.Y != 0 {
		t.Errorf("NDC (-1,1) -> %v, want (0,0)", top)
	}
	bottom := vp.Project(math.Vec3{X: 1, Y: -1, Z: 0.5}, id)
	if bottom.X != 200 || bottom.Y != 100 || bottom.Z != 0.5 {
		t.Errorf("NDC (1,-1,0.5) -> %v, want (200,100,0.5)", bottom)
	}
}

func TestOutcode(t *testing.T) {
	vp := Viewport{Width: 640, Height: 480}
	tests := []struct {
		name string
		p    math.Vec2
		want int
	}{
		{"inside", math.Vec2{X: 10, Y: 10}, 0},
		{"corner", math.Vec2{X: 639, Y: 479}, 0},
		{"last pixel interior", math.Vec2{X: 639.5, Y: 479.5}, 0},
		{"right edge", math.Vec2{X: 640, Y: 479.5}, OutRight},
		{"left", math.Vec2{X: -1, Y: 10}, OutLeft},
		{"right", math.Vec2{X: 640, Y: 10}, OutRight},
		{"top", math.Vec2{X: 10, Y: -5}, OutTop},
		{"bottom", math.Vec2{X: 10, Y: 480}, OutBottom},
		{"top-left", math.Vec2{X: -1, Y: -1}, OutTop | OutLeft},
		{"bottom-right", math.Vec2{X: 700, Y: 500}, OutBottom | OutRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.Outcode(tt.p); got != tt.want {
				t.Errorf("Outcode(%v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestClipSegmentAcceptInside(t *testing.T) {
	vp := Viewport{Width: 1920, Height: 1080}
	p1 := math.Vec2{X: 100, Y: 200}
	p2 := math.Vec2{X: 1500, Y: 900}

	if !vp.ClipSegment(&p1, &p2) {
		t.Fatal("inside segment should be accepted")
	}
	if p1 != (math.Vec2{X: 100, Y: 200}) || p2 != (math.Vec2{X: 1500, Y: 900}) {
		t.Errorf("inside segment modified: %v %v", p1, p2)
	}
}

func TestClipSegmentRejectLeft(t *testing.T) {
	vp := Viewport{Width: 1920, Height: 1080}
	p1 := math.Vec2{X: -50, Y: 10}
	p2 := math.Vec2{X: -1, Y: 900}

	if vp.ClipSegment(&p1, &p2) {
		t.Error("segment left of the viewport should be rejected")
	}
}

func TestClipSegmentPartial(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	edge := gomath.Nextafter32(100, 0)

	p1 := math.Vec2{X: -50, Y: 50}
	p2 := math.Vec2{X: 150, Y: 50}
	if !vp.ClipSegment(&p1, &p2) {
		t.Fatal("horizontal crossing segment should be accepted")
	}
	if p1 != (math.Vec2{X: 0, Y: 50}) || p2 != (math.Vec2{X: edge, Y: 50}) {
		t.Errorf("clipped to %v %v, want (0,50) (%v,50)", p1, p2, edge)
	}
	if vp.Outcode(p2) != 0 {
		t.Errorf("clipped endpoint %v should be inside", p2)
	}

	d1 := math.Vec2{X: -50, Y: -50}
	d2 := math.Vec2{X: 150, Y: 150}
	if !vp.ClipSegment(&d1, &d2) {
		t.Fatal("diagonal should be accepted")
	}
	if !approx(d1.X, 0, 1e-4) || !approx(d1.Y, 0, 1e-4) ||
		!approx(d2.X, 100, 1e-4) || !approx(d2.Y, 100, 1e-4) {
		t.Errorf("diagonal clipped to %v %v", d1, d2)
	}

	// Both outside on different sides but missing the rectangle.
	m1 := math.Vec2{X: -10, Y: 5}
	m2 := math.Vec2{X: 5, Y: -10}
	if vp.ClipSegment(&m1, &m2) {
		t.Errorf("corner-missing segment should be rejected, got %v %v", m1, m2)
	}
}

func TestClipSegmentAcceptLastPixel(t *testing.T) {
	vp := Viewport{Width: 1920, Height: 1080}
	p1 := math.Vec2{X: 1919.5, Y: 1079.5}
	p2 := math.Vec2{X: 100, Y: 100}

	if !vp.ClipSegment(&p1, &p2) {
		t.Fatal("segment inside the half-open rectangle should be accepted")
	}
	if p1 != (math.Vec2{X: 1919.5, Y: 1079.5}) || p2 != (math.Vec2{X: 100, Y: 100}) {
		t.Errorf("inside segment modified: %v %v", p1, p2)
	}
}

func TestClipSegmentInfinite(t *testing.T) {
	vp := Viewport{Width: 1920, Height: 1080}
	inf := float32(gomath.Inf(1))
	tests := []struct {
		name   string
		p1, p2 math.Vec2
	}{
		{"positive x", math.Vec2{X: inf, Y: 10}, math.Vec2{X: 10, Y: 20}},
		{"negative y", math.Vec2{X: 10, Y: -inf}, math.Vec2{X: 10, Y: 20}},
		{"second endpoint", math.Vec2{X: 10, Y: 20}, math.Vec2{X: -inf, Y: inf}},
		{"overflowing slope", math.Vec2{X: -3e38, Y: -3e38}, math.Vec2{X: 3e38, Y: 3e38}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, p2 := tt.p1, tt.p2
			if vp.ClipSegment(&p1, &p2) {
				t.Errorf("segment should be rejected, got %v %v", p1, p2)
			}
		})
	}
}

func TestClipSegmentNaN(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	nan := float32(gomath.NaN())
	p1 := math.Vec2{X: nan, Y: 10}
	p2 := math.Vec2{X: 10, Y: 10}

	if vp.ClipSegment(&p1, &p2) {
		t.Error("NaN endpoint should be rejected")
	}
}

func TestClipSegmentIdempotent(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	in1, in2 := math.Vec2{X: -300, Y: 100}, math.Vec2{X: 900, Y: 700}

	a1, a2 := in1, in2
	okA := vp.ClipSegment(&a1, &a2)
	b1, b2 := in1, in2
	okB := vp.ClipSegment(&b1, &b2)

	if okA != okB || a1 != b1 || a2 != b2 {
		t.Errorf("clipping twice differs: %v %v %v vs %v %v %v", okA, a1, a2, okB, b1, b2)
	}

	// Clipping an already clipped segment is a no-op.
	c1, c2 := a1, a2
	if !vp.ClipSegment(&c1, &c2) || c1 != a1 || c2 != a2 {
		t.Errorf("re-clip changed %v %v to %v %v", a1, a2, c1, c2)
	}
}
