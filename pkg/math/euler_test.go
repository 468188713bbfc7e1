package math

import (
	"testing"
)

// assertOrthogonal checks R^T * R = I on the 3x3 block and that lengths are kept.
func assertOrthogonal(t *testing.T, name string, r Mat4) {
	t.Helper()
	if !r.Transpose().Mul(r).ApproxEqual(Identity(), 1e-5) {
		t.Errorf("%s: R^T*R is not identity: %v", name, r.Transpose().Mul(r))
	}
	v := Vec3{0.3, -1.2, 2.5}
	if l := r.TransformDirection(v).Length(); absf(l-v.Length()) > 1e-5 {
		t.Errorf("%s: length changed from %f to %f", name, v.Length(), l)
	}
}

var angleTriples = [][3]float32{
	{0, 0, 0},
	{90, 0, 0},
	{0, 90, 0},
	{0, 0, 90},
	{30, 45, 60},
	{-120, 10, 170},
	{359, -89, 45},
	{12.5, 77, -33},
}

func TestEulerZYXOrthogonal(t *testing.T) {
	for _, a := range angleTriples {
		assertOrthogonal(t, "EulerZYX", EulerZYX(a[0], a[1], a[2]))
	}
}

func TestTaitBryanOrthogonal(t *testing.T) {
	for _, a := range angleTriples {
		assertOrthogonal(t, "TaitBryan", TaitBryan(a[0], a[1], a[2]))
	}
}

func TestEulerZYXMatchesComposition(t *testing.T) {
	for _, a := range angleTriples {
		want := RotateZ(Radians(a[0])).Mul(RotateY(Radians(a[1]))).Mul(RotateX(Radians(a[2])))
		if got := EulerZYX(a[0], a[1], a[2]); !got.ApproxEqual(want, 1e-5) {
			t.Errorf("EulerZYX%v = %v, want Rz*Ry*Rx = %v", a, got, want)
		}
	}
}

func TestEulerZeroIsIdentity(t *testing.T) {
	if !EulerZYX(0, 0, 0).ApproxEqual(Identity(), 1e-7) {
		t.Error("EulerZYX(0,0,0) should be identity")
	}
	if !TaitBryan(0, 0, 0).ApproxEqual(Identity(), 1e-7) {
		t.Error("TaitBryan(0,0,0) should be identity")
	}
}

func TestEulerZYXAxes(t *testing.T) {
	z, y, x := EulerZYXAxes(90, 0, 0)
	if z != UnitZ {
		t.Errorf("z axis = %v, want world Z", z)
	}
	if !y.ApproxEqual(Vec3{-1, 0, 0}, 1e-6) {
		t.Errorf("y axis after alpha=90 = %v, want (-1,0,0)", y)
	}
	if !x.ApproxEqual(Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("x axis after alpha=90 = %v, want (0,1,0)", x)
	}

	// The x indicator is the image of world X under the Z and Y turns.
	for _, a := range angleTriples {
		_, _, x := EulerZYXAxes(a[0], a[1], a[2])
		want := RotateZ(Radians(a[0])).Mul(RotateY(Radians(a[1]))).TransformDirection(UnitX)
		if !x.ApproxEqual(want, 1e-5) {
			t.Errorf("x axis for %v = %v, want %v", a, x, want)
		}
	}
}

func TestTaitBryanAxes(t *testing.T) {
	yawAxis, pitchAxis, rollAxis := TaitBryanAxes(0, 90, 0)
	if yawAxis != UnitZ {
		t.Errorf("yaw axis = %v, want world Z", yawAxis)
	}
	if !pitchAxis.ApproxEqual(UnitY, 1e-6) {
		t.Errorf("pitch axis = %v, want world Y", pitchAxis)
	}
	if !rollAxis.ApproxEqual(Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("roll axis after pitch=90 = %v, want (0,0,-1)", rollAxis)
	}
}

func TestRadiansDegrees(t *testing.T) {
	if absf(Radians(180)-3.1415927) > 1e-6 {
		t.Errorf("Radians(180) = %f", Radians(180))
	}
	if absf(Degrees(Radians(37))-37) > 1e-4 {
		t.Errorf("Degrees(Radians(37)) = %f", Degrees(Radians(37)))
	}
}
