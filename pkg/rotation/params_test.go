package rotation

import (
	gomath "math"
	"testing"
	"time"

	"github.com/Faultbox/quatviz/pkg/math"
)

func TestParamsSpecPerMode(t *testing.T) {
	p := Params{
		Axis:  math.Vec3{Y: 2},
		Angle: 90,
		Alpha: 1, Beta: 2, Gamma: 3,
		Yaw: 4, Pitch: 5, Roll: 6,
	}

	p.Mode = ModeQuaternion
	aa, ok := p.Spec().(AxisAngle)
	if !ok {
		t.Fatalf("quaternion mode should build AxisAngle, got %T", p.Spec())
	}
	if !aa.Axis.ApproxEqual(math.UnitY, 1e-6) {
		t.Errorf("axis should be normalized at the boundary, got %v", aa.Axis)
	}
	if p.Axis != (math.Vec3{Y: 2}) {
		t.Error("Spec must not mutate the raw fields")
	}

	p.Mode = ModeEulerZYX
	if got := p.Spec(); got != (EulerZYX{Alpha: 1, Beta: 2, Gamma: 3}) {
		t.Errorf("euler spec = %#v", got)
	}

	p.Mode = ModeTaitBryan
	if got := p.Spec(); got != (TaitBryan{Yaw: 4, Pitch: 5, Roll: 6}) {
		t.Errorf("tait-bryan spec = %#v", got)
	}
}

func TestParamsNudge(t *testing.T) {
	p := DefaultParams()
	p.Nudge(0, 2)
	if p.Angle != 55 {
		t.Errorf("angle after +2 steps = %v, want 55", p.Angle)
	}
	p.Nudge(1, 1)
	if absf(p.Axis.X-AxisStep) > 1e-6 {
		t.Errorf("axis X after +1 step = %v", p.Axis.X)
	}

	p.Mode = ModeEulerZYX
	p.Nudge(2, -3)
	if p.Gamma != -15 {
		t.Errorf("gamma = %v, want -15", p.Gamma)
	}
	if got := p.Values(); got != [3]float32{0, 0, -15} {
		t.Errorf("Values = %v", got)
	}

	p.Mode = ModeTaitBryan
	p.Yaw = 355
	p.Nudge(0, 1)
	if p.Yaw != 0 {
		t.Errorf("yaw should wrap to 0, got %v", p.Yaw)
	}
}

func TestParamsNudgeExtremeAngles(t *testing.T) {
	inf := float32(gomath.Inf(1))
	tests := []struct {
		name  string
		alpha float32
		want  float32
		check bool
	}{
		{"large", 1e10, 280, true},
		{"large negative", -1e10, -280, true},
		{"positive infinity", inf, 0, false},
		{"negative infinity", -inf, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Mode: ModeEulerZYX, Alpha: tt.alpha}

			done := make(chan struct{})
			go func() {
				p.Nudge(0, 1)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("Nudge did not return")
			}

			if tt.check && p.Alpha != tt.want {
				t.Errorf("alpha = %v, want %v", p.Alpha, tt.want)
			}
		})
	}
}

func TestWrapDeg(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-365, -5},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := wrapDeg(tt.in); got != tt.want {
			t.Errorf("wrapDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParamsIsFinite(t *testing.T) {
	if !DefaultParams().IsFinite() {
		t.Error("default params should be finite")
	}
	p := DefaultParams()
	p.Roll = float32(gomath.Inf(-1))
	if p.IsFinite() {
		t.Error("infinite roll should not be finite")
	}
	p = DefaultParams()
	p.Axis.Z = float32(gomath.NaN())
	if p.IsFinite() {
		t.Error("NaN axis should not be finite")
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
