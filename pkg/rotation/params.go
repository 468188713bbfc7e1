package rotation

import (
	gomath "math"

	"github.com/Faultbox/quatviz/pkg/math"
)

// Nudge step sizes.
const (
	AngleStep = 5.0 // degrees
	AxisStep  = 0.1
)

// Params is the raw numeric state for all three representations plus the
// active mode. An editor owns and mutates it; Spec only reads it.
type Params struct {
	Mode Mode `yaml:"mode"`

	// Quaternion mode.
	Axis  math.Vec3 `yaml:"axis"`
	Angle float32   `yaml:"angle"`

	// Euler Z-Y-X mode.
	Alpha float32 `yaml:"alpha"`
	Beta  float32 `yaml:"beta"`
	Gamma float32 `yaml:"gamma"`

	// Tait-Bryan mode.
	Yaw   float32 `yaml:"yaw"`
	Pitch float32 `yaml:"pitch"`
	Roll  float32 `yaml:"roll"`
}

// DefaultParams returns a 45 degree turn about world Y with every angle
// field zeroed.
func DefaultParams() Params {
	return Params{
		Mode:  ModeQuaternion,
		Axis:  math.UnitY,
		Angle: 45,
	}
}

// Spec builds the variant for the active mode. The quaternion axis is
// normalized here, at the editor boundary.
func (p Params) Spec() Spec {
	switch p.Mode {
	case ModeEulerZYX:
		return EulerZYX{Alpha: p.Alpha, Beta: p.Beta, Gamma: p.Gamma}
	case ModeTaitBryan:
		return TaitBryan{Yaw: p.Yaw, Pitch: p.Pitch, Roll: p.Roll}
	default:
		return AxisAngle{Axis: p.Axis, AngleDeg: p.Angle}.Normalized()
	}
}

// Values returns the three editable values of the active mode.
// In quaternion mode they are the angle and the axis X and Z components.
func (p Params) Values() [3]float32 {
	switch p.Mode {
	case ModeEulerZYX:
		return [3]float32{p.Alpha, p.Beta, p.Gamma}
	case ModeTaitBryan:
		return [3]float32{p.Yaw, p.Pitch, p.Roll}
	default:
		return [3]float32{p.Angle, p.Axis.X, p.Axis.Z}
	}
}

// Nudge moves editable value i (0..2) of the active mode by steps.
// Angles move by AngleStep and wrap into (-360, 360); axis components move
// by AxisStep.
func (p *Params) Nudge(i int, steps int) {
	d := float32(steps)
	switch p.Mode {
	case ModeEulerZYX:
		switch i {
		case 0:
			p.Alpha = wrapDeg(p.Alpha + d*AngleStep)
		case 1:
			p.Beta = wrapDeg(p.Beta + d*AngleStep)
		case 2:
			p.Gamma = wrapDeg(p.Gamma + d*AngleStep)
		}
	case ModeTaitBryan:
		switch i {
		case 0:
			p.Yaw = wrapDeg(p.Yaw + d*AngleStep)
		case 1:
			p.Pitch = wrapDeg(p.Pitch + d*AngleStep)
		case 2:
			p.Roll = wrapDeg(p.Roll + d*AngleStep)
		}
	default:
		switch i {
		case 0:
			p.Angle = wrapDeg(p.Angle + d*AngleStep)
		case 1:
			p.Axis.X += d * AxisStep
		case 2:
			p.Axis.Z += d * AxisStep
		}
	}
}

// IsFinite reports whether every numeric field is neither NaN nor infinite.
func (p Params) IsFinite() bool {
	for _, v := range [...]float32{
		p.Axis.X, p.Axis.Y, p.Axis.Z, p.Angle,
		p.Alpha, p.Beta, p.Gamma,
		p.Yaw, p.Pitch, p.Roll,
	} {
		if gomath.IsNaN(float64(v)) || gomath.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// wrapDeg reduces a into (-360, 360), keeping its sign. Non-finite input
// stays non-finite.
func wrapDeg(a float32) float32 {
	return float32(gomath.Mod(float64(a), 360))
}
