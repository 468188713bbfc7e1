// Package rotation models the three interchangeable ways of describing an
// orientation: axis-angle (quaternion), Euler Z-Y-X and Tait-Bryan
// yaw-pitch-roll. Each variant converts to a model matrix and to a set of
// indicator axes.
package rotation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/quatviz/pkg/math"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown rotation mode")

// Mode selects a rotation representation.
type Mode int

// Rotation modes.
const (
	ModeQuaternion Mode = iota
	ModeEulerZYX
	ModeTaitBryan
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeQuaternion:
		return "quaternion"
	case ModeEulerZYX:
		return "euler"
	case ModeTaitBryan:
		return "taitbryan"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return (m + 1) % 3
}

// ParseMode accepts the canonical names and a few aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quaternion", "quat", "axis-angle", "axisangle":
		return ModeQuaternion, nil
	case "euler", "zyx", "euler-zyx":
		return ModeEulerZYX, nil
	case "taitbryan", "tait-bryan", "ypr", "yaw-pitch-roll":
		return ModeTaitBryan, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Axes holds three indicator directions and their labels.
// They are for drawing only and play no part in the transform.
type Axes struct {
	Vectors [3]math.Vec3
	Labels  [3]string
}

// Spec is one rotation description. Implementations are plain values and
// never mutate themselves.
type Spec interface {
	Mode() Mode
	// Matrix returns the rotation as a model matrix.
	Matrix() math.Mat4
	// Axes returns indicator axes for the current parameters.
	Axes() Axes
	// Interpolate returns the rotation scaled to fraction t of the way
	// from identity, for animating toward the full orientation.
	Interpolate(t float32) Spec
}

// ToMatrix converts any spec to a model matrix.
func ToMatrix(s Spec) math.Mat4 {
	if s == nil {
		return math.Identity()
	}
	return s.Matrix()
}

// AxesOf returns the indicator axes of any spec.
func AxesOf(s Spec) Axes {
	if s == nil {
		return Axes{}
	}
	return s.Axes()
}

// AxisAngle rotates by AngleDeg degrees about Axis using a quaternion.
// Axis is used exactly as given; see Normalized.
type AxisAngle struct {
	Axis     math.Vec3
	AngleDeg float32
}

// Mode implements Spec.
func (a AxisAngle) Mode() Mode { return ModeQuaternion }

// Quat returns the quaternion for the rotation.
func (a AxisAngle) Quat() math.Quat {
	return math.QuatFromAxisAngle(a.Axis, math.Radians(a.AngleDeg))
}

// Matrix implements Spec.
func (a AxisAngle) Matrix() math.Mat4 {
	return a.Quat().ToMat4()
}

// Axes implements Spec. The first axis is the rotation axis, followed by
// world X and world Y carried along by the rotation.
func (a AxisAngle) Axes() Axes {
	q := a.Quat()
	return Axes{
		Vectors: [3]math.Vec3{a.Axis, q.Rotate(math.UnitX), q.Rotate(math.UnitY)},
		Labels:  [3]string{"axis", "x'", "y'"},
	}
}

// Interpolate implements Spec by slerping from identity.
func (a AxisAngle) Interpolate(t float32) Spec {
	return quatSpec{q: math.QuatIdentity().Slerp(a.Quat(), t), axis: a.Axis}
}

// Normalized returns a copy with a unit-length axis. A zero axis becomes a
// zero rotation about world Z.
func (a AxisAngle) Normalized() AxisAngle {
	n := a.Axis.Normalize()
	if n == (math.Vec3{}) {
		return AxisAngle{Axis: math.UnitZ}
	}
	return AxisAngle{Axis: n, AngleDeg: a.AngleDeg}
}

// quatSpec is an intermediate animation frame of an AxisAngle rotation.
type quatSpec struct {
	q    math.Quat
	axis math.Vec3
}

func (s quatSpec) Mode() Mode         { return ModeQuaternion }
func (s quatSpec) Matrix() math.Mat4 { return s.q.ToMat4() }

func (s quatSpec) Axes() Axes {
	return Axes{
		Vectors: [3]math.Vec3{s.axis, s.q.Rotate(math.UnitX), s.q.Rotate(math.UnitY)},
		Labels:  [3]string{"axis", "x'", "y'"},
	}
}

func (s quatSpec) Interpolate(t float32) Spec {
	return quatSpec{q: math.QuatIdentity().Slerp(s.q, t), axis: s.axis}
}

// EulerZYX is an extrinsic Z-Y-X rotation in degrees.
type EulerZYX struct {
	Alpha, Beta, Gamma float32
}

// Mode implements Spec.
func (e EulerZYX) Mode() Mode { return ModeEulerZYX }

// Matrix implements Spec.
func (e EulerZYX) Matrix() math.Mat4 {
	return math.EulerZYX(e.Alpha, e.Beta, e.Gamma)
}

// Axes implements Spec.
func (e EulerZYX) Axes() Axes {
	z, y, x := math.EulerZYXAxes(e.Alpha, e.Beta, e.Gamma)
	return Axes{
		Vectors: [3]math.Vec3{z, y, x},
		Labels:  [3]string{"alpha (Z)", "beta (Y)", "gamma (X)"},
	}
}

// Interpolate implements Spec by scaling every angle.
func (e EulerZYX) Interpolate(t float32) Spec {
	return EulerZYX{Alpha: e.Alpha * t, Beta: e.Beta * t, Gamma: e.Gamma * t}
}

// TaitBryan is an intrinsic yaw-pitch-roll rotation in degrees.
type TaitBryan struct {
	Yaw, Pitch, Roll float32
}

// Mode implements Spec.
func (tb TaitBryan) Mode() Mode { return ModeTaitBryan }

// Matrix implements Spec.
func (tb TaitBryan) Matrix() math.Mat4 {
	return math.TaitBryan(tb.Yaw, tb.Pitch, tb.Roll)
}

// Axes implements Spec.
func (tb TaitBryan) Axes() Axes {
	yaw, pitch, roll := math.TaitBryanAxes(tb.Yaw, tb.Pitch, tb.Roll)
	return Axes{
		Vectors: [3]math.Vec3{yaw, pitch, roll},
		Labels:  [3]string{"yaw", "pitch", "roll"},
	}
}

// Interpolate implements Spec by scaling every angle.
func (tb TaitBryan) Interpolate(t float32) Spec {
	return TaitBryan{Yaw: tb.Yaw * t, Pitch: tb.Pitch * t, Roll: tb.Roll * t}
}
