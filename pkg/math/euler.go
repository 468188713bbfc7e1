package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math.Pi
}

func sincos(deg float32) (s, c float32) {
	sf, cf := math.Sincos(float64(Radians(deg)))
	return float32(sf), float32(cf)
}

// zyx builds Rz(a) * Ry(b) * Rx(g) from the sines and cosines of the three angles.
func zyx(sa, ca, sb, cb, sg, cg float32) Mat4 {
	return FromRows3([3][3]float32{
		{ca * cb, ca*sb*sg - sa*cg, ca*sb*cg + sa*sg},
		{sa * cb, sa*sb*sg + ca*cg, sa*sb*cg - ca*sg},
		{-sb, cb * sg, cb * cg},
	})
}

// EulerZYX returns the rotation Rz(alpha) * Ry(beta) * Rx(gamma).
// Angles are in degrees.
func EulerZYX(alpha, beta, gamma float32) Mat4 {
	sa, ca := sincos(alpha)
	sb, cb := sincos(beta)
	sg, cg := sincos(gamma)
	return zyx(sa, ca, sb, cb, sg, cg)
}

// EulerZYXAxes returns the three axes the Euler angles rotate about, for
// drawing indicators. z is world Z, y is world Y turned by alpha about Z,
// and x is world X turned by alpha and then beta.
func EulerZYXAxes(alpha, beta, gamma float32) (z, y, x Vec3) {
	sa, ca := sincos(alpha)
	sb, cb := sincos(beta)
	z = UnitZ
	y = Vec3{-sa, ca, 0}
	x = Vec3{ca * cb, sa * cb, -sb}
	return z, y, x
}

// TaitBryan returns the rotation for intrinsic yaw about Z, then pitch about
// the new Y, then roll about the newest X. The closed form matches EulerZYX;
// the two are kept apart so each representation can be shown on its own.
// Angles are in degrees.
func TaitBryan(yaw, pitch, roll float32) Mat4 {
	sy, cy := sincos(yaw)
	sp, cp := sincos(pitch)
	sr, cr := sincos(roll)
	return zyx(sy, cy, sp, cp, sr, cr)
}

// TaitBryanAxes returns the yaw, pitch and roll axes for drawing indicators.
func TaitBryanAxes(yaw, pitch, roll float32) (yawAxis, pitchAxis, rollAxis Vec3) {
	sy, cy := sincos(yaw)
	sp, cp := sincos(pitch)
	yawAxis = UnitZ
	pitchAxis = Vec3{-sy, cy, 0}
	rollAxis = Vec3{cy * cp, sy * cp, -sp}
	return yawAxis, pitchAxis, rollAxis
}
