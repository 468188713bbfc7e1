// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/quatviz/pkg/math"
)

// Projection defaults shared by all cameras.
const (
	FieldOfView = 45.0 // vertical, degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Camera produces the view and projection matrices the wireframe
// pipeline consumes each frame.
type Camera interface {
	ViewMatrix() math.Mat4
	ProjectionMatrix(width, height int) math.Mat4
	Position() math.Vec3
}

// Lens holds the perspective parameters. The field of view is fixed.
type Lens struct {
	Near float32
	Far  float32
}

// DefaultLens returns near 0.1 and far 100.
func DefaultLens() Lens {
	return Lens{Near: DefaultNear, Far: DefaultFar}
}

// Projection returns the perspective matrix for a width x height
// viewport. A zero height is a caller error and is not guarded.
func (l Lens) Projection(width, height int) math.Mat4 {
	aspect := float32(width) / float32(height)
	return math.Perspective(math.Radians(FieldOfView), aspect, l.Near, l.Far)
}
