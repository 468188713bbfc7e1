package camera

import (
	gomath "math"

	"github.com/Faultbox/quatviz/pkg/math"
)

// FlyCamera is a free-look camera driven by keyboard movement and mouse look.
// Orientation is kept as yaw and pitch in degrees; front, right and up are
// derived from them.
type FlyCamera struct {
	Lens

	position math.Vec3
	worldUp  math.Vec3

	front math.Vec3
	right math.Vec3
	up    math.Vec3

	Yaw   float32
	Pitch float32

	MoveSpeed        float32 // units per second
	MouseSensitivity float32 // degrees per pixel
}

// NewFlyCamera creates a camera at pos looking towards target.
func NewFlyCamera(pos, target, up math.Vec3) *FlyCamera {
	c := &FlyCamera{
		Lens:             DefaultLens(),
		position:         pos,
		worldUp:          up.Normalize(),
		MoveSpeed:        20.5,
		MouseSensitivity: 0.1,
	}
	c.LookAt(target)
	return c
}

// LookAt turns the camera towards target, keeping its position.
func (c *FlyCamera) LookAt(target math.Vec3) {
	dir := target.Sub(c.position).Normalize()
	c.Yaw = math.Degrees(float32(gomath.Atan2(float64(dir.Z), float64(dir.X))))
	c.Pitch = math.Degrees(float32(gomath.Asin(float64(clamp(dir.Y, -1, 1)))))
	c.clampPitch()
	c.updateVectors()
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() math.Vec3 {
	return c.position
}

// SetPosition moves the camera without changing its orientation.
func (c *FlyCamera) SetPosition(pos math.Vec3) {
	c.position = pos
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 {
	return c.front
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the perspective matrix for the viewport.
func (c *FlyCamera) ProjectionMatrix(width, height int) math.Mat4 {
	return c.Projection(width, height)
}

// Move translates the camera. forward, right and up are in [-1, 1] and
// are scaled by MoveSpeed * dt. Up/down follows the world up vector.
func (c *FlyCamera) Move(forward, right, up, dt float32) {
	v := c.MoveSpeed * dt
	c.position = c.position.
		Add(c.front.Scale(forward * v)).
		Add(c.right.Scale(right * v)).
		Add(c.worldUp.Scale(up * v))
}

// HandleMouseMovement applies a mouse delta in pixels. dy is positive
// when the mouse moves up.
func (c *FlyCamera) HandleMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity
	c.clampPitch()
	c.updateVectors()
}

func (c *FlyCamera) clampPitch() {
	c.Pitch = clamp(c.Pitch, -89, 89)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	c.front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
