package camera

import (
	gomath "math"

	"github.com/Faultbox/quatviz/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Lens

	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Lens:            DefaultLens(),
		Distance:        5.0,
		RotationX:       0.4,
		MinDistance:     0.5,
		MaxDistance:     80.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sx, cx := gomath.Sincos(float64(c.RotationX))
	sy, cy := gomath.Sincos(float64(c.RotationY))
	return c.Center.Add(math.Vec3{
		X: c.Distance * float32(cx*sy),
		Y: c.Distance * float32(sx),
		Z: c.Distance * float32(cx*cy),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.UnitY)
}

// ProjectionMatrix returns the perspective matrix for the viewport.
func (c *OrbitCamera) ProjectionMatrix(width, height int) math.Mat4 {
	return c.Projection(width, height)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point in the camera's horizontal frame.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sy, cy := gomath.Sincos(float64(c.RotationY))
	dirX, dirZ := float32(sy), float32(cy)
	rightX, rightZ := float32(cy), float32(-sy)

	// W moves into the scene
	c.Center.X += (-dirX*forward + rightX*right) * speed
	c.Center.Z += (-dirZ*forward + rightZ*right) * speed
	c.Center.Y += up * speed
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to keep it inside the vertical field of view.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	radius := max.Sub(min).Length() * 0.5
	if radius <= 0 {
		radius = 1
	}
	halfFOV := float64(math.Radians(FieldOfView)) / 2
	c.Distance = clamp(radius/float32(gomath.Sin(halfFOV))*1.1, c.MinDistance, c.MaxDistance)
	if c.Far < c.Distance+radius {
		c.Far = (c.Distance + radius) * 2
	}

	c.RotationX = 0.4
	c.RotationY = 0.6
}
