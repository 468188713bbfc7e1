package app

import (
	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/camera"
	"github.com/Faultbox/quatviz/internal/engine/mesh"
)

// NewFlyCamera builds the free-look camera from configuration.
func NewFlyCamera(cc config.CameraConfig) *camera.FlyCamera {
	c := camera.NewFlyCamera(cc.Position, cc.Target, cc.Up)
	applyLens(&c.Lens, cc)
	if cc.MoveSpeed > 0 {
		c.MoveSpeed = cc.MoveSpeed
	}
	if cc.MouseSensitivity > 0 {
		c.MouseSensitivity = cc.MouseSensitivity
	}
	return c
}

// NewOrbitCamera builds an orbit camera framing b.
func NewOrbitCamera(cc config.CameraConfig, b mesh.Bounds) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	applyLens(&c.Lens, cc)
	c.FitToBounds(b.Min, b.Max)
	return c
}

func applyLens(l *camera.Lens, cc config.CameraConfig) {
	if cc.Near > 0 {
		l.Near = cc.Near
	}
	if cc.Far > l.Near {
		l.Far = cc.Far
	}
}
