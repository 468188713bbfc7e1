package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks values that would otherwise fail much later, e.g. a
// zero viewport height or an inverted depth range. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		bad("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FPSLimit < 0 {
		bad("graphics.fps_limit %d is negative", c.Graphics.FPSLimit)
	}

	switch c.Camera.Kind {
	case CameraFly, CameraOrbit:
	default:
		bad("camera.kind %q (want %s or %s)", c.Camera.Kind, CameraFly, CameraOrbit)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		bad("camera depth range near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}

	if !c.Rotation.IsFinite() {
		bad("rotation values must be finite: %+v", c.Rotation)
	}

	if c.Render.Frames < 1 {
		bad("render.frames %d must be at least 1", c.Render.Frames)
	}
	switch strings.ToLower(c.Render.ScreenshotFormat) {
	case "", "png", "bmp":
	default:
		bad("render.screenshot_format %q (want png or bmp)", c.Render.ScreenshotFormat)
	}

	return errors.Join(errs...)
}
