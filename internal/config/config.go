// Package config handles application configuration loading and management.
package config

import (
	"github.com/Faultbox/quatviz/pkg/math"
	"github.com/Faultbox/quatviz/pkg/rotation"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig  `yaml:"graphics"`
	Camera   CameraConfig    `yaml:"camera"`
	Rotation rotation.Params `yaml:"rotation"`
	Scene    SceneConfig     `yaml:"scene"`
	Render   RenderConfig    `yaml:"render"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display settings for the interactive windows.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// Camera kinds.
const (
	CameraFly   = "fly"
	CameraOrbit = "orbit"
)

// CameraConfig holds the initial camera placement and controls.
type CameraConfig struct {
	Kind             string    `yaml:"kind"` // "fly" or "orbit"
	Position         math.Vec3 `yaml:"position"`
	Target           math.Vec3 `yaml:"target"`
	Up               math.Vec3 `yaml:"up"`
	Near             float32   `yaml:"near"`
	Far              float32   `yaml:"far"`
	MoveSpeed        float32   `yaml:"move_speed"`
	MouseSensitivity float32   `yaml:"mouse_sensitivity"`
}

// SceneConfig holds what is drawn and in which colors.
type SceneConfig struct {
	Model          string  `yaml:"model"` // OBJ path; empty means the built-in cube
	ShowAxes       bool    `yaml:"show_axes"`
	ShowIndicators bool    `yaml:"show_indicators"`
	ShowReference  bool    `yaml:"show_reference"` // unrotated copy of the mesh
	ShowBBox       bool    `yaml:"show_bbox"`
	ShowGrid       bool    `yaml:"show_grid"`
	AxisLength     float32 `yaml:"axis_length"`
	Background     Color   `yaml:"background"`
	Reference      Color   `yaml:"reference"`
	Rotated        Color   `yaml:"rotated"`
}

// RenderConfig holds offscreen rendering and screenshot settings.
type RenderConfig struct {
	Output           string  `yaml:"output"`
	LineWidth        float32 `yaml:"line_width"`
	Frames           int     `yaml:"frames"`
	ScreenshotDir    string  `yaml:"screenshot_dir"`
	ScreenshotFormat string  `yaml:"screenshot_format"` // "png" or "bmp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 60,
		},
		Camera: CameraConfig{
			Kind:             CameraFly,
			Position:         math.Vec3{Z: 5},
			Up:               math.UnitY,
			Near:             0.1,
			Far:              100,
			MoveSpeed:        20.5,
			MouseSensitivity: 0.1,
		},
		Rotation: rotation.DefaultParams(),
		Scene: SceneConfig{
			ShowAxes:       true,
			ShowIndicators: true,
			ShowReference:  true,
			AxisLength:     1.5,
			Background:     Color{R: 20, G: 20, B: 24, A: 255},
			Reference:      Color{R: 110, G: 110, B: 120, A: 255},
			Rotated:        Color{R: 255, G: 255, B: 255, A: 255},
		},
		Render: RenderConfig{
			Output:           "quatviz.png",
			LineWidth:        1.5,
			Frames:           1,
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
