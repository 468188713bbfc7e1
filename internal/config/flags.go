package config

import (
	"flag"
	"fmt"

	"github.com/Faultbox/quatviz/pkg/rotation"
)

// Flags holds command-line overrides. Zero values mean "not set".
type Flags struct {
	Config     string
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Model      string
	Mode       string
	Output     string
	Frames     int
}

// RegisterFlags binds the common flags to fs. Pass flag.CommandLine for
// single-command binaries or a subcommand FlagSet.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window or image width")
	fs.IntVar(&f.Height, "height", 0, "Window or image height")
	fs.StringVar(&f.Model, "model", "", "OBJ model to load (default: cube)")
	fs.StringVar(&f.Mode, "mode", "", "Rotation mode: quaternion, euler or taitbryan")
	fs.StringVar(&f.Output, "out", "", "Output image path (.png or .bmp)")
	fs.IntVar(&f.Frames, "frames", 0, "Number of animation frames to render")
	return f
}

// ParseFlags registers the flags on the default command line and parses it.
// Call this early in main().
func ParseFlags() *Flags {
	f := RegisterFlags(flag.CommandLine)
	flag.Parse()
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.Model != "" {
		cfg.Scene.Model = f.Model
	}
	if f.Mode != "" {
		mode, err := rotation.ParseMode(f.Mode)
		if err != nil {
			return fmt.Errorf("-mode: %w", err)
		}
		cfg.Rotation.Mode = mode
	}
	if f.Output != "" {
		cfg.Render.Output = f.Output
	}
	if f.Frames > 0 {
		cfg.Render.Frames = f.Frames
	}
	return nil
}
