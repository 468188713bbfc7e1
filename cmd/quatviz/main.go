// quatviz is a CLI for rendering rotated wireframes and inspecting
// rotation matrices.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/app"
	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/mesh"
	"github.com/Faultbox/quatviz/internal/logger"
	"github.com/Faultbox/quatviz/pkg/math"
	"github.com/Faultbox/quatviz/pkg/rotation"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		cmdRender(args)
	case "info":
		cmdInfo(args)
	case "matrix", "m":
		cmdMatrix(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`quatviz - rotation wireframe renderer

Usage:
  quatviz <command> [options]

Commands:
  render [options]           Render the mesh before and after rotation
  info <file.obj>            Show mesh statistics and validation report
  matrix [options]           Print the active rotation matrix and axes
  config [path]              Write the effective configuration as YAML

Common options:
  -config <file>   -model <file.obj>   -mode quaternion|euler|taitbryan
  -width N -height N   -out <file.png|file.bmp>   -frames N   -debug

Examples:
  quatviz render -model teapot.obj -out teapot.png
  quatviz render -mode euler -frames 30 -out spin.png
  quatviz info teapot.obj
  quatviz matrix -mode taitbryan -config quatviz.yaml`)
}

// setup parses a subcommand's flags, loads the configuration and starts
// the logger.
func setup(fs *flag.FlagSet, args []string) *config.Config {
	f := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	bbox := fs.Bool("bbox", false, "Draw the mesh bounding box")
	grid := fs.Bool("grid", false, "Draw the ground grid")
	noRef := fs.Bool("no-reference", false, "Hide the unrotated mesh")
	cfg := setup(fs, args)
	defer logger.Sync()

	cfg.Scene.ShowBBox = cfg.Scene.ShowBBox || *bbox
	cfg.Scene.ShowGrid = cfg.Scene.ShowGrid || *grid
	if *noRef {
		cfg.Scene.ShowReference = false
	}

	m, err := app.LoadMesh(cfg.Scene.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	paths, stats, err := app.Render(cfg, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("render complete", zap.Int("frames", len(paths)), zap.Object("stats", stats))

	for _, p := range paths {
		fmt.Println(p)
	}
	if stats.HasProblems() {
		fmt.Fprintf(os.Stderr, "warning: skipped %d degenerate faces and %d bad indices\n",
			stats.DegenerateFaces, stats.BadIndices)
	}
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	verbose := fs.Bool("v", false, "List every skipped record")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: quatviz info [-v] <file.obj>")
		os.Exit(1)
	}

	m, warnings, err := mesh.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := m.Bounds()
	r := m.Validate()
	fmt.Printf("Model:    %s\n", fs.Arg(0))
	fmt.Printf("Vertices: %d\n", len(m.Vertices))
	fmt.Printf("Faces:    %d\n", r.Faces)
	fmt.Printf("Edges:    %d\n", r.Edges)
	fmt.Printf("Bounds:   %s .. %s\n", vec(b.Min), vec(b.Max))
	fmt.Printf("Center:   %s\n", vec(b.Center()))
	fmt.Printf("Radius:   %.4f\n", b.Radius())
	fmt.Printf("Report:   %s\n", r)
	fmt.Printf("Skipped:  %d records\n", len(warnings))

	if *verbose {
		for _, w := range warnings {
			fmt.Printf("  %s\n", w)
		}
	}
}

func cmdMatrix(args []string) {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	t := fs.Float64("t", 1, "Interpolation fraction from identity (0..1)")
	cfg := setup(fs, args)
	defer logger.Sync()

	spec := cfg.Rotation.Spec()
	vals := cfg.Rotation.Values()
	fmt.Printf("Mode:   %s\n", spec.Mode())
	fmt.Printf("Values: %.3f %.3f %.3f\n", vals[0], vals[1], vals[2])
	if aa, ok := spec.(rotation.AxisAngle); ok {
		q := aa.Quat()
		fmt.Printf("Quat:   w=%.4f x=%.4f y=%.4f z=%.4f\n", q.W, q.X, q.Y, q.Z)
	}

	m := spec.Interpolate(float32(*t)).Matrix()
	fmt.Println()
	fmt.Println("Matrix:")
	for r := 0; r < 4; r++ {
		fmt.Printf("  [%8.4f %8.4f %8.4f %8.4f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	fmt.Printf("  det = %.6f\n", m.Determinant())

	axes := spec.Axes()
	fmt.Println()
	fmt.Println("Axes:")
	for i, v := range axes.Vectors {
		fmt.Printf("  %-6s %s\n", axes.Labels[i], vec(v))
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	cfg := setup(fs, args)
	defer logger.Sync()

	var err error
	path := fs.Arg(0)
	if path == "" {
		path = "config.yaml in " + config.ConfigDir()
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

func vec(v math.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
