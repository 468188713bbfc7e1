package app

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/quatviz/internal/config"
	"github.com/Faultbox/quatviz/internal/engine/debug"
	"github.com/Faultbox/quatviz/internal/engine/mesh"
	"github.com/Faultbox/quatviz/internal/engine/pipeline"
	"github.com/Faultbox/quatviz/internal/logger"
	"github.com/Faultbox/quatviz/pkg/math"
	"github.com/Faultbox/quatviz/pkg/rotation"
)

type counter struct {
	n int
}

func (c *counter) DrawSegment(p1, p2 math.Vec2, col color.RGBA) {
	c.n++
}

func useTestLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(logger.Use(zaptest.NewLogger(t)))
}

func drawDefault(t *testing.T, opts func(*config.Config)) (pipeline.Stats, *counter) {
	t.Helper()
	cfg := config.Default()
	if opts != nil {
		opts(cfg)
	}
	c := &counter{}
	w := pipeline.NewWireframe(c, 1920, 1080)
	cam := NewFlyCamera(cfg.Camera)
	s := NewScene(mesh.NewCube(1), &cfg.Rotation, cfg.Scene)
	return s.Draw(w, cam.ViewMatrix(), cam.ProjectionMatrix(1920, 1080)), c
}

func TestSceneDraw(t *testing.T) {
	st, c := drawDefault(t, nil)

	// world axes 3 + reference cube 24 + rotated cube 24 + indicators 3
	if st.Edges != 54 {
		t.Errorf("Edges = %d, want 54", st.Edges)
	}
	if st.Faces != 12 {
		t.Errorf("Faces = %d, want 12", st.Faces)
	}
	if st.NearRejected != 0 {
		t.Errorf("NearRejected = %d, want 0", st.NearRejected)
	}
	if c.n != st.Drawn {
		t.Errorf("drawer saw %d segments, stats say %d", c.n, st.Drawn)
	}
}

func TestSceneDrawOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  func(*config.Config)
		edges int
	}{
		{"mesh only", func(c *config.Config) {
			c.Scene.ShowAxes = false
			c.Scene.ShowIndicators = false
			c.Scene.ShowReference = false
		}, 24},
		{"with bbox and grid", func(c *config.Config) {
			c.Scene.ShowBBox = true
			c.Scene.ShowGrid = true
		}, 54 + debug.BBoxEdgeCount + 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := drawDefault(t, tt.opts)
			if st.Edges != tt.edges {
				t.Errorf("Edges = %d, want %d", st.Edges, tt.edges)
			}
		})
	}
}

func TestSceneInterpolation(t *testing.T) {
	p := rotation.DefaultParams()
	s := NewScene(mesh.NewCube(1), &p, config.Default().Scene)

	s.T = 0
	if !s.ModelMatrix().ApproxEqual(math.Identity(), 1e-5) {
		t.Errorf("T=0 should give identity, got %v", s.ModelMatrix())
	}

	s.T = 1
	if !s.ModelMatrix().ApproxEqual(p.Spec().Matrix(), 1e-5) {
		t.Error("T=1 should give the full rotation")
	}

	// Indicator axes follow the interpolated rotation, not the target.
	s.T = 0
	ind := s.Indicators()
	if ind.Vectors[1].Sub(math.UnitX).Length() > 1e-5 || ind.Vectors[2].Sub(math.UnitY).Length() > 1e-5 {
		t.Errorf("T=0 indicators = %v, want unrotated x' and y'", ind.Vectors)
	}

	s.T = 1
	full := p.Spec().Axes()
	ind = s.Indicators()
	for i := range full.Vectors {
		if ind.Vectors[i].Sub(full.Vectors[i]).Length() > 1e-5 {
			t.Errorf("T=1 indicator %d = %v, want %v", i, ind.Vectors[i], full.Vectors[i])
		}
	}
}

func TestLoadMesh(t *testing.T) {
	useTestLogger(t)

	m, err := LoadMesh("")
	if err != nil || m.Name != "cube" {
		t.Fatalf("LoadMesh(\"\") = %v, %v", m, err)
	}

	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nf 1 9 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err = LoadMesh(path)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if len(m.Faces) != 1 {
		t.Errorf("expected 1 face, got %d", len(m.Faces))
	}

	if _, err := LoadMesh(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewCameras(t *testing.T) {
	cc := config.Default().Camera
	cc.Near, cc.Far = 0.5, 50
	cc.MoveSpeed = 3

	fly := NewFlyCamera(cc)
	if fly.Near != 0.5 || fly.Far != 50 || fly.MoveSpeed != 3 {
		t.Errorf("fly camera = near %v far %v speed %v", fly.Near, fly.Far, fly.MoveSpeed)
	}
	if fly.Position() != cc.Position {
		t.Errorf("position = %v, want %v", fly.Position(), cc.Position)
	}

	orbit := NewOrbitCamera(cc, mesh.NewCube(2).Bounds())
	if orbit.Center != (math.Vec3{}) {
		t.Errorf("orbit center = %v, want origin", orbit.Center)
	}
	if orbit.Far < orbit.Distance {
		t.Errorf("far %v should cover distance %v", orbit.Far, orbit.Distance)
	}
}

func TestFrameName(t *testing.T) {
	tests := []struct {
		output string
		i, n   int
		want   string
	}{
		{"out.png", 0, 1, "out.png"},
		{"out.png", 0, 3, "out_000.png"},
		{"dir/out.bmp", 12, 20, "dir/out_012.bmp"},
		{"noext", 1, 2, "noext_001"},
	}
	for _, tt := range tests {
		if got := FrameName(tt.output, tt.i, tt.n); got != tt.want {
			t.Errorf("FrameName(%q, %d, %d) = %q, want %q", tt.output, tt.i, tt.n, got, tt.want)
		}
	}
}

func TestFrameFraction(t *testing.T) {
	if FrameFraction(0, 1) != 1 {
		t.Error("single frame should be the full rotation")
	}
	if FrameFraction(0, 5) != 0 || FrameFraction(4, 5) != 1 || FrameFraction(2, 5) != 0.5 {
		t.Error("fractions should span 0..1 evenly")
	}
}

func TestRender(t *testing.T) {
	useTestLogger(t)

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Graphics.Width, cfg.Graphics.Height = 160, 120
	cfg.Render.Output = filepath.Join(dir, "spin.png")
	cfg.Render.Frames = 3

	paths, st, err := Render(cfg, mesh.NewCube(1))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(paths) != 3 || paths[2] != filepath.Join(dir, "spin_002.png") {
		t.Fatalf("paths = %v", paths)
	}
	if st.Edges != 3*54 {
		t.Errorf("Edges = %d, want %d", st.Edges, 3*54)
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("image size = %v", b)
	}
}

func TestRenderErrors(t *testing.T) {
	useTestLogger(t)

	cfg := config.Default()
	cfg.Graphics.Width = 0
	if _, _, err := Render(cfg, mesh.NewCube(1)); err == nil {
		t.Error("expected error for zero width")
	}

	cfg = config.Default()
	cfg.Graphics.Width, cfg.Graphics.Height = 32, 32
	cfg.Render.Output = filepath.Join(t.TempDir(), "out.gif")
	if _, _, err := Render(cfg, mesh.NewCube(1)); !errors.Is(err, debug.ErrUnknownImageFormat) {
		t.Errorf("expected ErrUnknownImageFormat, got %v", err)
	}
}

func TestKeyMapping(t *testing.T) {
	if m, ok := modeForKey(sdl.SCANCODE_2); !ok || m != rotation.ModeEulerZYX {
		t.Errorf("key 2 = %v, %v", m, ok)
	}
	if _, ok := modeForKey(sdl.SCANCODE_9); ok {
		t.Error("key 9 should not select a mode")
	}

	tests := []struct {
		key          sdl.Scancode
		index, steps int
	}{
		{sdl.SCANCODE_UP, 0, 1},
		{sdl.SCANCODE_DOWN, 0, -1},
		{sdl.SCANCODE_RIGHT, 1, 1},
		{sdl.SCANCODE_LEFT, 1, -1},
		{sdl.SCANCODE_PAGEUP, 2, 1},
		{sdl.SCANCODE_PAGEDOWN, 2, -1},
	}
	for _, tt := range tests {
		i, s, ok := nudgeForKey(tt.key)
		if !ok || i != tt.index || s != tt.steps {
			t.Errorf("nudgeForKey(%d) = (%d, %d, %v)", tt.key, i, s, ok)
		}
	}
}

func TestAdvance(t *testing.T) {
	if got := advance(0, 1, 4); got != 0.25 {
		t.Errorf("advance = %v, want 0.25", got)
	}
	if got := advance(0.75, 2, 4); got != 0.25 {
		t.Errorf("advance should wrap, got %v", got)
	}
	if got := advance(0.3, 1, 0); got != 1 {
		t.Errorf("zero period = %v, want 1", got)
	}
}
