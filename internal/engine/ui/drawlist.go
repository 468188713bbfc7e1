package ui

import (
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/quatviz/pkg/math"
)

// DrawList draws projected segments onto an ImGui draw list. Segment
// coordinates are relative to Origin.
type DrawList struct {
	List      *imgui.DrawList
	Origin    math.Vec2
	Thickness float32
}

// DrawSegment implements pipeline.LineDrawer.
func (d *DrawList) DrawSegment(p1, p2 math.Vec2, c color.RGBA) {
	d.List.AddLineV(
		imgui.NewVec2(d.Origin.X+p1.X, d.Origin.Y+p1.Y),
		imgui.NewVec2(d.Origin.X+p2.X, d.Origin.Y+p2.Y),
		imgui.ColorU32Vec4(ColorVec4(c)),
		d.Thickness,
	)
}

// ColorVec4 converts an 8-bit color to ImGui's normalized form.
func ColorVec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(
		float32(c.R)/255,
		float32(c.G)/255,
		float32(c.B)/255,
		float32(c.A)/255,
	)
}

// Canvas is a borderless, transparent window covering the work area.
// It hands back a DrawList for the wireframe and reports mouse drags and
// wheel movement over empty space, so panels on top keep their input.
type Canvas struct {
	Thickness float32

	lastMouse imgui.Vec2
}

// CanvasInput is the mouse activity seen by the canvas this frame.
type CanvasInput struct {
	Hovered  bool
	DragLeft math.Vec2 // look / orbit
	Wheel    float32
}

// Begin opens the canvas window. The returned DrawList and size are valid
// until End. Begin must always be paired with End.
func (c *Canvas) Begin() (*DrawList, math.Vec2, CanvasInput) {
	pos, size := Viewport()

	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoBackground |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoSavedSettings |
		imgui.WindowFlagsNoBringToFrontOnFocus
	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)
	imgui.BeginV("##wireframe", nil, flags)

	imgui.SetCursorScreenPos(pos)
	imgui.InvisibleButton("##canvas", size)

	var in CanvasInput
	mouse := imgui.MousePos()
	if imgui.IsItemHovered() {
		in.Hovered = true
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			in.DragLeft = math.Vec2{X: mouse.X - c.lastMouse.X, Y: mouse.Y - c.lastMouse.Y}
		}
		in.Wheel = imgui.CurrentIO().MouseWheel()
	}
	c.lastMouse = mouse

	thickness := c.Thickness
	if thickness <= 0 {
		thickness = 1
	}
	dl := &DrawList{
		List:      imgui.WindowDrawList(),
		Origin:    math.Vec2{X: pos.X, Y: pos.Y},
		Thickness: thickness,
	}
	return dl, math.Vec2{X: size.X, Y: size.Y}, in
}

// End closes the canvas window.
func (c *Canvas) End() {
	imgui.End()
}
