package pipeline

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Result is the outcome of one edge.
type Result int

const (
	ResultDrawn Result = iota
	ResultNearRejected
	ResultScreenRejected
)

func (r Result) String() string {
	switch r {
	case ResultDrawn:
		return "drawn"
	case ResultNearRejected:
		return "near-rejected"
	case ResultScreenRejected:
		return "screen-rejected"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Stats counts what happened to the edges of one or more draw calls.
type Stats struct {
	Faces           int
	Edges           int
	Drawn           int
	NearRejected    int
	ScreenRejected  int
	DegenerateFaces int
	BadIndices      int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Faces += o.Faces
	s.Edges += o.Edges
	s.Drawn += o.Drawn
	s.NearRejected += o.NearRejected
	s.ScreenRejected += o.ScreenRejected
	s.DegenerateFaces += o.DegenerateFaces
	s.BadIndices += o.BadIndices
}

// HasProblems reports whether any structural mesh problem was skipped.
func (s Stats) HasProblems() bool {
	return s.DegenerateFaces > 0 || s.BadIndices > 0
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("faces", s.Faces)
	enc.AddInt("edges", s.Edges)
	enc.AddInt("drawn", s.Drawn)
	enc.AddInt("near_rejected", s.NearRejected)
	enc.AddInt("screen_rejected", s.ScreenRejected)
	enc.AddInt("degenerate_faces", s.DegenerateFaces)
	enc.AddInt("bad_indices", s.BadIndices)
	return nil
}
