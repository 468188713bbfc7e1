package ui

import (
	"errors"
	"sync/atomic"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/logger"
)

// ModelPicker shows a native OBJ file dialog off the frame thread.
// The chosen path is handed back through a channel that the frame loop
// drains with Pending, since meshes must only be swapped between frames.
type ModelPicker struct {
	paths chan string
	busy  atomic.Bool

	// pick shows the dialog; replaced in tests.
	pick func() (string, error)
}

// NewModelPicker creates a picker using the native file dialog.
func NewModelPicker() *ModelPicker {
	return &ModelPicker{
		paths: make(chan string, 4),
		pick: func() (string, error) {
			return dialog.File().
				Filter("Wavefront OBJ", "obj").
				Filter("All Files", "*").
				Title("Load Model").
				Load()
		},
	}
}

// Open shows the dialog on a goroutine. A second call while a dialog is
// still open is ignored. Cancelling is not an error.
func (p *ModelPicker) Open() {
	if !p.busy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.busy.Store(false)
		path, err := p.pick()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		p.Offer(path)
	}()
}

// Offer queues a path for loading, e.g. from a file drop. If the queue is
// full the path is dropped.
func (p *ModelPicker) Offer(path string) {
	select {
	case p.paths <- path:
	default:
		logger.Warn("model load queue full, ignoring", zap.String("path", path))
	}
}

// Pending returns the most recently queued path, if any, without blocking.
func (p *ModelPicker) Pending() (string, bool) {
	var path string
	ok := false
	for {
		select {
		case path = <-p.paths:
			ok = true
		default:
			return path, ok
		}
	}
}
