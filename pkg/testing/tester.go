package testing

import (
	"testing"

	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

const (
	// DefaultTestWidth is the default logical width of the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height of the test window.
	DefaultTestHeight = 600
)

// Tester drives an overlay context the way a host would, recording each
// frame instead of drawing it.
type Tester struct {
	ctx      *overlay.Context
	layer    *overlay.LayerHandle
	size     graphics.Size
	recorder graphics.Recorder
	frame    *graphics.DisplayList
	window   *Window
}

// Window records the cursor icons requested by the context.
type Window struct {
	Icons []graphics.CursorIcon
}

// SetCursor implements overlay.Window.
func (w *Window) SetCursor(icon graphics.CursorIcon) {
	w.Icons = append(w.Icons, icon)
}

// NewTester creates a context with one active layer. A nil opts.Window is
// replaced with a recording Window.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester(opts overlay.Options) *Tester {
	t := &Tester{
		size:  graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		frame: &graphics.DisplayList{},
	}
	if opts.Window == nil {
		t.window = &Window{}
		opts.Window = t.window
	}
	t.ctx = overlay.New(opts)
	t.layer = t.ctx.AddLayer()
	return t
}

// NewTesterWithT creates a tester that is cleaned up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T, opts overlay.Options) *Tester {
	tester := NewTester(opts)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup releases the tester's layer.
func (t *Tester) Cleanup() {
	t.layer.Release()
}

// Context returns the context under test.
func (t *Tester) Context() *overlay.Context {
	return t.ctx
}

// Layer returns the tester's default layer.
func (t *Tester) Layer() *overlay.LayerHandle {
	return t.layer
}

// Window returns the recording window, or nil when the options supplied one.
func (t *Tester) Window() *Window {
	return t.window
}

// Size returns the logical size of the test window.
func (t *Tester) Size() graphics.Size {
	return t.size
}

// SetSize changes the logical size of the test window.
func (t *Tester) SetSize(size graphics.Size) {
	t.size = size
}

// Pump renders one frame. The frame is kept for finders and snapshots even
// when rendering fails part way.
func (t *Tester) Pump() error {
	err := t.ctx.Render(&t.recorder)
	t.frame = t.recorder.Finish()
	return err
}

// Frame returns the operations recorded by the last Pump.
func (t *Tester) Frame() *graphics.DisplayList {
	return t.frame
}

// Find evaluates finder against the last frame.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{ops: finder.Evaluate(t.frame.Ops()), finder: finder}
}
