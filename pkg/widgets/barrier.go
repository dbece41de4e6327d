package widgets

import (
	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// Barrier covers an area with a translucent scrim and absorbs every press in
// it, so widgets drawn before it cannot be reached. Add it to a layer above
// the content it should block.
//
// A press on the barrier removes focus from the widget below, since the
// barrier itself is not focusable.
type Barrier struct {
	// Rect is the blocked area, usually the whole window.
	Rect graphics.Rect
	// Color fills the area. Typically semi-transparent black.
	Color graphics.Color
	// Dismissible makes presses on the barrier signal its channel.
	Dismissible bool
}

// BarrierOf returns a dismissible barrier dimming rect.
func BarrierOf(rect graphics.Rect) Barrier {
	return Barrier{Rect: rect, Color: graphics.ColorBlack.WithAlpha(0.4), Dismissible: true}
}

// Build implements overlay.Config.
func (b Barrier) Build(*overlay.Builder) (overlay.Widget, *channels.Clickable) {
	ch, set := channels.NewClickable()
	return &barrierWidget{cfg: b, dismissed: set}, ch
}

type barrierWidget struct {
	overlay.Base
	cfg       Barrier
	dismissed channels.ClickSetter
}

func (w *barrierWidget) Contains(p graphics.Offset) bool {
	return w.cfg.Rect.Contains(p)
}

func (w *barrierWidget) IsFocusable(graphics.Offset) bool { return false }

func (w *barrierWidget) OnClick(graphics.Offset) {
	if w.cfg.Dismissible {
		w.dismissed.Clicked()
	}
}

func (w *barrierWidget) Render(s graphics.Surface, z int) error {
	if w.cfg.Color == graphics.ColorTransparent {
		return nil
	}
	return s.FillRect(w.cfg.Rect, w.cfg.Color, z)
}
