package widgets

import (
	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// TextButton is a line of text that reports clicks. Its hit area is the
// measured extent of the text.
type TextButton struct {
	Text   string
	Style  graphics.TextStyle
	Origin graphics.Offset
}

// Build implements overlay.Config.
func (b TextButton) Build(*overlay.Builder) (overlay.Widget, *channels.Clickable) {
	ch, set := channels.NewClickable()
	return &textButtonWidget{cfg: b, clicked: set}, ch
}

type textButtonWidget struct {
	overlay.Base
	cfg     TextButton
	clicked channels.ClickSetter
}

// bounds returns the area covered by the text.
func (w *textButtonWidget) bounds() graphics.Rect {
	f := w.cfg.Style.ResolvedFont()
	return graphics.RectFromLTWH(w.cfg.Origin.X, w.cfg.Origin.Y, f.Measure(w.cfg.Text), f.LineHeight())
}

func (w *textButtonWidget) Contains(p graphics.Offset) bool {
	return w.cfg.Text != "" && w.bounds().Contains(p)
}

func (w *textButtonWidget) IsFocusable(graphics.Offset) bool { return false }

func (w *textButtonWidget) OnClick(graphics.Offset) {
	w.clicked.Clicked()
}

func (w *textButtonWidget) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return graphics.CursorHand
}

func (w *textButtonWidget) Render(s graphics.Surface, z int) error {
	return s.DrawText(w.cfg.Text, w.cfg.Style, w.cfg.Origin, z)
}
