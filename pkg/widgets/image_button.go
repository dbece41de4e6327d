package widgets

import (
	"image"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// ImageButton is an Image that reports clicks.
type ImageButton struct {
	Src  image.Image
	Rect graphics.Rect
	// Tint is blended with the picture while not hovered, and while hovered
	// when HoverTint is unset.
	Tint graphics.Color
	// HoverTint is blended with the picture while the pointer is over it.
	HoverTint graphics.Color
}

// Build implements overlay.Config.
func (b ImageButton) Build(*overlay.Builder) (overlay.Widget, *channels.Clickable) {
	ch, set := channels.NewClickable()
	return &imageButtonWidget{cfg: b, clicked: set}, ch
}

type imageButtonWidget struct {
	overlay.Base
	cfg     ImageButton
	clicked channels.ClickSetter
	hovered bool
}

func (w *imageButtonWidget) Contains(p graphics.Offset) bool {
	return w.cfg.Rect.Contains(p)
}

func (w *imageButtonWidget) IsFocusable(graphics.Offset) bool { return false }

func (w *imageButtonWidget) SetHover(_ graphics.Offset, hover bool) {
	w.hovered = hover
}

func (w *imageButtonWidget) OnClick(graphics.Offset) {
	w.clicked.Clicked()
}

func (w *imageButtonWidget) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return graphics.CursorHand
}

// tint picks the blend color for the current hover state.
func (w *imageButtonWidget) tint() graphics.Color {
	if w.hovered && w.cfg.HoverTint != graphics.ColorTransparent {
		return w.cfg.HoverTint
	}
	return w.cfg.Tint
}

func (w *imageButtonWidget) Render(s graphics.Surface, z int) error {
	return drawImage(s, w.cfg.Src, w.cfg.Rect, w.tint(), z)
}
