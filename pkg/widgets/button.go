package widgets

import (
	"image"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// Button is a background picture with a text label on top. It reports clicks
// anywhere on the background or label and never takes focus.
//
// Example:
//
//	resp, _ := overlay.Add[*channels.Clickable](ctx,
//	    widgets.ButtonOf("Save", graphics.RectFromLTWH(10, 10, 80, 24)).
//	        WithTint(graphics.RGB(200, 200, 200), graphics.RGB(230, 230, 230)),
//	    layer)
//	...
//	if resp.Channel.HasClicked() {
//	    save()
//	}
type Button struct {
	// Label is the text drawn on the button.
	Label string
	// Style sets the label's font and color.
	Style graphics.TextStyle
	// LabelOffset positions the label relative to the top-left of Rect.
	LabelOffset graphics.Offset
	// Background is drawn into Rect. Nil draws a filled rectangle in Tint.
	Background image.Image
	// Rect is the button's area.
	Rect graphics.Rect
	// Tint is blended with the background.
	Tint graphics.Color
	// HoverTint replaces Tint while the pointer is over the button.
	HoverTint graphics.Color
}

// ButtonOf returns a plain button with a black label inset by a few pixels.
func ButtonOf(label string, rect graphics.Rect) Button {
	return Button{
		Label:       label,
		Style:       graphics.TextStyle{Color: graphics.ColorBlack},
		LabelOffset: graphics.Offset{X: 4, Y: 4},
		Rect:        rect,
		Tint:        graphics.RGB(220, 220, 220),
	}
}

// WithTint returns a copy of b with the given background tints.
func (b Button) WithTint(tint, hover graphics.Color) Button {
	b.Tint = tint
	b.HoverTint = hover
	return b
}

// WithBackground returns a copy of b drawn over img.
func (b Button) WithBackground(img image.Image) Button {
	b.Background = img
	return b
}

// Build implements overlay.Config.
func (b Button) Build(*overlay.Builder) (overlay.Widget, *channels.Clickable) {
	ch, set := channels.NewClickable()
	return newButtonWidget(b, set), ch
}

type buttonWidget struct {
	overlay.Base
	background *imageButtonWidget
	label      *textButtonWidget
	clicked    channels.ClickSetter
	solid      bool
}

func newButtonWidget(b Button, set channels.ClickSetter) *buttonWidget {
	origin := b.Rect.Origin().Add(b.LabelOffset)
	return &buttonWidget{
		background: &imageButtonWidget{cfg: ImageButton{
			Src:       b.Background,
			Rect:      b.Rect,
			Tint:      b.Tint,
			HoverTint: b.HoverTint,
		}},
		label:   &textButtonWidget{cfg: TextButton{Text: b.Label, Style: b.Style, Origin: origin}},
		clicked: set,
		solid:   b.Background == nil,
	}
}

func (w *buttonWidget) Contains(p graphics.Offset) bool {
	return w.background.Contains(p) || w.label.Contains(p)
}

func (w *buttonWidget) IsFocusable(graphics.Offset) bool { return false }

// SetHover tints the background regardless of which part is hovered.
func (w *buttonWidget) SetHover(p graphics.Offset, hover bool) {
	w.background.SetHover(p, hover)
}

func (w *buttonWidget) OnClick(graphics.Offset) {
	w.clicked.Clicked()
}

func (w *buttonWidget) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return graphics.CursorHand
}

func (w *buttonWidget) Render(s graphics.Surface, z int) error {
	if w.solid {
		if err := s.FillRect(w.background.cfg.Rect, w.background.tint(), z); err != nil {
			return err
		}
	} else if err := w.background.Render(s, z); err != nil {
		return err
	}
	return w.label.Render(s, z)
}
