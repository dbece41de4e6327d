package widgets

import (
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// Text draws a single line of text. It takes no input.
//
// Example:
//
//	overlay.Add[struct{}](ctx, widgets.TextOf("Settings", graphics.Offset{X: 8, Y: 8}), layer)
type Text struct {
	// Text is the string to draw.
	Text string
	// Style sets the font and color. A nil font uses graphics.DefaultFont.
	Style graphics.TextStyle
	// Origin is the top-left corner of the line.
	Origin graphics.Offset
}

// TextOf returns black text at origin.
func TextOf(text string, origin graphics.Offset) Text {
	return Text{Text: text, Style: graphics.TextStyle{Color: graphics.ColorBlack}, Origin: origin}
}

// WithStyle returns a copy of t drawn with style.
func (t Text) WithStyle(style graphics.TextStyle) Text {
	t.Style = style
	return t
}

// Build implements overlay.Config.
func (t Text) Build(*overlay.Builder) (overlay.Widget, struct{}) {
	return &textWidget{cfg: t}, struct{}{}
}

type textWidget struct {
	overlay.Base
	cfg Text
}

func (w *textWidget) Contains(graphics.Offset) bool    { return false }
func (w *textWidget) IsFocusable(graphics.Offset) bool { return false }

func (w *textWidget) Render(s graphics.Surface, z int) error {
	return s.DrawText(w.cfg.Text, w.cfg.Style, w.cfg.Origin, z)
}
