package widgets

import (
	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// Concealer is a header button that shows or hides a panel of other widgets.
//
// The panel is a layer created for the concealer and owned by its response.
// Populate it through the channel:
//
//	resp, _ := overlay.Add[*channels.Concealer](ctx, widgets.Concealer{Header: header}, layer)
//	overlay.Add[*channels.Clickable](ctx, widgets.ButtonOf("Inside", r), resp.Channel.Layer())
//
// The panel starts hidden. While hidden, its layer is inactive and its widgets
// are neither drawn nor reachable.
type Concealer struct {
	// Header is the button that toggles the panel.
	Header Button
	// Open shows the panel from the start.
	Open bool
}

// Build implements overlay.Config.
func (c Concealer) Build(b *overlay.Builder) (overlay.Widget, *channels.Concealer) {
	w, ch := newConcealer(b, c)
	return w, ch
}

func newConcealer(b *overlay.Builder, c Concealer) (*concealerWidget, *channels.Concealer) {
	clicks, set := channels.NewClickable()
	layer := b.AddSingularLayer()
	ch := channels.NewConcealer(clicks, channels.NewCell(false), layer)
	ch.SetOpen(c.Open)
	return &concealerWidget{header: newButtonWidget(c.Header, set), panel: ch}, ch
}

type concealerWidget struct {
	overlay.Base
	header *buttonWidget
	panel  *channels.Concealer
}

// Contains covers only the header. The panel's widgets receive input through
// their own layer.
func (w *concealerWidget) Contains(p graphics.Offset) bool {
	return w.header.Contains(p)
}

func (w *concealerWidget) IsFocusable(graphics.Offset) bool { return false }

func (w *concealerWidget) SetHover(p graphics.Offset, hover bool) {
	w.header.SetHover(p, hover)
}

func (w *concealerWidget) OnClick(p graphics.Offset) {
	if !w.header.Contains(p) {
		return
	}
	w.panel.Toggle()
	w.header.OnClick(p)
}

func (w *concealerWidget) CursorIcon(p graphics.Offset) graphics.CursorIcon {
	return w.header.CursorIcon(p)
}

func (w *concealerWidget) Render(s graphics.Surface, z int) error {
	return w.header.Render(s, z)
}
