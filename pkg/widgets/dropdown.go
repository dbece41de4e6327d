package widgets

import (
	"image"
	"math"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// DropdownOption is one selectable value of a Dropdown.
type DropdownOption[T any] struct {
	// Value is returned by the channel when this option is selected.
	Value T
	// Label is the text shown for the option.
	Label string
	// Style draws the label.
	Style graphics.TextStyle
	// HoverStyle draws the label while the pointer is over the option.
	// Nil uses Style.
	HoverStyle *graphics.TextStyle
}

// Dropdown shows the selected option in a header box. Clicking the header,
// or the open button to its right, drops a list of every option below the
// header; clicking an option selects it and closes the list. Losing focus
// closes the list too.
//
// Example:
//
//	resp, _ := overlay.Add[*channels.Dropdown[string]](ctx, widgets.Dropdown[string]{
//	    Options: []widgets.DropdownOption[string]{
//	        {Value: "en", Label: "English"},
//	        {Value: "nl", Label: "Nederlands"},
//	    },
//	    Rect:         graphics.RectFromLTWH(10, 10, 120, 20),
//	    OptionHeight: 20,
//	}, layer)
type Dropdown[T any] struct {
	// Options are listed in order below the header.
	Options []DropdownOption[T]
	// Rect is the header box.
	Rect graphics.Rect
	// OptionHeight is the height of every option row.
	OptionHeight float64
	// OpenButton is drawn to the right of the header. It may be nil.
	OpenButton image.Image
	// OpenButtonSize is the size of the open button's area.
	OpenButtonSize graphics.Size
	// Selected is the index selected from the start. Zero selects the first
	// option; use a negative index for no selection.
	Selected int
	// DividerColor outlines the header and every option row.
	DividerColor graphics.Color
}

// Build implements overlay.Config.
func (d Dropdown[T]) Build(*overlay.Builder) (overlay.Widget, *channels.Dropdown[T]) {
	values := make([]T, len(d.Options))
	for i, o := range d.Options {
		values[i] = o.Value
	}
	selected := d.Selected
	if selected >= len(d.Options) {
		selected = -1
	}
	w := &dropdownWidget[T]{
		cfg:      d,
		open:     channels.NewCell(false),
		selected: channels.NewCell(selected),
	}
	return w, channels.NewDropdown(values, w.open, w.selected)
}

type dropdownWidget[T any] struct {
	overlay.Base
	cfg      Dropdown[T]
	open     *channels.Cell[bool]
	selected *channels.Cell[int]
	hover    *graphics.Offset
}

// buttonRect is the open button's area, right of the header.
func (w *dropdownWidget[T]) buttonRect() graphics.Rect {
	r := w.cfg.Rect
	return graphics.RectFromLTWH(r.Right, r.Top, w.cfg.OpenButtonSize.Width, w.cfg.OpenButtonSize.Height)
}

// listRect covers the header and every option row.
func (w *dropdownWidget[T]) listRect() graphics.Rect {
	r := w.cfg.Rect
	return graphics.RectFromLTWH(r.Left, r.Top, r.Width(), r.Height()+w.cfg.OptionHeight*float64(len(w.cfg.Options)))
}

// optionRect is the row of option i.
func (w *dropdownWidget[T]) optionRect(i int) graphics.Rect {
	r := w.cfg.Rect
	return graphics.RectFromLTWH(r.Left, r.Bottom+w.cfg.OptionHeight*float64(i), r.Width(), w.cfg.OptionHeight)
}

// optionAt returns the option row under p while the list is open.
func (w *dropdownWidget[T]) optionAt(p graphics.Offset) (int, bool) {
	if !w.open.Get() || w.cfg.OptionHeight <= 0 {
		return 0, false
	}
	r := w.cfg.Rect
	dy := p.Y - r.Bottom
	if dy <= 0 || p.X < r.Left || p.X > r.Right {
		return 0, false
	}
	i := int(math.Floor(dy / w.cfg.OptionHeight))
	if i >= len(w.cfg.Options) {
		return 0, false
	}
	return i, true
}

func (w *dropdownWidget[T]) Contains(p graphics.Offset) bool {
	return w.cfg.Rect.Contains(p) ||
		(w.open.Get() && w.listRect().Contains(p)) ||
		w.buttonRect().Contains(p)
}

func (w *dropdownWidget[T]) IsFocusable(graphics.Offset) bool { return true }

func (w *dropdownWidget[T]) SetHover(p graphics.Offset, hover bool) {
	if !hover {
		w.hover = nil
		return
	}
	w.hover = &p
}

func (w *dropdownWidget[T]) SetFocus(_ graphics.Offset, focus bool) {
	if !focus {
		w.open.Set(false)
	}
}

func (w *dropdownWidget[T]) OnClick(p graphics.Offset) {
	if i, ok := w.optionAt(p); ok {
		w.selected.Set(i)
	}
	w.open.Update(func(open bool) bool { return !open })
}

func (w *dropdownWidget[T]) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return graphics.CursorHand
}

// labelOrigin vertically centers a line of style's font inside r.
func labelOrigin(r graphics.Rect, style graphics.TextStyle) graphics.Offset {
	pad := (r.Height() - style.ResolvedFont().LineHeight()) / 2
	return graphics.Offset{X: r.Left + 2, Y: r.Top + max(pad, 0)}
}

func (w *dropdownWidget[T]) Render(s graphics.Surface, z int) error {
	if w.cfg.OpenButton != nil {
		if err := s.DrawImage(w.cfg.OpenButton, w.buttonRect(), z); err != nil {
			return err
		}
	}
	if err := s.StrokeRect(w.cfg.Rect, w.cfg.DividerColor, z); err != nil {
		return err
	}

	shown := w.selected.Get()
	if shown < 0 || shown >= len(w.cfg.Options) {
		shown = 0
	}
	if shown < len(w.cfg.Options) {
		o := w.cfg.Options[shown]
		if err := s.DrawText(o.Label, o.Style, labelOrigin(w.cfg.Rect, o.Style), z); err != nil {
			return err
		}
	}

	if !w.open.Get() {
		return nil
	}
	hovered := -1
	if w.hover != nil {
		if i, ok := w.optionAt(*w.hover); ok {
			hovered = i
		}
	}
	for i, o := range w.cfg.Options {
		style := o.Style
		if i == hovered && o.HoverStyle != nil {
			style = *o.HoverStyle
		}
		r := w.optionRect(i)
		if err := s.DrawText(o.Label, style, labelOrigin(r, style), z); err != nil {
			return err
		}
		if err := s.StrokeRect(r, w.cfg.DividerColor, z); err != nil {
			return err
		}
	}
	return nil
}
