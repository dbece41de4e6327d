package widgets

import (
	"strings"
	"unicode"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
	"github.com/go-drift/overlay/pkg/overlay"
)

// inputPadding insets the text from the field's border.
const inputPadding = 2

// Input is a single-line text field. It takes focus when pressed and then
// receives typed characters and editing keys. The caret moves by user
// perceived characters, so combining sequences are edited as one unit.
//
// When the text is wider than the field, the visible part scrolls to keep
// the caret in view.
type Input struct {
	Rect  graphics.Rect
	Style graphics.TextStyle
	// Value is the initial text.
	Value string
	// Placeholder is shown while the text is empty.
	Placeholder string
	// PlaceholderStyle draws the placeholder.
	PlaceholderStyle graphics.TextStyle
	// BorderColor outlines the field. Transparent uses black.
	BorderColor graphics.Color
	// CaretColor draws the caret while focused. Transparent uses green.
	CaretColor graphics.Color
}

// InputOf returns an empty field with a grey placeholder.
func InputOf(rect graphics.Rect, placeholder string) Input {
	return Input{
		Rect:             rect,
		Style:            graphics.TextStyle{Color: graphics.ColorBlack},
		Placeholder:      placeholder,
		PlaceholderStyle: graphics.TextStyle{Color: graphics.RGB(150, 150, 150)},
	}
}

// Build implements overlay.Config.
func (in Input) Build(*overlay.Builder) (overlay.Widget, *channels.Input) {
	text := channels.NewCell(in.Value)
	return &inputWidget{cfg: in, text: text}, channels.NewInput(text)
}

type inputWidget struct {
	overlay.Base
	cfg     Input
	text    *channels.Cell[string]
	caret   int
	focused bool
}

func (w *inputWidget) Contains(p graphics.Offset) bool {
	return w.cfg.Rect.Contains(p)
}

func (w *inputWidget) IsFocusable(graphics.Offset) bool { return true }

func (w *inputWidget) SetFocus(_ graphics.Offset, focus bool) {
	w.focused = focus
}

func (w *inputWidget) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return graphics.CursorText
}

// edit runs fn over the text split into clusters with the caret clamped to
// it, and stores the result. The application may replace the text at any
// time, so the caret is never trusted to be in range.
func (w *inputWidget) edit(fn func(clusters []string, caret int) ([]string, int)) {
	w.text.Update(func(s string) string {
		clusters := graphics.SplitGraphemes(s)
		caret := min(max(w.caret, 0), len(clusters))
		clusters, w.caret = fn(clusters, caret)
		return strings.Join(clusters, "")
	})
}

func (w *inputWidget) OnKey(key input.Key, pressed bool) {
	if !pressed {
		return
	}
	w.edit(func(c []string, caret int) ([]string, int) {
		switch key {
		case input.KeyBackspace:
			if caret > 0 {
				return append(c[:caret-1], c[caret:]...), caret - 1
			}
		case input.KeyDelete:
			if caret < len(c) {
				return append(c[:caret], c[caret+1:]...), caret
			}
		case input.KeyLeft:
			return c, max(caret-1, 0)
		case input.KeyRight:
			return c, min(caret+1, len(c))
		case input.KeyHome:
			return c, 0
		case input.KeyEnd:
			return c, len(c)
		}
		return c, caret
	})
}

// OnTyped inserts r at the caret. Control characters are ignored; editing
// keys arrive through OnKey.
func (w *inputWidget) OnTyped(r rune) {
	if unicode.IsControl(r) {
		return
	}
	w.edit(func(c []string, caret int) ([]string, int) {
		// A combining mark merges with the cluster before it, so the caret
		// is recomputed from the new prefix.
		prefix := strings.Join(c[:caret], "") + string(r)
		rest := strings.Join(c[caret:], "")
		return graphics.SplitGraphemes(prefix + rest), len(graphics.SplitGraphemes(prefix))
	})
}

// visibleRange returns the clusters [first, last) to draw so that the caret
// stays inside a window limit wide. Clusters before the caret are dropped from
// the left until the caret fits, then clusters after it are added while they
// fit.
func visibleRange(advances []float64, caret int, limit float64) (first, last int) {
	caret = min(caret, len(advances))
	width := 0.0
	for _, a := range advances[:caret] {
		width += a
	}
	for first < caret && width > limit {
		width -= advances[first]
		first++
	}
	last = caret
	for last < len(advances) && width+advances[last] <= limit {
		width += advances[last]
		last++
	}
	return first, last
}

func (w *inputWidget) Render(s graphics.Surface, z int) error {
	r := w.cfg.Rect
	border := w.cfg.BorderColor
	if border == graphics.ColorTransparent {
		border = graphics.ColorBlack
	}
	if err := s.StrokeRect(r, border, z); err != nil {
		return err
	}

	origin := graphics.Offset{X: r.Left + inputPadding, Y: r.Top + inputPadding}
	caretX := origin.X
	value := w.text.Get()
	if value == "" {
		w.caret = 0
		if w.cfg.Placeholder != "" {
			if err := s.DrawText(w.cfg.Placeholder, w.cfg.PlaceholderStyle, origin, z); err != nil {
				return err
			}
		}
	} else {
		clusters, advances := w.cfg.Style.ResolvedFont().Clusters(value)
		w.caret = min(max(w.caret, 0), len(clusters))
		first, last := visibleRange(advances, w.caret, r.Width()-2*inputPadding)
		if err := s.DrawText(strings.Join(clusters[first:last], ""), w.cfg.Style, origin, z); err != nil {
			return err
		}
		for _, a := range advances[first:w.caret] {
			caretX += a
		}
	}

	if !w.focused {
		return nil
	}
	caret := w.cfg.CaretColor
	if caret == graphics.ColorTransparent {
		caret = graphics.ColorGreen
	}
	return s.FillRect(graphics.RectFromLTWH(caretX, r.Top, 1, r.Height()), caret, z)
}
