package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
)

var keys = map[tcell.Key]input.Key{
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
}

var buttons = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.Button1, input.MouseLeft},
	{tcell.Button2, input.MouseRight},
	{tcell.Button3, input.MouseMiddle},
}

// Translate converts a tcell event into context input events.
//
// Mouse events report the pointer at the centre of the hit cell followed by
// the state of every button; the context reacts to press edges only.
// Terminals do not report key releases, so a mapped key yields a press
// immediately followed by a release. Printable keys yield Typed. Other
// events translate to nothing.
func Translate(ev tcell.Event, cell graphics.Size) []input.Event {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		x, y := e.Position()
		out := []input.Event{input.PointerMoved{Position: graphics.Offset{
			X: (float64(x) + 0.5) * cell.Width,
			Y: (float64(y) + 0.5) * cell.Height,
		}}}
		for _, b := range buttons {
			out = append(out, input.PointerButton{Button: b.button, Pressed: e.Buttons()&b.mask != 0})
		}
		return out
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			return []input.Event{input.Typed{Char: e.Rune()}}
		}
		if k, ok := keys[e.Key()]; ok {
			return []input.Event{
				input.KeyEvent{Key: k, Pressed: true},
				input.KeyEvent{Key: k, Pressed: false},
			}
		}
	}
	return nil
}
