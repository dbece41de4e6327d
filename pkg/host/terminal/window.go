package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/overlay/pkg/graphics"
)

var cursorStyles = map[graphics.CursorIcon]tcell.CursorStyle{
	graphics.CursorDefault: tcell.CursorStyleDefault,
	graphics.CursorHand:    tcell.CursorStyleSteadyBlock,
	graphics.CursorText:    tcell.CursorStyleBlinkingBar,
}

// Window shows the requested cursor icon as the terminal cursor shape.
// Terminals have no pointer shapes, so the text cursor stands in for them.
type Window struct {
	screen tcell.Screen

	mu   sync.Mutex
	icon graphics.CursorIcon
}

// NewWindow returns a window over screen showing the default cursor.
func NewWindow(screen tcell.Screen) *Window {
	return &Window{screen: screen}
}

// SetCursor implements overlay.Window.
func (w *Window) SetCursor(icon graphics.CursorIcon) {
	w.mu.Lock()
	w.icon = icon
	w.mu.Unlock()
	style, ok := cursorStyles[icon]
	if !ok {
		style = tcell.CursorStyleDefault
	}
	w.screen.SetCursorStyle(style)
}

// Cursor returns the icon most recently requested.
func (w *Window) Cursor() graphics.CursorIcon {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.icon
}
