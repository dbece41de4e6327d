// Package input defines the host-neutral input events consumed by the widget
// context. Host adapters translate their native events into these values.
package input

import (
	"fmt"

	"github.com/go-drift/overlay/pkg/graphics"
)

// Event is one input occurrence delivered by the host.
type Event interface {
	isEvent()
}

// PointerMoved reports the pointer's new position in host coordinates.
type PointerMoved struct {
	Position graphics.Offset
}

// PointerButton reports the current state of a pointer button.
// Hosts may report the same state repeatedly; the context only reacts to
// press edges.
type PointerButton struct {
	Button  MouseButton
	Pressed bool
}

// KeyEvent reports a key state change.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Typed reports a character produced by the keyboard.
type Typed struct {
	Char rune
}

func (PointerMoved) isEvent()  {}
func (PointerButton) isEvent() {}
func (KeyEvent) isEvent()      {}
func (Typed) isEvent()         {}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// Key identifies a non-character key.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
