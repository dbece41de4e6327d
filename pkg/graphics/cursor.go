package graphics

import "fmt"

// CursorIcon names the pointer shape a widget requests while hovered.
type CursorIcon int

const (
	// CursorDefault is the host's regular arrow.
	CursorDefault CursorIcon = iota
	// CursorHand signals a clickable target.
	CursorHand
	// CursorText signals an editable text region.
	CursorText
)

// String returns the name used in configuration files.
func (c CursorIcon) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorHand:
		return "hand"
	case CursorText:
		return "text"
	default:
		return fmt.Sprintf("CursorIcon(%d)", int(c))
	}
}

// ParseCursorIcon maps a configuration name back to a CursorIcon.
// The empty string maps to CursorDefault.
func ParseCursorIcon(name string) (CursorIcon, error) {
	switch name {
	case "", "default", "arrow":
		return CursorDefault, nil
	case "hand", "pointer":
		return CursorHand, nil
	case "text", "caret":
		return CursorText, nil
	default:
		return CursorDefault, fmt.Errorf("unknown cursor icon %q", name)
	}
}
