package testing

import (
	"fmt"

	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
)

// MoveTo moves the pointer to pos.
func (t *Tester) MoveTo(pos graphics.Offset) {
	t.ctx.Event(input.PointerMoved{Position: pos})
}

// TapAt moves the pointer to pos and clicks the left button there.
func (t *Tester) TapAt(pos graphics.Offset) {
	t.MoveTo(pos)
	t.ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: true})
	t.ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: false})
}

// Tap clicks the center of the first operation matched by finder in the last
// frame.
func (t *Tester) Tap(finder Finder) error {
	pos, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	t.TapAt(pos)
	return nil
}

// Hover moves the pointer to the center of the first operation matched by
// finder in the last frame.
func (t *Tester) Hover(finder Finder) error {
	pos, err := t.centerOf("Hover", finder)
	if err != nil {
		return err
	}
	t.MoveTo(pos)
	return nil
}

func (t *Tester) centerOf(op string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no operations: %s", op, finder.Description())
	}
	return result.First().Bounds().Center(), nil
}

// PressKey sends a press and a release of key.
func (t *Tester) PressKey(key input.Key) {
	t.ctx.Event(input.KeyEvent{Key: key, Pressed: true})
	t.ctx.Event(input.KeyEvent{Key: key, Pressed: false})
}

// TypeText sends every rune of s as a typed character.
func (t *Tester) TypeText(s string) {
	for _, r := range s {
		t.ctx.Event(input.Typed{Char: r})
	}
}
