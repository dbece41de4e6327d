// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
	"github.com/go-drift/overlay/pkg/overlay"
)

// Counter is a focusable box that shows a count and increments on click.
// While focused, KeyUp and KeyDown step the count and typed digits replace
// it.
type Counter struct {
	Initial int
	Rect    graphics.Rect
}

// Build implements overlay.Config.
func (c Counter) Build(*overlay.Builder) (overlay.Widget, *channels.Cell[int]) {
	count := channels.NewCell(c.Initial)
	return &counter{rect: c.Rect, count: count}, count
}

type counter struct {
	overlay.Base
	rect    graphics.Rect
	count   *channels.Cell[int]
	hovered bool
	focused bool
}

func (c *counter) Contains(p graphics.Offset) bool    { return c.rect.Contains(p) }
func (c *counter) IsFocusable(graphics.Offset) bool   { return true }
func (c *counter) SetHover(_ graphics.Offset, h bool) { c.hovered = h }
func (c *counter) SetFocus(_ graphics.Offset, f bool) { c.focused = f }

func (c *counter) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return graphics.CursorHand
}

func (c *counter) OnClick(graphics.Offset) {
	c.count.Update(func(n int) int { return n + 1 })
}

func (c *counter) OnKey(k input.Key, pressed bool) {
	if !pressed {
		return
	}
	switch k {
	case input.KeyUp:
		c.count.Update(func(n int) int { return n + 1 })
	case input.KeyDown:
		c.count.Update(func(n int) int { return n - 1 })
	}
}

func (c *counter) OnTyped(r rune) {
	if r >= '0' && r <= '9' {
		c.count.Set(int(r - '0'))
	}
}

func (c *counter) Render(s graphics.Surface, z int) error {
	border := graphics.ColorBlack
	if c.focused {
		border = graphics.ColorBlue
	}
	if c.hovered {
		if err := s.FillRect(c.rect, graphics.RGB(240, 240, 240), z); err != nil {
			return err
		}
	}
	if err := s.StrokeRect(c.rect, border, z); err != nil {
		return err
	}
	style := graphics.TextStyle{Color: graphics.ColorBlack}
	return s.DrawText(strconv.Itoa(c.count.Get()), style, c.rect.Origin(), z)
}
