package channels

import "github.com/go-drift/overlay/pkg/overlay"

// Concealer is the channel of a panel whose contents live in a layer that is
// shown only while the panel is open.
type Concealer struct {
	header *Clickable
	open   *Cell[bool]
	layer  *overlay.SingularLayerHandle
}

// NewConcealer ties the header's click signal, the shared open state and the
// contents layer together.
func NewConcealer(header *Clickable, open *Cell[bool], layer *overlay.SingularLayerHandle) *Concealer {
	return &Concealer{header: header, open: open, layer: layer}
}

// HasClicked reports whether the header was clicked since the last call.
func (c *Concealer) HasClicked() bool {
	return c.header.HasClicked()
}

// IsOpen reports whether the contents are shown.
func (c *Concealer) IsOpen() bool {
	return c.open.Get()
}

// SetOpen shows or hides the contents. The layer change takes effect at the
// next drain of the context.
func (c *Concealer) SetOpen(open bool) {
	c.open.Set(open)
	c.layer.SetActive(open)
}

// Toggle flips the open state and returns the new one.
func (c *Concealer) Toggle() bool {
	open := c.open.Update(func(v bool) bool { return !v })
	c.layer.SetActive(open)
	return open
}

// Layer returns the layer holding the panel's contents. Add widgets to it to
// populate the panel.
func (c *Concealer) Layer() *overlay.SingularLayerHandle {
	return c.layer
}
