package channels

// Clickable reports whether its widget was clicked since the last check.
// Bursts of clicks between two checks collapse into one.
type Clickable struct {
	ch chan struct{}
}

// ClickSetter is the widget's half of a Clickable.
type ClickSetter struct {
	ch chan struct{}
}

// NewClickable returns a connected Clickable and ClickSetter.
func NewClickable() (*Clickable, ClickSetter) {
	ch := make(chan struct{}, 1)
	return &Clickable{ch: ch}, ClickSetter{ch: ch}
}

// HasClicked reports whether a click arrived since the previous call, and
// consumes it.
func (c *Clickable) HasClicked() bool {
	if c == nil {
		return false
	}
	select {
	case <-c.ch:
		return true
	default:
		return false
	}
}

// Clicks returns a channel that receives once per pending click signal.
// Receiving from it consumes the signal, like HasClicked.
func (c *Clickable) Clicks() <-chan struct{} {
	return c.ch
}

// Clicked records a click. It never blocks, and a zero ClickSetter drops the
// signal.
func (s ClickSetter) Clicked() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}
