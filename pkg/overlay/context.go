package overlay

import (
	"log/slog"

	"github.com/go-drift/overlay/pkg/errors"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
)

// Window receives the cursor icon requested by the hovered widget.
type Window interface {
	SetCursor(icon graphics.CursorIcon)
}

// Options configures a Context. The zero value is usable.
type Options struct {
	// StartDrawOrder is the draw order given to the first widget each frame.
	StartDrawOrder int
	// DefaultCursor is requested when no widget is under the pointer.
	DefaultCursor graphics.CursorIcon
	// BlurOnEmptyPress removes focus when a press hits no widget. By default
	// such a press leaves focus where it was.
	BlurOnEmptyPress bool
	// Window, if set, is told whenever the requested cursor changes.
	Window Window
	// Logger receives debug-level lifecycle records. Nil discards them.
	Logger *slog.Logger
}

type widgetKey struct {
	layer  LayerID
	widget WidgetID
}

type liveWidget struct {
	key    widgetKey
	widget Widget
}

// Context owns every layer and widget. It applies lifecycle messages, routes
// input and renders in a deterministic order.
type Context struct {
	opts      Options
	log       *slog.Logger
	layers    *orderedMap[LayerID, *layer]
	box       *mailbox
	nextLayer LayerID

	focus   *widgetKey
	pointer graphics.Offset
	left    input.ButtonTracker
	cursor  graphics.CursorIcon
}

// New creates an empty context.
func New(opts Options) *Context {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Context{
		opts:   opts,
		log:    log.With(slog.String("component", "overlay")),
		layers: newOrderedMap[LayerID, *layer](),
		box:    &mailbox{},
		cursor: opts.DefaultCursor,
	}
}

func (c *Context) addLayer() *layerOwner {
	c.nextLayer++
	id := c.nextLayer
	c.layers.Put(id, newLayer(id))
	c.log.Debug("layer added", "layer", uint64(id))
	return newLayerOwner(id, c.box)
}

// AddLayer creates an empty, active layer and returns its first handle.
func (c *Context) AddLayer() *LayerHandle {
	return &LayerHandle{owner: c.addLayer()}
}

// AddSingularLayer creates an empty, active layer whose handle cannot be
// cloned.
func (c *Context) AddSingularLayer() *SingularLayerHandle {
	return &SingularLayerHandle{owner: c.addLayer()}
}

// drain applies every pending lifecycle message. Layer messages are applied
// before widget messages; a widget message for a vanished layer is a no-op.
func (c *Context) drain() {
	layerMsgs, widgetMsgs := c.box.take()
	for _, m := range layerMsgs {
		switch m.op {
		case layerRemove:
			if c.layers.Remove(m.layer) {
				c.log.Debug("layer removed", "layer", uint64(m.layer))
			}
		case layerSetActive:
			if l, ok := c.layers.Get(m.layer); ok {
				l.active = m.active
			}
		}
	}
	for _, m := range widgetMsgs {
		l, ok := c.layers.Get(m.layer)
		if !ok {
			continue
		}
		if l.widgets.Remove(m.widget) {
			c.log.Debug("widget removed", "layer", uint64(m.layer), "widget", uint64(m.widget))
		}
	}
}

// live returns the widgets of every active layer in render order.
func (c *Context) live() []liveWidget {
	var out []liveWidget
	for lid, l := range c.layers.All() {
		if !l.active {
			continue
		}
		for wid, w := range l.widgets.All() {
			out = append(out, liveWidget{key: widgetKey{layer: lid, widget: wid}, widget: w})
		}
	}
	return out
}

func (c *Context) lookup(key widgetKey) (Widget, bool, bool) {
	l, ok := c.layers.Get(key.layer)
	if !ok {
		return nil, false, false
	}
	w, ok := l.widgets.Get(key.widget)
	return w, ok, l.active
}

// Event drains pending messages and routes ev.
func (c *Context) Event(ev input.Event) {
	c.drain()
	switch e := ev.(type) {
	case input.PointerMoved:
		c.pointerMoved(e.Position)
	case input.PointerButton:
		if e.Button == input.MouseLeft && c.left.Observe(e.Pressed) {
			c.press(c.pointer)
		}
	case input.KeyEvent:
		if w := c.focused(); w != nil {
			w.OnKey(e.Key, e.Pressed)
		}
	case input.Typed:
		if w := c.focused(); w != nil {
			w.OnTyped(e.Char)
		}
	}
}

func (c *Context) pointerMoved(p graphics.Offset) {
	c.pointer = p
	widgets := c.live()
	top := -1
	for i, lw := range widgets {
		if lw.widget.Contains(p) {
			top = i
		}
	}
	for i, lw := range widgets {
		if i != top {
			lw.widget.SetHover(p, false)
		}
	}
	cursor := c.opts.DefaultCursor
	if top >= 0 {
		widgets[top].widget.SetHover(p, true)
		cursor = widgets[top].widget.CursorIcon(p)
	}
	c.setCursor(cursor)
}

func (c *Context) setCursor(icon graphics.CursorIcon) {
	if icon == c.cursor {
		return
	}
	c.cursor = icon
	if c.opts.Window != nil {
		c.opts.Window.SetCursor(icon)
	}
}

// press handles a left-button press edge at p. The topmost widget under the
// pointer is the target: it takes focus when focusable and then receives the
// click. Other focusable widgets under the pointer, and the previous focus
// holder, are told they do not have focus.
func (c *Context) press(p graphics.Offset) {
	var hits []liveWidget
	for _, lw := range c.live() {
		if lw.widget.Contains(p) {
			hits = append(hits, lw)
		}
	}
	if len(hits) == 0 {
		if c.opts.BlurOnEmptyPress {
			c.blur(p)
		}
		return
	}

	target := hits[len(hits)-1]
	for _, lw := range hits[:len(hits)-1] {
		if lw.widget.IsFocusable(p) {
			lw.widget.SetFocus(p, false)
		}
	}

	if target.widget.IsFocusable(p) {
		if c.focus == nil || *c.focus != target.key {
			c.blur(p)
			target.widget.SetFocus(p, true)
			key := target.key
			c.focus = &key
		}
	} else {
		c.blur(p)
	}
	target.widget.OnClick(p)
}

// blur clears focus, telling the holder if it still exists.
func (c *Context) blur(p graphics.Offset) {
	if c.focus == nil {
		return
	}
	if w, ok, _ := c.lookup(*c.focus); ok {
		w.SetFocus(p, false)
	}
	c.focus = nil
}

// focused returns the focus holder when it exists and its layer is active.
// A focus pointing at a removed widget is cleared.
func (c *Context) focused() Widget {
	if c.focus == nil {
		return nil
	}
	w, ok, active := c.lookup(*c.focus)
	if !ok {
		c.focus = nil
		return nil
	}
	if !active {
		return nil
	}
	return w
}

// Render drains pending messages and draws every widget of every active layer
// in insertion order. Each widget gets the next draw order, starting from
// Options.StartDrawOrder. The first surface error aborts the frame.
func (c *Context) Render(s graphics.Surface) error {
	c.drain()
	z := c.opts.StartDrawOrder
	for _, lw := range c.live() {
		if err := lw.widget.Render(s, z); err != nil {
			return &errors.OverlayError{
				Op:     "overlay.Context.Render",
				Kind:   errors.KindRender,
				Layer:  uint64(lw.key.layer),
				Widget: uint64(lw.key.widget),
				Err:    err,
			}
		}
		z++
	}
	return nil
}

// Cursor returns the cursor icon most recently requested.
func (c *Context) Cursor() graphics.CursorIcon {
	return c.cursor
}

// Pointer returns the last pointer position seen.
func (c *Context) Pointer() graphics.Offset {
	return c.pointer
}

// Focused drains pending messages and returns the widget holding focus, if
// any. The holder's layer may be inactive.
func (c *Context) Focused() (LayerID, WidgetID, bool) {
	c.drain()
	if c.focus == nil {
		return 0, 0, false
	}
	if _, ok, _ := c.lookup(*c.focus); !ok {
		c.focus = nil
		return 0, 0, false
	}
	return c.focus.layer, c.focus.widget, true
}
