package overlay

import (
	"github.com/go-drift/overlay/pkg/errors"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
)

// Widget is the capability set every widget kind implements. Positions are
// in host coordinates.
//
// Embed [Base] to inherit no-op input handlers and the default cursor.
type Widget interface {
	// Contains reports whether p hits the widget.
	Contains(p graphics.Offset) bool
	// IsFocusable reports whether a press at p may give the widget focus.
	IsFocusable(p graphics.Offset) bool
	// Render draws the widget with draw order z.
	Render(s graphics.Surface, z int) error

	OnClick(p graphics.Offset)
	OnKey(key input.Key, pressed bool)
	OnTyped(r rune)
	SetHover(p graphics.Offset, hover bool)
	SetFocus(p graphics.Offset, focus bool)
	CursorIcon(p graphics.Offset) graphics.CursorIcon
}

// Base provides default behavior for optional Widget methods.
type Base struct{}

func (Base) OnClick(graphics.Offset)        {}
func (Base) OnKey(input.Key, bool)          {}
func (Base) OnTyped(rune)                   {}
func (Base) SetHover(graphics.Offset, bool) {}
func (Base) SetFocus(graphics.Offset, bool) {}

func (Base) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return graphics.CursorDefault
}

// Config is a declarative widget description. Build consumes it into the
// widget kept by the context and the channel handed back to the caller.
type Config[C any] interface {
	Build(b *Builder) (Widget, C)
}

// Builder is passed to Config.Build. Layers created through it are owned by
// the resulting Response.
type Builder struct {
	ctx    *Context
	layers []*SingularLayerHandle
}

// AddSingularLayer creates a layer owned by the widget being built.
func (b *Builder) AddSingularLayer() *SingularLayerHandle {
	h := b.ctx.AddSingularLayer()
	b.layers = append(b.layers, h)
	return h
}

// Add consumes cfg into a widget stored in the given layer.
//
// Pending lifecycle messages are applied first, so a layer whose handles were
// all released is reported as missing rather than written to.
func Add[C any](ctx *Context, cfg Config[C], target LayerRef) (*Response[C], error) {
	ctx.drain()

	var id LayerID
	if target != nil {
		id = target.ID()
	}
	l, ok := ctx.layers.Get(id)
	if !ok {
		return nil, &errors.OverlayError{
			Op:    "overlay.Add",
			Kind:  errors.KindLayerNotFound,
			Layer: uint64(id),
			Err:   errors.ErrLayerNotFound,
		}
	}

	b := &Builder{ctx: ctx}
	w, ch := cfg.Build(b)
	wid := l.insert(w)
	ctx.log.Debug("widget added", "layer", uint64(l.id), "widget", uint64(wid), "owned_layers", len(b.layers))

	return &Response[C]{
		Channel: ch,
		handle:  &WidgetHandle{layer: l.id, id: wid, box: ctx.box},
		layers:  b.layers,
	}, nil
}
