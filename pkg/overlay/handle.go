package overlay

import "sync/atomic"

// WidgetHandle is the ownership token of one widget.
type WidgetHandle struct {
	layer    LayerID
	id       WidgetID
	box      *mailbox
	released atomic.Bool
}

// Layer returns the id of the layer holding the widget.
func (h *WidgetHandle) Layer() LayerID {
	return h.layer
}

// ID returns the widget's id within its layer.
func (h *WidgetHandle) ID() WidgetID {
	return h.id
}

// Release removes the widget at the next drain point. It is safe to call more
// than once, and harmless after the layer itself is gone.
func (h *WidgetHandle) Release() {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	h.box.postWidget(widgetMessage{layer: h.layer, widget: h.id})
}

// Response is returned by Add. It pairs the widget's channel with the handles
// that keep the widget, and any layers it controls, alive.
type Response[C any] struct {
	// Channel is used to observe and influence the widget.
	Channel C

	handle *WidgetHandle
	layers []*SingularLayerHandle
}

// Handle returns the widget's ownership token.
func (r *Response[C]) Handle() *WidgetHandle {
	return r.handle
}

// Layers returns the layers the widget created and owns, in creation order.
func (r *Response[C]) Layers() []*SingularLayerHandle {
	return r.layers
}

// Release removes the widget and every layer it owns.
func (r *Response[C]) Release() {
	if r == nil {
		return
	}
	r.handle.Release()
	for _, l := range r.layers {
		l.Release()
	}
}
