package overlay

import "sync/atomic"

// LayerID identifies a layer for the lifetime of its Context. IDs start at 1
// and are never reused.
type LayerID uint64

// WidgetID identifies a widget within its layer. IDs start at 1 and are never
// reused within the layer.
type WidgetID uint64

// layer is an ordered, independently activatable group of widgets.
type layer struct {
	id         LayerID
	active     bool
	widgets    *orderedMap[WidgetID, Widget]
	nextWidget WidgetID
}

func newLayer(id LayerID) *layer {
	return &layer{
		id:      id,
		active:  true,
		widgets: newOrderedMap[WidgetID, Widget](),
	}
}

func (l *layer) insert(w Widget) WidgetID {
	l.nextWidget++
	l.widgets.Put(l.nextWidget, w)
	return l.nextWidget
}

// LayerRef is anything that names a layer a widget can be added to.
// Both *LayerHandle and *SingularLayerHandle satisfy it.
type LayerRef interface {
	ID() LayerID
}

// layerOwner is the state shared by every handle of one layer.
type layerOwner struct {
	id     LayerID
	box    *mailbox
	refs   atomic.Int64
	active atomic.Bool
}

func newLayerOwner(id LayerID, box *mailbox) *layerOwner {
	o := &layerOwner{id: id, box: box}
	o.refs.Store(1)
	o.active.Store(true)
	return o
}

func (o *layerOwner) release() {
	if o.refs.Add(-1) == 0 {
		o.box.postLayer(layerMessage{layer: o.id, op: layerRemove})
	}
}

func (o *layerOwner) setActive(active bool) {
	o.active.Store(active)
	o.box.postLayer(layerMessage{layer: o.id, op: layerSetActive, active: active})
}

// LayerHandle is a shared ownership token for a layer. Clone it to hand out
// further owners; the layer is removed once every clone has been released.
type LayerHandle struct {
	owner    *layerOwner
	released atomic.Bool
}

// ID returns the layer's id, or 0 for a nil handle.
func (h *LayerHandle) ID() LayerID {
	if h == nil || h.owner == nil {
		return 0
	}
	return h.owner.id
}

// Clone returns a new owner of the same layer. Cloning a released or zero
// handle returns a released handle that owns nothing.
func (h *LayerHandle) Clone() *LayerHandle {
	if h == nil {
		return nil
	}
	clone := &LayerHandle{owner: h.owner}
	if h.owner == nil || h.released.Load() {
		clone.released.Store(true)
		return clone
	}
	h.owner.refs.Add(1)
	return clone
}

// Release gives up this handle's ownership. It is safe to call more than once.
func (h *LayerHandle) Release() {
	if h == nil || h.owner == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	h.owner.release()
}

// SetActive requests that the layer be shown and routed to, or hidden. The
// change is applied at the context's next drain point.
func (h *LayerHandle) SetActive(active bool) {
	if h == nil || h.owner == nil || h.released.Load() {
		return
	}
	h.owner.setActive(active)
}

// Active reports the most recently requested activity state.
func (h *LayerHandle) Active() bool {
	return h != nil && h.owner != nil && h.owner.active.Load()
}

// SingularLayerHandle is the only ownership token of its layer. It cannot be
// cloned, which lets a controlling widget own a layer outright.
type SingularLayerHandle struct {
	owner    *layerOwner
	released atomic.Bool
}

// ID returns the layer's id, or 0 for a nil handle.
func (h *SingularLayerHandle) ID() LayerID {
	if h == nil || h.owner == nil {
		return 0
	}
	return h.owner.id
}

// Release removes the layer at the next drain point. It is safe to call more
// than once.
func (h *SingularLayerHandle) Release() {
	if h == nil || h.owner == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	h.owner.release()
}

// SetActive requests that the layer be shown and routed to, or hidden.
func (h *SingularLayerHandle) SetActive(active bool) {
	if h == nil || h.owner == nil || h.released.Load() {
		return
	}
	h.owner.setActive(active)
}

// Active reports the most recently requested activity state.
func (h *SingularLayerHandle) Active() bool {
	return h != nil && h.owner != nil && h.owner.active.Load()
}
