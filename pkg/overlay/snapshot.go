package overlay

import "gopkg.in/yaml.v3"

// Snapshot is a point-in-time view of the context's layers, used for
// debugging and tests.
type Snapshot struct {
	Layers []LayerSnapshot `yaml:"layers"`
	Focus  *WidgetRef      `yaml:"focus,omitempty"`
	Cursor string          `yaml:"cursor"`
}

// LayerSnapshot lists a layer's widgets in render order.
type LayerSnapshot struct {
	ID      LayerID    `yaml:"id"`
	Active  bool       `yaml:"active"`
	Widgets []WidgetID `yaml:"widgets,flow"`
}

// WidgetRef names a widget by layer and id.
type WidgetRef struct {
	Layer  LayerID  `yaml:"layer"`
	Widget WidgetID `yaml:"widget"`
}

// Snapshot drains pending messages and captures the live set.
func (c *Context) Snapshot() Snapshot {
	snap := Snapshot{Cursor: c.cursor.String()}
	if l, w, ok := c.Focused(); ok {
		snap.Focus = &WidgetRef{Layer: l, Widget: w}
	}
	for id, l := range c.layers.All() {
		ls := LayerSnapshot{ID: id, Active: l.active}
		for wid := range l.widgets.All() {
			ls.Widgets = append(ls.Widgets, wid)
		}
		snap.Layers = append(snap.Layers, ls)
	}
	return snap
}

// Layer returns the snapshot of the layer with the given id.
func (s Snapshot) Layer(id LayerID) (LayerSnapshot, bool) {
	for _, l := range s.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return LayerSnapshot{}, false
}

// WidgetCount returns the number of widgets across all layers.
func (s Snapshot) WidgetCount() int {
	n := 0
	for _, l := range s.Layers {
		n += len(l.Widgets)
	}
	return n
}

// YAML encodes the snapshot.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
