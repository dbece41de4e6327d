package widgets

import (
	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// ConcealerManager groups concealers so that at most one panel is open.
// Opening a panel closes the one open before it, and clicking the open
// panel's header closes it.
type ConcealerManager struct {
	Panels []Concealer
}

// Build implements overlay.Config.
func (m ConcealerManager) Build(b *overlay.Builder) (overlay.Widget, *channels.ConcealerManager) {
	active := channels.NoPanel
	w := &concealerManagerWidget{}
	chans := make([]*channels.Concealer, 0, len(m.Panels))
	for i, cfg := range m.Panels {
		open := cfg.Open && active == channels.NoPanel
		if open {
			active = i
		}
		cfg.Open = open
		pw, ch := newConcealer(b, cfg)
		w.panels = append(w.panels, pw)
		chans = append(chans, ch)
	}
	w.group = channels.NewConcealerManager(chans, channels.NewCell(active))
	return w, w.group
}

type concealerManagerWidget struct {
	overlay.Base
	panels []*concealerWidget
	group  *channels.ConcealerManager
}

// headerAt returns the index of the panel whose header contains p, or -1.
func (w *concealerManagerWidget) headerAt(p graphics.Offset) int {
	for i, pw := range w.panels {
		if pw.Contains(p) {
			return i
		}
	}
	return -1
}

func (w *concealerManagerWidget) Contains(p graphics.Offset) bool {
	return w.headerAt(p) >= 0
}

func (w *concealerManagerWidget) IsFocusable(graphics.Offset) bool { return false }

func (w *concealerManagerWidget) SetHover(p graphics.Offset, hover bool) {
	hit := -1
	if hover {
		hit = w.headerAt(p)
	}
	for i, pw := range w.panels {
		pw.SetHover(p, i == hit)
	}
}

// OnClick applies a header click to the group. Presses off every header land
// in the open panel's layer, not here.
func (w *concealerManagerWidget) OnClick(p graphics.Offset) {
	i := w.headerAt(p)
	if i < 0 {
		return
	}
	w.group.Toggle(i)
	w.panels[i].header.OnClick(p)
}

func (w *concealerManagerWidget) CursorIcon(p graphics.Offset) graphics.CursorIcon {
	if i := w.headerAt(p); i >= 0 {
		return w.panels[i].CursorIcon(p)
	}
	return graphics.CursorDefault
}

func (w *concealerManagerWidget) Render(s graphics.Surface, z int) error {
	for _, pw := range w.panels {
		if err := pw.Render(s, z); err != nil {
			return err
		}
	}
	return nil
}
