package channels

import "github.com/go-drift/overlay/pkg/overlay"

// NoPanel is the active index when every panel of a ConcealerManager is
// closed.
const NoPanel = -1

// ConcealerManager is the channel of a group of panels of which at most one is
// open.
type ConcealerManager struct {
	panels []*Concealer
	active *Cell[int]
}

// NewConcealerManager groups panels. Transitions run inside active's Update,
// and active ends each one holding the open panel's index or NoPanel.
func NewConcealerManager(panels []*Concealer, active *Cell[int]) *ConcealerManager {
	return &ConcealerManager{panels: panels, active: active}
}

// Len returns the number of panels.
func (m *ConcealerManager) Len() int {
	return len(m.panels)
}

// Panel returns the i'th panel, or nil when i is out of range.
func (m *ConcealerManager) Panel(i int) *Concealer {
	if i < 0 || i >= len(m.panels) {
		return nil
	}
	return m.panels[i]
}

// Layer returns the contents layer of the i'th panel, or nil when i is out of
// range.
func (m *ConcealerManager) Layer(i int) *overlay.SingularLayerHandle {
	if p := m.Panel(i); p != nil {
		return p.Layer()
	}
	return nil
}

// Active returns the index of the open panel. A panel opened through its own
// Concealer channel counts too.
func (m *ConcealerManager) Active() (int, bool) {
	for i, p := range m.panels {
		if p.IsOpen() {
			return i, true
		}
	}
	return NoPanel, false
}

// SetActive opens panel i and closes every other panel. An index out of range
// closes every panel.
func (m *ConcealerManager) SetActive(i int) {
	m.active.Update(func(int) int {
		return m.switchTo(i)
	})
}

// Clear closes every panel.
func (m *ConcealerManager) Clear() {
	m.SetActive(NoPanel)
}

// Toggle applies a click on panel i's header: an open panel closes, any other
// panel opens in place of the current one.
func (m *ConcealerManager) Toggle(i int) {
	m.active.Update(func(int) int {
		if p := m.Panel(i); p != nil && p.IsOpen() {
			return m.switchTo(NoPanel)
		}
		return m.switchTo(i)
	})
}

// switchTo leaves only panel next open. Every panel is checked, so panels
// opened behind the group's back are closed as well.
func (m *ConcealerManager) switchTo(next int) int {
	if m.Panel(next) == nil {
		next = NoPanel
	}
	for j, p := range m.panels {
		if want := j == next; p.IsOpen() != want {
			p.SetOpen(want)
		}
	}
	return next
}
