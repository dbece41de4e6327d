package overlay

import "sync"

type layerOp int

const (
	layerRemove layerOp = iota
	layerSetActive
)

type layerMessage struct {
	layer  LayerID
	op     layerOp
	active bool
}

type widgetMessage struct {
	layer  LayerID
	widget WidgetID
}

// mailbox collects lifecycle messages posted by handles. Handles may post
// from any goroutine; the context takes the whole backlog at drain points.
type mailbox struct {
	mu      sync.Mutex
	layers  []layerMessage
	widgets []widgetMessage
}

func (m *mailbox) postLayer(msg layerMessage) {
	m.mu.Lock()
	m.layers = append(m.layers, msg)
	m.mu.Unlock()
}

func (m *mailbox) postWidget(msg widgetMessage) {
	m.mu.Lock()
	m.widgets = append(m.widgets, msg)
	m.mu.Unlock()
}

func (m *mailbox) take() ([]layerMessage, []widgetMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	layers, widgets := m.layers, m.widgets
	m.layers, m.widgets = nil, nil
	return layers, widgets
}
