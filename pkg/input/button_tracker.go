package input

// ButtonTracker turns raw button state reports into press edges.
//
// Hosts often repeat "down" while a button is held and may deliver an "up"
// without a matching "down" (for example after focus returns to the window).
// Only the transition from released to pressed is reported.
type ButtonTracker struct {
	down bool
}

// Observe records a state report and returns true when it is a press edge.
func (t *ButtonTracker) Observe(pressed bool) bool {
	switch {
	case pressed && !t.down:
		t.down = true
		return true
	case !pressed && t.down:
		t.down = false
	}
	return false
}

// Down reports whether the button is currently held.
func (t *ButtonTracker) Down() bool {
	return t.down
}
