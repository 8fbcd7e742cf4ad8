package ui

import "github.com/OpticalFlyer/cleangui/geom"

// TouchTracker turns polled pointer state into press and release events.
// Only the primary contact is tracked. A release is reported at the last
// position seen while down, since touch hardware stops reporting
// coordinates once the finger is lifted.
type TouchTracker struct {
	target TouchListener
	down   bool
	last   geom.Vec2
}

func NewTouchTracker(target TouchListener) *TouchTracker {
	return &TouchTracker{target: target}
}

// Sample feeds one poll result. pos is ignored when down is false.
func (t *TouchTracker) Sample(down bool, pos geom.Vec2) {
	switch {
	case down && !t.down:
		t.down = true
		t.last = pos
		t.target.TouchPressed(pos)
	case down:
		t.last = pos
	case t.down:
		t.down = false
		t.target.TouchReleased(t.last)
	}
}

// IsDown reports whether a contact is currently held.
func (t *TouchTracker) IsDown() bool { return t.down }
