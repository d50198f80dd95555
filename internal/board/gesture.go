package board

import "errors"

// Gesture errors.
var (
	ErrGestureActive = errors.New("another gesture is already active")
	ErrNoGesture     = errors.New("no gesture is active")
)

// GestureKind identifies the active direct-manipulation gesture. Dragging
// and resizing are mutually exclusive.
type GestureKind int

const (
	GestureIdle GestureKind = iota
	GestureDragging
	GestureResizing
)

// Gesture is the explicit state of the single active gesture. It replaces
// ambient per-widget drag fields: the slot being manipulated and the pointer
// offset travel with the state, not with the view.
type Gesture struct {
	Kind       GestureKind
	SlotID     string
	OffsetDays int  // dragging only: pointer day minus slot start day
	mutated    bool // true once the gesture has changed the slot
}

// Active reports whether a gesture is in progress.
func (g Gesture) Active() bool {
	return g.Kind != GestureIdle
}
