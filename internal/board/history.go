package board

import (
	"github.com/tradetrackr/planboard/internal/schedule"
)

// History provides undo/redo over whole-board snapshots. Both stacks hold
// full deep copies of the slot collection; the dataset is small enough that
// snapshotting is simpler and safer than diffing.
type History struct {
	undoStack [][]*schedule.ScheduleSlot
	redoStack [][]*schedule.ScheduleSlot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Snapshot pushes a copy of the current collection onto the undo stack and
// clears the redo stack. It must be called before every mutation.
func (h *History) Snapshot(current []*schedule.ScheduleSlot) {
	h.undoStack = append(h.undoStack, schedule.CloneAll(current))
	h.redoStack = nil
}

// Undo pops the most recent snapshot, pushing the caller's current
// collection onto the redo stack. Returns nil, false when there is nothing
// to undo.
func (h *History) Undo(current []*schedule.ScheduleSlot) ([]*schedule.ScheduleSlot, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	snapshot := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, schedule.CloneAll(current))
	return snapshot, true
}

// Redo is symmetric to Undo.
func (h *History) Redo(current []*schedule.ScheduleSlot) ([]*schedule.ScheduleSlot, bool) {
	if len(h.redoStack) == 0 {
		return nil, false
	}
	snapshot := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, schedule.CloneAll(current))
	return snapshot, true
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}
