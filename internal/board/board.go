// Package board holds the in-memory scheduling board: the slot collection,
// the timeline geometry, the drag/resize gesture state machine, and the
// undo/redo history. All reads (conflicts, segments) are pure and recomputed
// on demand; mutations are optimistic and persisted per slot on gesture
// release.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/tradetrackr/planboard/internal/logger"
	"github.com/tradetrackr/planboard/internal/schedule"
	"github.com/tradetrackr/planboard/internal/workcal"
)

// TaskSource supplies task records that are shown as read-only shadow slots.
type TaskSource interface {
	ListTasks(ctx context.Context) ([]schedule.ProjectTask, error)
}

// Board is the single mutable resource shared between rendering, conflict
// detection and gesture handling. It is not safe for concurrent use; all
// access happens on the UI event loop.
type Board struct {
	store    schedule.Store
	tasks    TaskSource // optional
	cal      *workcal.Calendar
	timeline Timeline
	history  *History

	concernID string
	slots     []*schedule.ScheduleSlot
	gesture   Gesture
}

// New creates a board backed by the given store. tasks may be nil.
func New(store schedule.Store, tasks TaskSource, concernID string, timeline Timeline) *Board {
	return &Board{
		store:     store,
		tasks:     tasks,
		cal:       workcal.New(),
		timeline:  timeline,
		history:   NewHistory(),
		concernID: concernID,
	}
}

// Load replaces the in-memory collection with the persisted slots merged
// with shadow slots derived from tasks.
func (b *Board) Load(ctx context.Context) error {
	persisted, err := b.store.List(ctx, "")
	if err != nil {
		return fmt.Errorf("listing slots: %w", err)
	}

	var derived []*schedule.ScheduleSlot
	if b.tasks != nil {
		records, err := b.tasks.ListTasks(ctx)
		if err != nil {
			// Shadow slots are auxiliary; the board still works without them.
			logger.Warn("loading task shadow slots failed", "err", err)
		} else {
			for _, rec := range records {
				if s := schedule.SlotFromTask(rec, b.concernID); s != nil {
					derived = append(derived, s)
				}
			}
		}
	}

	b.slots = schedule.MergeSlots(persisted, derived)
	return nil
}

// Slots returns the current collection.
func (b *Board) Slots() []*schedule.ScheduleSlot {
	return b.slots
}

// Slot returns the slot with the given ID, or nil.
func (b *Board) Slot(id string) *schedule.ScheduleSlot {
	for _, s := range b.slots {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Timeline returns the board's timeline geometry.
func (b *Board) Timeline() Timeline {
	return b.timeline
}

// Calendar returns the board's work calendar.
func (b *Board) Calendar() *workcal.Calendar {
	return b.cal
}

// Gesture returns the current gesture state.
func (b *Board) Gesture() Gesture {
	return b.gesture
}

// Conflicts recomputes the conflict set from the current collection.
func (b *Board) Conflicts() []schedule.Conflict {
	return schedule.FindConflicts(b.slots)
}

// SegmentsFor splits a slot into its working-day segments for rendering.
func (b *Board) SegmentsFor(s *schedule.ScheduleSlot) []schedule.WorkSegment {
	return schedule.Segments(b.cal, s.Start, s.End)
}

// BeginDrag starts moving a slot. pointerDay is the day index under the
// pointer; the offset between it and the slot's start day is captured so the
// bar does not jump to the pointer. A snapshot of the pre-gesture collection
// is pushed before anything changes.
func (b *Board) BeginDrag(slotID string, pointerDay int) error {
	if b.gesture.Active() {
		return ErrGestureActive
	}
	s := b.Slot(slotID)
	if s == nil {
		return schedule.ErrSlotNotFound
	}
	if s.Derived {
		return schedule.ErrDerivedSlot
	}

	startIdx := b.timeline.IndexOf(s.Start)
	if startIdx < 0 {
		startIdx = 0
	}

	b.history.Snapshot(b.slots)
	b.gesture = Gesture{Kind: GestureDragging, SlotID: slotID, OffsetDays: pointerDay - startIdx}
	return nil
}

// DragTo moves the dragged slot so its start lands on the day under the
// pointer minus the captured offset. A candidate landing on a non-working
// day advances forward, never backward, to the next working day. The
// duration is preserved exactly; only the start shifts and the end follows.
// A candidate with no working day left in the range is ignored.
func (b *Board) DragTo(pointerDay int) error {
	if b.gesture.Kind != GestureDragging {
		return ErrNoGesture
	}
	s := b.Slot(b.gesture.SlotID)
	if s == nil {
		return schedule.ErrSlotNotFound
	}

	candidate := b.timeline.Clamp(pointerDay - b.gesture.OffsetDays)
	for candidate < b.timeline.NumDays && b.cal.IsNonWorkingDay(b.timeline.DateOf(candidate)) {
		candidate++
	}
	if candidate >= b.timeline.NumDays {
		return nil
	}

	day := b.timeline.DateOf(candidate)
	newStart := time.Date(day.Year(), day.Month(), day.Day(),
		s.Start.Hour(), s.Start.Minute(), s.Start.Second(), s.Start.Nanosecond(), s.Start.Location())
	if newStart.Equal(s.Start) {
		return nil
	}

	duration := s.End.Sub(s.Start)
	s.Start = newStart
	s.End = newStart.Add(duration)
	b.gesture.mutated = true
	return nil
}

// BeginResize starts extending a slot's end via its trailing edge handle.
// The start stays fixed for the whole gesture.
func (b *Board) BeginResize(slotID string) error {
	if b.gesture.Active() {
		return ErrGestureActive
	}
	s := b.Slot(slotID)
	if s == nil {
		return schedule.ErrSlotNotFound
	}
	if s.Derived {
		return schedule.ErrDerivedSlot
	}

	b.history.Snapshot(b.slots)
	b.gesture = Gesture{Kind: GestureResizing, SlotID: slotID}
	return nil
}

// ResizeTo sets the resized slot's end to the end of the day under the
// pointer. Candidates before the slot's start day are rejected as no-ops.
func (b *Board) ResizeTo(pointerDay int) error {
	if b.gesture.Kind != GestureResizing {
		return ErrNoGesture
	}
	s := b.Slot(b.gesture.SlotID)
	if s == nil {
		return schedule.ErrSlotNotFound
	}

	candidate := b.timeline.Clamp(pointerDay)
	startIdx := b.timeline.IndexOf(s.Start)
	if startIdx >= 0 && candidate < startIdx {
		return nil
	}

	day := b.timeline.DateOf(candidate)
	newEnd := time.Date(day.Year(), day.Month(), day.Day(),
		23, 59, 59, int(time.Second-time.Nanosecond), day.Location())
	if newEnd.Equal(s.End) {
		return nil
	}

	s.End = newEnd
	b.gesture.mutated = true
	return nil
}

// Release ends the active gesture and persists the final slot state through
// the store, scoped by slot ID. A persistence failure is logged and
// returned for display, but the optimistic in-memory state is kept either
// way; commits are last-write-wins with no rollback. Releasing with no
// active gesture is a no-op.
func (b *Board) Release(ctx context.Context) error {
	if !b.gesture.Active() {
		return nil
	}

	gesture := b.gesture
	b.gesture = Gesture{}

	if !gesture.mutated {
		return nil
	}

	s := b.Slot(gesture.SlotID)
	if s == nil {
		return nil
	}

	start, end := s.Start, s.End
	err := b.store.Update(ctx, s.ID, schedule.SlotUpdate{Start: &start, End: &end})
	if err != nil {
		logger.Error("persisting slot failed", "slot", s.ID, "err", err)
		return fmt.Errorf("persisting slot %s: %w", s.ID, err)
	}
	return nil
}

// CreateInput describes a quick-create request.
type CreateInput struct {
	ProjectID   string
	AssigneeIDs []string
	Start       time.Time
	End         time.Time
	Color       string
	Note        string
}

// Create validates the input and creates one slot per selected assignee,
// matching the quick-create behavior of the board. A snapshot is pushed
// before the collection changes. Returns the created slots.
func (b *Board) Create(ctx context.Context, in CreateInput) ([]*schedule.ScheduleSlot, error) {
	if _, err := schedule.New(b.concernID, in.ProjectID, in.AssigneeIDs, in.Start, in.End); err != nil {
		return nil, err
	}

	b.history.Snapshot(b.slots)

	var created []*schedule.ScheduleSlot
	for _, assignee := range in.AssigneeIDs {
		s := &schedule.ScheduleSlot{
			ConcernID:   b.concernID,
			ProjectID:   in.ProjectID,
			AssigneeIDs: []string{assignee},
			Start:       in.Start,
			End:         in.End,
			Color:       in.Color,
			Note:        in.Note,
			Status:      schedule.StatusPlanned,
		}
		id, err := b.store.Create(ctx, s)
		if err != nil {
			return created, fmt.Errorf("creating slot for %s: %w", assignee, err)
		}
		s.ID = id
		b.slots = append(b.slots, s)
		created = append(created, s)
	}

	return created, nil
}

// Update applies a partial edit to a slot (the edit dialog path), snapshots
// first, and persists. Derived slots are refused.
func (b *Board) Update(ctx context.Context, id string, upd schedule.SlotUpdate) error {
	s := b.Slot(id)
	if s == nil {
		return schedule.ErrSlotNotFound
	}
	if s.Derived {
		return schedule.ErrDerivedSlot
	}

	b.history.Snapshot(b.slots)
	applyUpdate(s, upd)

	if err := b.store.Update(ctx, id, upd); err != nil {
		logger.Error("persisting slot failed", "slot", id, "err", err)
		return fmt.Errorf("persisting slot %s: %w", id, err)
	}
	return nil
}

// Delete removes a slot, snapshotting first. Derived slots are refused.
func (b *Board) Delete(ctx context.Context, id string) error {
	s := b.Slot(id)
	if s == nil {
		return schedule.ErrSlotNotFound
	}
	if s.Derived {
		return schedule.ErrDerivedSlot
	}

	b.history.Snapshot(b.slots)

	kept := b.slots[:0]
	for _, slot := range b.slots {
		if slot.ID != id {
			kept = append(kept, slot)
		}
	}
	b.slots = kept

	if err := b.store.Delete(ctx, id); err != nil {
		logger.Error("deleting slot failed", "slot", id, "err", err)
		return fmt.Errorf("deleting slot %s: %w", id, err)
	}
	return nil
}

// Undo restores the previous snapshot, if any.
func (b *Board) Undo() bool {
	snapshot, ok := b.history.Undo(b.slots)
	if !ok {
		return false
	}
	b.slots = snapshot
	return true
}

// Redo restores the next snapshot, if any.
func (b *Board) Redo() bool {
	snapshot, ok := b.history.Redo(b.slots)
	if !ok {
		return false
	}
	b.slots = snapshot
	return true
}

// CanUndo reports whether undo is available.
func (b *Board) CanUndo() bool { return b.history.CanUndo() }

// CanRedo reports whether redo is available.
func (b *Board) CanRedo() bool { return b.history.CanRedo() }

func applyUpdate(s *schedule.ScheduleSlot, upd schedule.SlotUpdate) {
	if upd.ProjectID != nil {
		s.ProjectID = *upd.ProjectID
	}
	if upd.AssigneeIDs != nil {
		s.AssigneeIDs = append([]string(nil), (*upd.AssigneeIDs)...)
	}
	if upd.Start != nil {
		s.Start = *upd.Start
	}
	if upd.End != nil {
		s.End = *upd.End
	}
	if upd.Color != nil {
		s.Color = *upd.Color
	}
	if upd.Note != nil {
		s.Note = *upd.Note
	}
	if upd.Status != nil {
		s.Status = *upd.Status
	}
}
