package schedule

import (
	"time"
)

// Task priorities, used only to pick a display color for shadow slots.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Shadow slot colors by priority.
const (
	colorHigh    = "#ef4444"
	colorMedium  = "#f59e0b"
	colorDefault = "#3b82f6"
)

// ProjectTask is the minimal view of a task record needed to synthesize a
// read-only shadow slot for the board. Tasks live in their own module; only
// those with a due instant and a project reference show up here.
type ProjectTask struct {
	ID          string
	ConcernID   string
	ProjectID   string
	AssigneeIDs []string
	Title       string
	Priority    string
	Status      string
	DueAt       time.Time
	CreatedAt   time.Time
}

// SlotFromTask synthesizes a derived slot from a task record. The due
// instant becomes the slot end; the start is the task creation time, or one
// day before the due date when that is unknown. Derived slots participate in
// rendering and conflict detection like persisted ones but are never written
// back through the store. Returns nil for tasks without a due date or
// project.
func SlotFromTask(t ProjectTask, concernID string) *ScheduleSlot {
	if t.DueAt.IsZero() || t.ProjectID == "" {
		return nil
	}

	start := t.CreatedAt
	if start.IsZero() || !start.Before(t.DueAt) {
		start = t.DueAt.Add(-24 * time.Hour)
	}

	if t.ConcernID != "" {
		concernID = t.ConcernID
	}

	return &ScheduleSlot{
		ID:          "task-" + t.ID,
		ConcernID:   concernID,
		ProjectID:   t.ProjectID,
		AssigneeIDs: append([]string(nil), t.AssigneeIDs...),
		Start:       start,
		End:         t.DueAt,
		Color:       taskColor(t.Priority),
		Note:        t.Title,
		Status:      taskStatus(t.Status),
		Derived:     true,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.CreatedAt,
	}
}

// MergeSlots combines persisted slots with derived shadow slots into the
// unified collection the board renders. Pure; neither input is modified.
func MergeSlots(persisted, derived []*ScheduleSlot) []*ScheduleSlot {
	out := make([]*ScheduleSlot, 0, len(persisted)+len(derived))
	out = append(out, persisted...)
	out = append(out, derived...)
	return out
}

func taskColor(priority string) string {
	switch priority {
	case PriorityHigh:
		return colorHigh
	case PriorityMedium:
		return colorMedium
	default:
		return colorDefault
	}
}

func taskStatus(s string) Status {
	switch s {
	case "completed", "done":
		return StatusCompleted
	case "in-progress", "in_progress":
		return StatusConfirmed
	default:
		return StatusPlanned
	}
}
