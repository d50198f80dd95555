// Package schedule defines the core domain types for planboard: schedule
// slots assigning workers to projects over time, the conflicts derived from
// them, and the working-day segments used for rendering.
package schedule

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrEndNotAfterStart = errors.New("slot end must be after start")
	ErrNoAssignees      = errors.New("slot must have at least one assignee")
	ErrEmptyProject     = errors.New("slot must reference a project")
)

// Domain errors.
var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrDerivedSlot  = errors.New("derived slot cannot be persisted")
)

// Status represents the planning state of a slot. It is informational only
// and does not affect conflict or calendar logic.
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

// Valid returns true if the status is a known value.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusConfirmed, StatusCompleted:
		return true
	default:
		return false
	}
}

// Label returns a display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusPlanned:
		return "Geplant"
	case StatusConfirmed:
		return "Bestätigt"
	case StatusCompleted:
		return "Abgeschlossen"
	default:
		return string(s)
	}
}

// ScheduleSlot is a time-bounded assignment of one or more workers to a
// project. Derived slots are synthesized from task records for display and
// conflict detection but are never written back to the store.
type ScheduleSlot struct {
	ID          string
	ConcernID   string
	ProjectID   string
	AssigneeIDs []string
	Start       time.Time
	End         time.Time
	Color       string
	Note        string
	Status      Status
	Derived     bool

	// Audit metadata, set by the store, never mutated by board logic.
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a validated slot with planned status.
func New(concernID, projectID string, assigneeIDs []string, start, end time.Time) (*ScheduleSlot, error) {
	s := &ScheduleSlot{
		ConcernID:   concernID,
		ProjectID:   projectID,
		AssigneeIDs: assigneeIDs,
		Start:       start,
		End:         end,
		Status:      StatusPlanned,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the slot invariants: a strict time range and a non-empty
// assignee set. Zero-length slots are invalid.
func (s *ScheduleSlot) Validate() error {
	if s.ProjectID == "" {
		return ErrEmptyProject
	}
	if len(s.AssigneeIDs) == 0 {
		return ErrNoAssignees
	}
	if !s.Start.Before(s.End) {
		return ErrEndNotAfterStart
	}
	return nil
}

// Duration returns the slot length.
func (s *ScheduleSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Overlaps reports whether the two slots overlap under half-open semantics.
// Touching ranges (s.End == o.Start) do not overlap.
func (s *ScheduleSlot) Overlaps(o *ScheduleSlot) bool {
	if o == nil {
		return false
	}
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// SharesAssignee reports whether the two slots have a common assignee.
func (s *ScheduleSlot) SharesAssignee(o *ScheduleSlot) bool {
	if o == nil {
		return false
	}
	for _, a := range s.AssigneeIDs {
		for _, b := range o.AssigneeIDs {
			if a == b {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the slot.
func (s *ScheduleSlot) Clone() *ScheduleSlot {
	c := *s
	c.AssigneeIDs = append([]string(nil), s.AssigneeIDs...)
	return &c
}

// CloneAll deep-copies a slot collection. Used for history snapshots.
func CloneAll(slots []*ScheduleSlot) []*ScheduleSlot {
	out := make([]*ScheduleSlot, len(slots))
	for i, s := range slots {
		out[i] = s.Clone()
	}
	return out
}

// FilterOpts narrows a slot collection for display.
type FilterOpts struct {
	ProjectID  string
	AssigneeID string
	Status     Status // empty means all
}

// Filter returns the slots matching all set fields of opts.
func Filter(slots []*ScheduleSlot, opts FilterOpts) []*ScheduleSlot {
	var out []*ScheduleSlot
	for _, s := range slots {
		if opts.ProjectID != "" && s.ProjectID != opts.ProjectID {
			continue
		}
		if opts.Status != "" && s.Status != opts.Status {
			continue
		}
		if opts.AssigneeID != "" && !hasAssignee(s, opts.AssigneeID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hasAssignee(s *ScheduleSlot, id string) bool {
	for _, a := range s.AssigneeIDs {
		if a == id {
			return true
		}
	}
	return false
}
