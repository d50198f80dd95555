package schedule

import (
	"context"
	"time"
)

// SlotUpdate carries a partial slot update. Nil fields are left unchanged.
type SlotUpdate struct {
	ProjectID   *string
	AssigneeIDs *[]string
	Start       *time.Time
	End         *time.Time
	Color       *string
	Note        *string
	Status      *Status
}

// Store is the slot persistence boundary. Implementations are scoped to a
// single concern; all calls are asynchronous I/O and may complete after
// further local edits have happened. Commits are per-slot and
// last-write-wins.
type Store interface {
	// List returns all slots of the concern, optionally filtered by project.
	// An empty projectID returns everything.
	List(ctx context.Context, projectID string) ([]*ScheduleSlot, error)

	// Create persists a new slot and returns its assigned ID. The store sets
	// the audit metadata. Invalid slots and derived slots are rejected.
	Create(ctx context.Context, s *ScheduleSlot) (string, error)

	// Update applies a partial update to the slot with the given ID and
	// touches UpdatedAt. Returns ErrSlotNotFound for unknown IDs.
	Update(ctx context.Context, id string, upd SlotUpdate) error

	// Delete removes the slot with the given ID.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
