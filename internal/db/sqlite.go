// Package db provides the SQLite implementation of the schedule store.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tradetrackr/planboard/internal/schedule"
)

// Audit actions, mirroring the trail the rest of the application writes.
const (
	auditCreate = "schedule_create"
	auditUpdate = "schedule_update"
	auditDelete = "schedule_delete"
)

// SQLite implements schedule.Store. All operations are scoped to the
// concern given at construction time.
type SQLite struct {
	db        *sql.DB
	concernID string
	actorUID  string
	now       func() time.Time
}

// New creates a new SQLite store and runs migrations.
func New(path, concernID, actorUID string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, concernID: concernID, actorUID: actorUID, now: time.Now}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// List returns all slots of the concern, optionally filtered by project.
func (s *SQLite) List(ctx context.Context, projectID string) ([]*schedule.ScheduleSlot, error) {
	query := `
		SELECT id, concern_id, project_id, assignee_ids, start_at, end_at,
		       color, note, status, created_by, created_at, updated_at
		FROM schedule_slots
		WHERE concern_id = ?
	`
	args := []any{s.concernID}
	if projectID != "" {
		query += " AND project_id = ?"
		args = append(args, projectID)
	}
	query += " ORDER BY start_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}
	defer rows.Close()

	var slots []*schedule.ScheduleSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}

	return slots, nil
}

// Create persists a new slot, minting its ID and setting the audit
// metadata. Derived slots and invalid slots are rejected.
func (s *SQLite) Create(ctx context.Context, slot *schedule.ScheduleSlot) (string, error) {
	if slot.Derived {
		return "", schedule.ErrDerivedSlot
	}
	if err := slot.Validate(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	now := s.now()
	status := slot.Status
	if status == "" {
		status = schedule.StatusPlanned
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO schedule_slots (
			id, concern_id, project_id, assignee_ids, start_at, end_at,
			color, note, status, created_by, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		id,
		s.concernID,
		slot.ProjectID,
		joinAssignees(slot.AssigneeIDs),
		slot.Start.Format(time.RFC3339Nano),
		slot.End.Format(time.RFC3339Nano),
		slot.Color,
		slot.Note,
		status,
		s.actorUID,
		now.Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting slot: %w", err)
	}

	if err := s.audit(ctx, tx, auditCreate, id, now); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing slot: %w", err)
	}

	slot.ID = id
	slot.ConcernID = s.concernID
	slot.Status = status
	slot.CreatedBy = s.actorUID
	slot.CreatedAt = now
	slot.UpdatedAt = now

	return id, nil
}

// Update applies a partial update to the slot with the given ID.
func (s *SQLite) Update(ctx context.Context, id string, upd schedule.SlotUpdate) error {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if upd.ProjectID != nil {
		add("project_id", *upd.ProjectID)
	}
	if upd.AssigneeIDs != nil {
		if len(*upd.AssigneeIDs) == 0 {
			return schedule.ErrNoAssignees
		}
		add("assignee_ids", joinAssignees(*upd.AssigneeIDs))
	}
	if upd.Start != nil {
		add("start_at", upd.Start.Format(time.RFC3339Nano))
	}
	if upd.End != nil {
		add("end_at", upd.End.Format(time.RFC3339Nano))
	}
	if upd.Color != nil {
		add("color", *upd.Color)
	}
	if upd.Note != nil {
		add("note", *upd.Note)
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return fmt.Errorf("invalid status %q", *upd.Status)
		}
		add("status", string(*upd.Status))
	}

	now := s.now()
	add("updated_at", now.Format(time.RFC3339Nano))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := "UPDATE schedule_slots SET " + strings.Join(sets, ", ") + " WHERE id = ? AND concern_id = ?"
	args = append(args, id, s.concernID)

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating slot: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return schedule.ErrSlotNotFound
	}

	if err := s.audit(ctx, tx, auditUpdate, id, now); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}

	return nil
}

// Delete removes the slot with the given ID.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	now := s.now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		"DELETE FROM schedule_slots WHERE id = ? AND concern_id = ?", id, s.concernID)
	if err != nil {
		return fmt.Errorf("deleting slot: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return schedule.ErrSlotNotFound
	}

	if err := s.audit(ctx, tx, auditDelete, id, now); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) audit(ctx context.Context, tx *sql.Tx, action, slotID string, at time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO audit_logs (action, target_path, actor_uid, concern_id, at)
		VALUES (?, ?, ?, ?, ?)
	`, action, "schedule_slots/"+slotID, s.actorUID, s.concernID, at.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}
	return nil
}

func scanSlot(rows *sql.Rows) (*schedule.ScheduleSlot, error) {
	var (
		slot      schedule.ScheduleSlot
		assignees string
		startAt   string
		endAt     string
		createdAt string
		updatedAt string
	)

	err := rows.Scan(
		&slot.ID,
		&slot.ConcernID,
		&slot.ProjectID,
		&assignees,
		&startAt,
		&endAt,
		&slot.Color,
		&slot.Note,
		&slot.Status,
		&slot.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning slot: %w", err)
	}

	slot.AssigneeIDs = splitAssignees(assignees)

	if slot.Start, err = time.Parse(time.RFC3339Nano, startAt); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if slot.End, err = time.Parse(time.RFC3339Nano, endAt); err != nil {
		return nil, fmt.Errorf("parsing end: %w", err)
	}
	if slot.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if slot.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}

	return &slot, nil
}

func joinAssignees(ids []string) string {
	return strings.Join(ids, ",")
}

func splitAssignees(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
