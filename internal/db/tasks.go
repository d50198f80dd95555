package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tradetrackr/planboard/internal/schedule"
)

// ListTasks returns the concern's task records. The board turns these into
// read-only shadow slots; tasks are written by the task module, never here.
func (s *SQLite) ListTasks(ctx context.Context) ([]schedule.ProjectTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, concern_id, project_id, assignee_ids, title, due_at, created_at, priority, status
		FROM project_tasks
		WHERE concern_id = ?
		ORDER BY due_at, id
	`, s.concernID)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []schedule.ProjectTask
	for rows.Next() {
		var (
			t         schedule.ProjectTask
			assignees string
			dueAt     sql.NullString
			createdAt sql.NullString
		)
		err := rows.Scan(&t.ID, &t.ConcernID, &t.ProjectID, &assignees,
			&t.Title, &dueAt, &createdAt, &t.Priority, &t.Status)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.AssigneeIDs = splitAssignees(assignees)
		if t.DueAt, err = parseNullTime(dueAt); err != nil {
			return nil, fmt.Errorf("parsing due at: %w", err)
		}
		if t.CreatedAt, err = parseNullTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

func parseNullTime(v sql.NullString) (time.Time, error) {
	if !v.Valid || v.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, v.String)
}
