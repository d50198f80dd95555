package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS schedule_slots (
			id           TEXT PRIMARY KEY,
			concern_id   TEXT NOT NULL,
			project_id   TEXT NOT NULL,
			assignee_ids TEXT NOT NULL,
			start_at     DATETIME NOT NULL,
			end_at       DATETIME NOT NULL,
			color        TEXT DEFAULT '',
			note         TEXT DEFAULT '',
			status       TEXT DEFAULT 'planned' CHECK(status IN ('planned', 'confirmed', 'completed')),
			created_by   TEXT NOT NULL,
			created_at   DATETIME NOT NULL,
			updated_at   DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_slots_concern ON schedule_slots(concern_id);
		CREATE INDEX IF NOT EXISTS idx_slots_project ON schedule_slots(concern_id, project_id);

		CREATE TABLE IF NOT EXISTS project_tasks (
			id           TEXT PRIMARY KEY,
			concern_id   TEXT NOT NULL,
			project_id   TEXT NOT NULL,
			assignee_ids TEXT DEFAULT '',
			title        TEXT DEFAULT '',
			due_at       DATETIME,
			created_at   DATETIME,
			priority     TEXT DEFAULT '',
			status       TEXT DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_concern ON project_tasks(concern_id);

		CREATE TABLE IF NOT EXISTS audit_logs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			action      TEXT NOT NULL,
			target_path TEXT NOT NULL,
			actor_uid   TEXT NOT NULL,
			concern_id  TEXT NOT NULL,
			at          DATETIME NOT NULL
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schedule tables: %w", err)
	}

	return nil
}
