package board

import (
	"time"

	"github.com/tradetrackr/planboard/internal/schedule"
)

// EmployeeRow is one sub-row of a project: all slots of one assignee.
type EmployeeRow struct {
	EmployeeID string
	Slots      []*schedule.ScheduleSlot
}

// ProjectRow groups a project's slots with one sub-row per assignee. The
// project's own bar spans from the earliest slot start to the latest slot
// end across all assignees.
type ProjectRow struct {
	ProjectID string
	SpanStart time.Time
	SpanEnd   time.Time
	Employees []EmployeeRow
	Slots     []*schedule.ScheduleSlot
}

// Rows groups the current collection into project rows. Projects appear in
// the order their first slot appears, employees in the order they first
// appear within the project; the grouping is stable across recomputes as
// long as the collection order is.
func (b *Board) Rows() []ProjectRow {
	return BuildRows(b.slots)
}

// BuildRows groups slots into project rows with per-employee sub-rows.
// Slots without a project ID are grouped under the empty ID.
func BuildRows(slots []*schedule.ScheduleSlot) []ProjectRow {
	var order []string
	byProject := make(map[string]*ProjectRow)

	for _, s := range slots {
		row, ok := byProject[s.ProjectID]
		if !ok {
			row = &ProjectRow{ProjectID: s.ProjectID, SpanStart: s.Start, SpanEnd: s.End}
			byProject[s.ProjectID] = row
			order = append(order, s.ProjectID)
		}

		if s.Start.Before(row.SpanStart) {
			row.SpanStart = s.Start
		}
		if s.End.After(row.SpanEnd) {
			row.SpanEnd = s.End
		}
		row.Slots = append(row.Slots, s)

		assignees := s.AssigneeIDs
		if len(assignees) == 0 {
			assignees = []string{""}
		}
		for _, emp := range assignees {
			idx := -1
			for i := range row.Employees {
				if row.Employees[i].EmployeeID == emp {
					idx = i
					break
				}
			}
			if idx < 0 {
				row.Employees = append(row.Employees, EmployeeRow{EmployeeID: emp})
				idx = len(row.Employees) - 1
			}
			row.Employees[idx].Slots = append(row.Employees[idx].Slots, s)
		}
	}

	rows := make([]ProjectRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byProject[id])
	}
	return rows
}
