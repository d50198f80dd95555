package schedule

import (
	"errors"
	"testing"
	"time"
)

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	start := at(2024, time.June, 3, 9)
	end := at(2024, time.June, 3, 17)

	s, err := New("concern-1", "proj-1", []string{"emp-1"}, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != StatusPlanned {
		t.Errorf("got status %q, want %q", s.Status, StatusPlanned)
	}
	if s.Duration() != 8*time.Hour {
		t.Errorf("got duration %v, want 8h", s.Duration())
	}
}

func TestNew_Errors(t *testing.T) {
	start := at(2024, time.June, 3, 9)

	tests := []struct {
		name      string
		projectID string
		assignees []string
		start     time.Time
		end       time.Time
		wantErr   error
	}{
		{
			name:      "zero-length slot",
			projectID: "proj-1",
			assignees: []string{"emp-1"},
			start:     start,
			end:       start,
			wantErr:   ErrEndNotAfterStart,
		},
		{
			name:      "end before start",
			projectID: "proj-1",
			assignees: []string{"emp-1"},
			start:     start,
			end:       start.Add(-time.Hour),
			wantErr:   ErrEndNotAfterStart,
		},
		{
			name:      "no assignees",
			projectID: "proj-1",
			assignees: nil,
			start:     start,
			end:       start.Add(time.Hour),
			wantErr:   ErrNoAssignees,
		},
		{
			name:      "no project",
			projectID: "",
			assignees: []string{"emp-1"},
			start:     start,
			end:       start.Add(time.Hour),
			wantErr:   ErrEmptyProject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("concern-1", tt.projectID, tt.assignees, tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := &ScheduleSlot{Start: at(2024, time.June, 3, 9), End: at(2024, time.June, 3, 17)}

	tests := []struct {
		name  string
		other *ScheduleSlot
		want  bool
	}{
		{"contained", &ScheduleSlot{Start: at(2024, time.June, 3, 12), End: at(2024, time.June, 3, 14)}, true},
		{"partial", &ScheduleSlot{Start: at(2024, time.June, 3, 12), End: at(2024, time.June, 3, 18)}, true},
		{"touching at end", &ScheduleSlot{Start: at(2024, time.June, 3, 17), End: at(2024, time.June, 3, 18)}, false},
		{"touching at start", &ScheduleSlot{Start: at(2024, time.June, 3, 7), End: at(2024, time.June, 3, 9)}, false},
		{"disjoint", &ScheduleSlot{Start: at(2024, time.June, 4, 9), End: at(2024, time.June, 4, 17)}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if tt.other != nil {
				if got := tt.other.Overlaps(base); got != tt.want {
					t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestClone(t *testing.T) {
	s := &ScheduleSlot{
		ID:          "s1",
		AssigneeIDs: []string{"emp-1", "emp-2"},
		Start:       at(2024, time.June, 3, 9),
		End:         at(2024, time.June, 3, 17),
	}

	c := s.Clone()
	c.AssigneeIDs[0] = "changed"
	if s.AssigneeIDs[0] != "emp-1" {
		t.Error("Clone shares the assignee slice with the original")
	}
}

func TestFilter(t *testing.T) {
	slots := []*ScheduleSlot{
		{ID: "a", ProjectID: "p1", AssigneeIDs: []string{"e1"}, Status: StatusPlanned},
		{ID: "b", ProjectID: "p2", AssigneeIDs: []string{"e1", "e2"}, Status: StatusConfirmed},
		{ID: "c", ProjectID: "p1", AssigneeIDs: []string{"e2"}, Status: StatusCompleted},
	}

	got := Filter(slots, FilterOpts{ProjectID: "p1"})
	if len(got) != 2 {
		t.Fatalf("project filter: got %d slots, want 2", len(got))
	}

	got = Filter(slots, FilterOpts{AssigneeID: "e2"})
	if len(got) != 2 {
		t.Fatalf("assignee filter: got %d slots, want 2", len(got))
	}

	got = Filter(slots, FilterOpts{ProjectID: "p1", Status: StatusCompleted})
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("combined filter: got %v", got)
	}

	got = Filter(slots, FilterOpts{})
	if len(got) != 3 {
		t.Fatalf("empty filter: got %d slots, want 3", len(got))
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPlanned, StatusConfirmed, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Status("cancelled").Valid() {
		t.Error("unknown status should be invalid")
	}
}
