package schedule

import (
	"testing"
	"time"
)

func slotWith(id string, assignees []string, start, end time.Time) *ScheduleSlot {
	return &ScheduleSlot{
		ID:          id,
		ConcernID:   "concern-1",
		ProjectID:   "proj-1",
		AssigneeIDs: assignees,
		Start:       start,
		End:         end,
		Status:      StatusPlanned,
	}
}

func TestFindConflicts_OverlappingSameAssignee(t *testing.T) {
	a := slotWith("a", []string{"e1"}, at(2024, time.June, 3, 9), at(2024, time.June, 3, 17))
	b := slotWith("b", []string{"e1"}, at(2024, time.June, 3, 12), at(2024, time.June, 3, 18))

	got := FindConflicts([]*ScheduleSlot{a, b})
	if len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(got))
	}
	if got[0].SlotA != "a" || got[0].SlotB != "b" || got[0].AssigneeID != "e1" {
		t.Errorf("unexpected conflict: %+v", got[0])
	}
}

func TestFindConflicts_OrderIndependent(t *testing.T) {
	a := slotWith("a", []string{"e1"}, at(2024, time.June, 3, 9), at(2024, time.June, 3, 17))
	b := slotWith("b", []string{"e1"}, at(2024, time.June, 3, 12), at(2024, time.June, 3, 18))

	forward := FindConflicts([]*ScheduleSlot{a, b})
	reversed := FindConflicts([]*ScheduleSlot{b, a})

	if len(forward) != 1 || len(reversed) != 1 {
		t.Fatalf("got %d/%d conflicts, want 1/1", len(forward), len(reversed))
	}
	if forward[0] != reversed[0] {
		t.Errorf("pair not normalized: %+v vs %+v", forward[0], reversed[0])
	}
}

func TestFindConflicts_TouchingIsNotConflict(t *testing.T) {
	// Slot A ends exactly when slot C starts; half-open ranges only touch.
	a := slotWith("a", []string{"e1"}, at(2024, time.June, 3, 9), at(2024, time.June, 3, 17))
	c := slotWith("c", []string{"e1"}, at(2024, time.June, 3, 17), at(2024, time.June, 3, 18))

	if got := FindConflicts([]*ScheduleSlot{a, c}); len(got) != 0 {
		t.Errorf("touching slots conflict: %+v", got)
	}
}

func TestFindConflicts_DifferentAssignees(t *testing.T) {
	a := slotWith("a", []string{"e1"}, at(2024, time.June, 3, 9), at(2024, time.June, 3, 17))
	b := slotWith("b", []string{"e2"}, at(2024, time.June, 3, 12), at(2024, time.June, 3, 18))

	if got := FindConflicts([]*ScheduleSlot{a, b}); len(got) != 0 {
		t.Errorf("disjoint assignees conflict: %+v", got)
	}
}

func TestFindConflicts_MultipleSharedAssignees(t *testing.T) {
	a := slotWith("a", []string{"e1", "e2"}, at(2024, time.June, 3, 9), at(2024, time.June, 3, 17))
	b := slotWith("b", []string{"e2", "e1"}, at(2024, time.June, 3, 12), at(2024, time.June, 3, 18))

	got := FindConflicts([]*ScheduleSlot{a, b})
	if len(got) != 2 {
		t.Fatalf("got %d conflicts, want one per shared assignee (2)", len(got))
	}
	for _, c := range got {
		if c.SlotA != "a" || c.SlotB != "b" {
			t.Errorf("pair not normalized: %+v", c)
		}
	}
}

func TestFindConflicts_Empty(t *testing.T) {
	if got := FindConflicts(nil); len(got) != 0 {
		t.Errorf("got %d conflicts for empty input", len(got))
	}
	solo := slotWith("a", []string{"e1"}, at(2024, time.June, 3, 9), at(2024, time.June, 3, 17))
	if got := FindConflicts([]*ScheduleSlot{solo}); len(got) != 0 {
		t.Errorf("single slot conflicts with itself: %+v", got)
	}
}

func TestConflictsWith(t *testing.T) {
	conflicts := []Conflict{{SlotA: "a", SlotB: "b", AssigneeID: "e1"}}

	if !ConflictsWith("a", conflicts) || !ConflictsWith("b", conflicts) {
		t.Error("both slots of a conflict should be flagged")
	}
	if ConflictsWith("c", conflicts) {
		t.Error("uninvolved slot flagged")
	}
}
