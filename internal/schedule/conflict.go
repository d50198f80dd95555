package schedule

// Conflict is a derived, ephemeral record of two slots double-booking the
// same assignee. It is never persisted; it is recomputed from the current
// slot collection on every evaluation. SlotA and SlotB are normalized so
// that SlotA < SlotB, which makes the unordered pair unique.
type Conflict struct {
	SlotA      string
	SlotB      string
	AssigneeID string
}

// FindConflicts reports every pair of distinct slots that share an assignee
// and overlap in time. One Conflict is emitted per shared assignee per slot
// pair. Touching ranges are not conflicts, a slot never conflicts with
// itself, and each unordered pair appears at most once regardless of input
// order. The result is advisory: overlaps are surfaced, never prevented.
func FindConflicts(slots []*ScheduleSlot) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			a, b := slots[i], slots[j]
			if !a.Overlaps(b) {
				continue
			}
			for _, assignee := range sharedAssignees(a, b) {
				idA, idB := a.ID, b.ID
				if idB < idA {
					idA, idB = idB, idA
				}
				conflicts = append(conflicts, Conflict{SlotA: idA, SlotB: idB, AssigneeID: assignee})
			}
		}
	}
	return conflicts
}

// ConflictsWith reports whether the slot with the given ID participates in
// any of the conflicts. Used for per-slot highlighting.
func ConflictsWith(id string, conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.SlotA == id || c.SlotB == id {
			return true
		}
	}
	return false
}

func sharedAssignees(a, b *ScheduleSlot) []string {
	var shared []string
	seen := make(map[string]bool)
	for _, x := range a.AssigneeIDs {
		if seen[x] {
			continue
		}
		seen[x] = true
		for _, y := range b.AssigneeIDs {
			if x == y {
				shared = append(shared, x)
				break
			}
		}
	}
	return shared
}
