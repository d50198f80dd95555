package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradetrackr/planboard/internal/board"
	"github.com/tradetrackr/planboard/internal/config"
	"github.com/tradetrackr/planboard/internal/schedule"
)

// memStore is a minimal in-memory Store for TUI tests.
type memStore struct {
	slots  map[string]*schedule.ScheduleSlot
	nextID int
}

func newMemStore() *memStore {
	return &memStore{slots: make(map[string]*schedule.ScheduleSlot)}
}

func (f *memStore) List(ctx context.Context, projectID string) ([]*schedule.ScheduleSlot, error) {
	var out []*schedule.ScheduleSlot
	for _, s := range f.slots {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (f *memStore) Create(ctx context.Context, s *schedule.ScheduleSlot) (string, error) {
	f.nextID++
	id := "m" + string(rune('0'+f.nextID))
	stored := s.Clone()
	stored.ID = id
	f.slots[id] = stored
	return id, nil
}

func (f *memStore) Update(ctx context.Context, id string, upd schedule.SlotUpdate) error {
	s, ok := f.slots[id]
	if !ok {
		return schedule.ErrSlotNotFound
	}
	if upd.Start != nil {
		s.Start = *upd.Start
	}
	if upd.End != nil {
		s.End = *upd.End
	}
	return nil
}

func (f *memStore) Delete(ctx context.Context, id string) error {
	delete(f.slots, id)
	return nil
}

func (f *memStore) Close() error { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()

	orig := timeNow
	timeNow = func() time.Time { return time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = orig })

	store := newMemStore()
	tl := board.NewTimeline(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 30, 100, 250)
	b := board.New(store, nil, "concern-1", tl)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err := b.Create(context.Background(), board.CreateInput{
		ProjectID:   "neubau",
		AssigneeIDs: []string{"hans"},
		Start:       time.Date(2024, time.June, 6, 8, 0, 0, 0, time.UTC),
		End:         time.Date(2024, time.June, 7, 17, 0, 0, 0, time.UTC),
		Color:       "#058bc0",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	m := New(b, config.Default())
	m.width = 120
	m.height = 30
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewRendersBoard(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	if !strings.Contains(out, "Planboard") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "neubau") {
		t.Error("missing project label")
	}
	if !strings.Contains(out, "hans") {
		t.Error("missing employee label")
	}
}

func TestScrollKeys(t *testing.T) {
	m := newTestModel(t)
	start := m.scroll

	updated, _ := m.Update(keyMsg("l"))
	m = updated.(Model)
	if m.scroll != start+1 {
		t.Errorf("scroll = %d, want %d", m.scroll, start+1)
	}

	updated, _ = m.Update(keyMsg("h"))
	m = updated.(Model)
	if m.scroll != start {
		t.Errorf("scroll = %d, want %d", m.scroll, start)
	}
}

func TestNudgeMovesSlot(t *testing.T) {
	m := newTestModel(t)
	s := m.selectedSlot()
	if s == nil {
		t.Fatal("no selected slot")
	}
	origStart := s.Start

	updated, _ := m.Update(keyMsg("L"))
	m = updated.(Model)

	moved := m.selectedSlot()
	if !moved.Start.Equal(origStart.AddDate(0, 0, 1)) {
		t.Errorf("start = %v, want %v", moved.Start, origStart.AddDate(0, 0, 1))
	}
}

func TestNudgeOntoSundaySnapsToMonday(t *testing.T) {
	m := newTestModel(t)
	// Move to Saturday June 8 first.
	updated, _ := m.Update(keyMsg("L")) // Fri 7
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("L")) // Sat 8
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("L")) // Sun 9 -> snaps to Mon 10
	m = updated.(Model)

	s := m.selectedSlot()
	want := time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	if !s.Start.Equal(want) {
		t.Errorf("start = %v, want %v", s.Start, want)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	if m.mode != ModeConfirmDelete {
		t.Fatalf("mode = %v, want ModeConfirmDelete", m.mode)
	}
	if !strings.Contains(m.View(), "Delete selected slot?") {
		t.Error("confirmation prompt not rendered")
	}

	// Decline.
	updated, _ = m.Update(keyMsg("n"))
	m = updated.(Model)
	if m.mode != ModeNormal {
		t.Errorf("mode = %v after decline, want ModeNormal", m.mode)
	}
	if len(m.visibleSlots()) != 1 {
		t.Error("slot deleted despite decline")
	}

	// Confirm.
	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("y"))
	m = updated.(Model)
	if len(m.visibleSlots()) != 0 {
		t.Error("slot not deleted after confirm")
	}
}

func TestUndoKeyRestoresSlot(t *testing.T) {
	m := newTestModel(t)
	s := m.selectedSlot()
	origStart := s.Start

	updated, _ := m.Update(keyMsg("L"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("u"))
	m = updated.(Model)

	if got := m.visibleSlots()[0].Start; !got.Equal(origStart) {
		t.Errorf("start after undo = %v, want %v", got, origStart)
	}
}
