package ics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tradetrackr/planboard/internal/schedule"
)

func testSlot(id, note string, start time.Time) *schedule.ScheduleSlot {
	return &schedule.ScheduleSlot{
		ID:          id,
		ConcernID:   "concern-1",
		ProjectID:   "proj-1",
		AssigneeIDs: []string{"emp-1"},
		Start:       start,
		End:         start.Add(8 * time.Hour),
		Note:        note,
		Status:      schedule.StatusPlanned,
		UpdatedAt:   start,
	}
}

func TestExportEmpty(t *testing.T) {
	out, err := Export(nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Errorf("missing calendar envelope:\n%s", out)
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Errorf("empty export contains events:\n%s", out)
	}
}

func TestExportEvents(t *testing.T) {
	base := time.Date(2024, time.June, 6, 8, 0, 0, 0, time.UTC)
	slots := []*schedule.ScheduleSlot{
		testSlot("b", "Dachstuhl richten", base.AddDate(0, 0, 1)),
		testSlot("a", "", base),
	}

	out, err := Export(slots)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("got %d events, want 2", got)
	}
	if !strings.Contains(out, "UID:a@planboard") || !strings.Contains(out, "UID:b@planboard") {
		t.Errorf("missing expected UIDs:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:"+DefaultSummary) {
		t.Errorf("slot without note did not fall back to default summary:\n%s", out)
	}
	if !strings.Contains(out, "SUMMARY:Dachstuhl richten") {
		t.Errorf("note not used as summary:\n%s", out)
	}
	if !strings.Contains(out, "DESCRIPTION:Dachstuhl richten") {
		t.Errorf("note not emitted as description:\n%s", out)
	}

	// Events come out in start order regardless of input order.
	if strings.Index(out, "UID:a@planboard") > strings.Index(out, "UID:b@planboard") {
		t.Errorf("events not sorted by start:\n%s", out)
	}
}

func TestExportInvalidSlot(t *testing.T) {
	s := testSlot("bad", "", time.Date(2024, time.June, 6, 8, 0, 0, 0, time.UTC))
	s.End = s.Start // zero length

	if _, err := Export([]*schedule.ScheduleSlot{s}); err == nil {
		t.Fatal("Export accepted invalid slot")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.ics")
	s := testSlot("a", "", time.Date(2024, time.June, 6, 8, 0, 0, 0, time.UTC))

	if err := WriteFile(path, []*schedule.ScheduleSlot{s}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "UID:a@planboard") {
		t.Errorf("file missing event:\n%s", data)
	}
}
