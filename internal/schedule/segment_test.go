package schedule

import (
	"testing"
	"time"

	"github.com/tradetrackr/planboard/internal/workcal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSegments_EasterStretch(t *testing.T) {
	cal := workcal.New()

	// Thu Mar 28 to Tue Apr 2, 2024. Good Friday (29th), Sunday (31st) and
	// Easter Monday (Apr 1) split the range into three one-day segments.
	start := day(2024, time.March, 28)
	end := time.Date(2024, time.April, 2, 16, 0, 0, 0, time.UTC)

	segs := Segments(cal, start, end)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3: %+v", len(segs), segs)
	}

	wantStarts := []time.Time{
		day(2024, time.March, 28),
		day(2024, time.March, 30),
		day(2024, time.April, 2),
	}
	for i, seg := range segs {
		if !seg.Start.Equal(wantStarts[i]) {
			t.Errorf("segment %d starts %v, want %v", i, seg.Start, wantStarts[i])
		}
	}

	// The final segment closes at the slot's actual end instant.
	if !segs[2].End.Equal(end) {
		t.Errorf("last segment ends %v, want %v", segs[2].End, end)
	}
}

func TestSegments_AllNonWorking(t *testing.T) {
	cal := workcal.New()

	// Easter Sunday and Easter Monday 2024 only.
	segs := Segments(cal, day(2024, time.March, 31), day(2024, time.April, 1))
	if len(segs) != 0 {
		t.Errorf("got %d segments for all-non-working range, want 0", len(segs))
	}
}

func TestSegments_NoNonWorkingDays(t *testing.T) {
	cal := workcal.New()

	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 7, 17, 0, 0, 0, time.UTC)

	segs := Segments(cal, start, end)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if !segs[0].Start.Equal(day(2024, time.June, 3)) {
		t.Errorf("segment starts %v, want day start", segs[0].Start)
	}
	if !segs[0].End.Equal(end) {
		t.Errorf("segment ends %v, want slot end %v", segs[0].End, end)
	}
}

func TestSegments_CoverExactlyWorkingDays(t *testing.T) {
	cal := workcal.New()

	// Two full weeks. The union of segment days must equal the working days
	// of the range, with maximal, non-overlapping segments.
	start := day(2024, time.June, 3)
	end := day(2024, time.June, 16)

	segs := Segments(cal, start, end)

	covered := make(map[string]bool)
	for i, seg := range segs {
		if i > 0 && !segs[i-1].End.Before(seg.Start) {
			t.Errorf("segments %d and %d overlap or touch out of order", i-1, i)
		}
		for d := workcal.TruncateToDay(seg.Start); !d.After(workcal.TruncateToDay(seg.End)); d = d.AddDate(0, 0, 1) {
			covered[d.Format("2006-01-02")] = true
		}
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if cal.IsNonWorkingDay(d) && covered[key] {
			t.Errorf("non-working day %s covered by a segment", key)
		}
		if !cal.IsNonWorkingDay(d) && !covered[key] {
			t.Errorf("working day %s not covered by any segment", key)
		}
	}
}
