package schedule

import (
	"time"

	"github.com/tradetrackr/planboard/internal/workcal"
)

// WorkSegment is a maximal sub-range of a slot composed only of working
// days. Segments are a presentation and duration derivation; they are never
// written back to the slot.
type WorkSegment struct {
	Start time.Time
	End   time.Time
}

// Segments splits [start, end) into maximal contiguous sub-ranges containing
// only working days. It walks each calendar day from floor(start) to
// floor(end) inclusive, opening a segment on a working day and closing it at
// the previous day's end when a non-working day is hit. A still-open segment
// is closed at end. Segments come out in chronological order; a range lying
// entirely on non-working days yields none, and a range without non-working
// days yields exactly one segment equal to the whole range.
func Segments(cal *workcal.Calendar, start, end time.Time) []WorkSegment {
	var segments []WorkSegment

	current := workcal.TruncateToDay(start)
	last := workcal.TruncateToDay(end)

	var open *time.Time
	for !current.After(last) {
		if cal.IsNonWorkingDay(current) {
			if open != nil {
				segments = append(segments, WorkSegment{Start: *open, End: endOfPreviousDay(current)})
				open = nil
			}
		} else if open == nil {
			day := current
			open = &day
		}
		current = current.AddDate(0, 0, 1)
	}
	if open != nil {
		segments = append(segments, WorkSegment{Start: *open, End: end})
	}

	return segments
}

func endOfPreviousDay(t time.Time) time.Time {
	prev := t.AddDate(0, 0, -1)
	return time.Date(prev.Year(), prev.Month(), prev.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), prev.Location())
}
