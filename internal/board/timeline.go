package board

import (
	"time"

	"github.com/tradetrackr/planboard/internal/workcal"
)

// Timeline defaults: 30 days of history plus today plus 180 days ahead.
const (
	DefaultDaysPast   = 30
	DefaultDaysFuture = 180
	DefaultDayWidth   = 100
	DefaultLabelWidth = 250
)

// Timeline maps between calendar days and horizontal board coordinates.
// Day index 0 is the first day of the visible range.
type Timeline struct {
	Start      time.Time // first day of the range, midnight
	NumDays    int
	DayWidth   int // pixels (or cells) per day column
	LabelWidth int // width of the leading label column
}

// NewTimeline creates a timeline starting at start (truncated to its day).
func NewTimeline(start time.Time, numDays, dayWidth, labelWidth int) Timeline {
	return Timeline{
		Start:      workcal.TruncateToDay(start),
		NumDays:    numDays,
		DayWidth:   dayWidth,
		LabelWidth: labelWidth,
	}
}

// DefaultTimeline returns the standard board range around today.
func DefaultTimeline(today time.Time) Timeline {
	start := workcal.TruncateToDay(today).AddDate(0, 0, -DefaultDaysPast)
	return NewTimeline(start, DefaultDaysPast+DefaultDaysFuture+1, DefaultDayWidth, DefaultLabelWidth)
}

// DateOf returns the date of the given day index.
func (t Timeline) DateOf(idx int) time.Time {
	return t.Start.AddDate(0, 0, idx)
}

// IndexOf returns the day index of the given date, or -1 when the date is
// outside the visible range.
func (t Timeline) IndexOf(date time.Time) int {
	d := workcal.TruncateToDay(date)
	days := daysBetween(t.Start, d)
	if days < 0 || days >= t.NumDays {
		return -1
	}
	return days
}

// DayAt converts a horizontal pixel position (relative to the board origin,
// label column included) to a day index, clamped to the visible range.
// Returns -1 for positions inside the label column.
func (t Timeline) DayAt(xPx int) int {
	x := xPx - t.LabelWidth
	if x < 0 {
		return -1
	}
	idx := x / t.DayWidth
	if idx >= t.NumDays {
		return t.NumDays - 1
	}
	return idx
}

// DayToX returns the left pixel edge of the given day column, relative to
// the board origin.
func (t Timeline) DayToX(idx int) int {
	return t.LabelWidth + idx*t.DayWidth
}

// Clamp bounds a day index to the visible range.
func (t Timeline) Clamp(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= t.NumDays {
		return t.NumDays - 1
	}
	return idx
}

// daysBetween counts whole days from a to b, both at midnight. AddDate is
// used instead of Sub so DST transitions do not skew the count.
func daysBetween(a, b time.Time) int {
	if b.Before(a) {
		return -daysBetween(b, a)
	}
	days := 0
	for cur := a; cur.Before(b); cur = cur.AddDate(0, 0, 1) {
		days++
	}
	return days
}
