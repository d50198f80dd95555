// Package workcal implements the trades work calendar: which days count as
// working days for bar rendering and duration math. Sunday is non-working,
// Saturday is a regular working day, and the German federal holidays
// (fixed plus Easter-derived) are non-working.
package workcal

import (
	"sync"
	"time"
)

// Calendar answers working-day questions. The zero value is not usable;
// use New. Holiday sets are computed lazily per year and cached, so a
// Calendar is cheap to query repeatedly during rendering.
type Calendar struct {
	mu       sync.Mutex
	holidays map[int]map[monthDay]bool
}

type monthDay struct {
	month time.Month
	day   int
}

// New creates a Calendar.
func New() *Calendar {
	return &Calendar{holidays: make(map[int]map[monthDay]bool)}
}

// IsNonWorkingDay reports whether the given date is a Sunday or a holiday.
// The holiday set is computed for the year of the date being tested.
func (c *Calendar) IsNonWorkingDay(t time.Time) bool {
	if t.Weekday() == time.Sunday {
		return true
	}
	set := c.holidaySet(t.Year())
	return set[monthDay{t.Month(), t.Day()}]
}

// IsWorkingDay is the complement of IsNonWorkingDay.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	return !c.IsNonWorkingDay(t)
}

// Holidays returns all holidays of the given year in chronological order.
func (c *Calendar) Holidays(year int) []time.Time {
	return holidaysForYear(year)
}

// NextWorkingDay returns the first working day strictly after t.
func (c *Calendar) NextWorkingDay(t time.Time) time.Time {
	next := TruncateToDay(t).AddDate(0, 0, 1)
	for c.IsNonWorkingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// SnapToWorkingDay returns t's day if it is a working day, otherwise the
// next working day after it. The scan only moves forward, never backward.
func (c *Calendar) SnapToWorkingDay(t time.Time) time.Time {
	day := TruncateToDay(t)
	for c.IsNonWorkingDay(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// WorkingDaysBetween counts the working days between start and end,
// both truncated to days, inclusive on both sides.
func (c *Calendar) WorkingDaysBetween(start, end time.Time) int {
	count := 0
	current := TruncateToDay(start)
	last := TruncateToDay(end)
	for !current.After(last) {
		if !c.IsNonWorkingDay(current) {
			count++
		}
		current = current.AddDate(0, 0, 1)
	}
	return count
}

func (c *Calendar) holidaySet(year int) map[monthDay]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok := c.holidays[year]; ok {
		return set
	}
	set := make(map[monthDay]bool)
	for _, h := range holidaysForYear(year) {
		set[monthDay{h.Month(), h.Day()}] = true
	}
	c.holidays[year] = set
	return set
}

// holidaysForYear returns the fixed German federal holidays plus the
// Easter-derived ones for a single year.
func holidaysForYear(year int) []time.Time {
	date := func(m time.Month, d int) time.Time {
		return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
	}
	easter := EasterSunday(year)

	return []time.Time{
		date(time.January, 1),    // Neujahr
		easter.AddDate(0, 0, -2), // Karfreitag
		easter,                   // Ostersonntag
		easter.AddDate(0, 0, 1),  // Ostermontag
		date(time.May, 1),        // Tag der Arbeit
		easter.AddDate(0, 0, 39), // Christi Himmelfahrt
		easter.AddDate(0, 0, 49), // Pfingstsonntag
		easter.AddDate(0, 0, 50), // Pfingstmontag
		date(time.October, 3),    // Tag der Deutschen Einheit
		date(time.December, 25),  // 1. Weihnachtstag
		date(time.December, 26),  // 2. Weihnachtstag
	}
}

// EasterSunday computes the Gregorian Easter Sunday for a year using
// Gauss's algorithm, integer arithmetic only.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDay returns t with the time of day set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
