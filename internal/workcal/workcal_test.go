package workcal

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 5)},
		{2030, date(2030, time.April, 21)},
	}

	for _, tt := range tests {
		got := EasterSunday(tt.year)
		if !got.Equal(tt.want) {
			t.Errorf("EasterSunday(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestIsNonWorkingDay(t *testing.T) {
	cal := New()

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"sunday", date(2024, time.June, 9), true},
		{"saturday is a working day", date(2024, time.June, 8), false},
		{"regular monday", date(2024, time.June, 10), false},
		{"new year", date(2024, time.January, 1), true},
		{"labour day", date(2024, time.May, 1), true},
		{"german unity day", date(2024, time.October, 3), true},
		{"first christmas day", date(2024, time.December, 25), true},
		{"second christmas day", date(2024, time.December, 26), true},
		{"good friday 2024", date(2024, time.March, 29), true},
		{"easter sunday 2024", date(2024, time.March, 31), true},
		{"easter monday 2024", date(2024, time.April, 1), true},
		{"ascension day 2024", date(2024, time.May, 9), true},
		{"whit sunday 2024", date(2024, time.May, 19), true},
		{"whit monday 2024", date(2024, time.May, 20), true},
		{"day after whit monday", date(2024, time.May, 21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsNonWorkingDay(tt.day); got != tt.want {
				t.Errorf("IsNonWorkingDay(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestIsNonWorkingDay_NoCrossYearLeakage(t *testing.T) {
	cal := New()

	// Easter Monday 2024 is April 1; in 2025 Easter Monday falls on April 21,
	// so April 1, 2025 must be a working day even after 2024 was cached.
	if !cal.IsNonWorkingDay(date(2024, time.April, 1)) {
		t.Error("April 1, 2024 should be non-working (Easter Monday)")
	}
	if cal.IsNonWorkingDay(date(2025, time.April, 1)) {
		t.Error("April 1, 2025 should be a working day")
	}
	if !cal.IsNonWorkingDay(date(2025, time.April, 21)) {
		t.Error("April 21, 2025 should be non-working (Easter Monday)")
	}
}

func TestNextWorkingDay(t *testing.T) {
	cal := New()

	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"friday to saturday", date(2024, time.June, 7), date(2024, time.June, 8)},
		{"saturday skips sunday", date(2024, time.June, 8), date(2024, time.June, 10)},
		{"over easter weekend", date(2024, time.March, 28), date(2024, time.March, 30)},
		{"saturday before easter", date(2024, time.March, 30), date(2024, time.April, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.NextWorkingDay(tt.from); !got.Equal(tt.want) {
				t.Errorf("NextWorkingDay(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestSnapToWorkingDay(t *testing.T) {
	cal := New()

	// A working day snaps to itself.
	monday := date(2024, time.June, 10)
	if got := cal.SnapToWorkingDay(monday); !got.Equal(monday) {
		t.Errorf("SnapToWorkingDay(%v) = %v, want same day", monday, got)
	}

	// Sunday snaps forward to Monday, never backward to Saturday.
	sunday := date(2024, time.June, 9)
	if got := cal.SnapToWorkingDay(sunday); !got.Equal(monday) {
		t.Errorf("SnapToWorkingDay(%v) = %v, want %v", sunday, got, monday)
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	cal := New()

	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single working day", date(2024, time.June, 10), date(2024, time.June, 10), 1},
		{"full week with one sunday", date(2024, time.June, 3), date(2024, time.June, 9), 6},
		{"easter stretch", date(2024, time.March, 28), date(2024, time.April, 2), 3},
		{"only sunday", date(2024, time.June, 9), date(2024, time.June, 9), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.WorkingDaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("WorkingDaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
