// Package ics exports schedule slots as an iCalendar feed so crews can
// subscribe to their assignments from a phone calendar.
package ics

import (
	"fmt"
	"os"
	"sort"
	"strings"

	ical "github.com/arran4/golang-ical"

	"github.com/tradetrackr/planboard/internal/schedule"
)

// DefaultSummary is used for events whose slot carries no note.
const DefaultSummary = "Arbeitseinsatz"

// uidDomain suffixes every event UID so feeds from different tools never
// collide in a subscriber's calendar.
const uidDomain = "planboard"

// Export renders the slots as a VCALENDAR with one VEVENT per slot.
// Events are emitted in start order regardless of input order so repeated
// exports of the same board diff cleanly.
func Export(slots []*schedule.ScheduleSlot) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//tradetrackr//planboard//DE")

	sorted := append([]*schedule.ScheduleSlot(nil), slots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for _, s := range sorted {
		if err := s.Validate(); err != nil {
			return "", fmt.Errorf("slot %s: %w", s.ID, err)
		}

		event := cal.AddEvent(fmt.Sprintf("%s@%s", s.ID, uidDomain))
		stamp := s.UpdatedAt
		if stamp.IsZero() {
			stamp = s.Start
		}
		event.SetDtStampTime(stamp)
		event.SetStartAt(s.Start)
		event.SetEndAt(s.End)
		event.SetSummary(summaryFor(s))
		if s.Note != "" {
			event.SetDescription(s.Note)
		}
		if s.ProjectID != "" {
			event.SetProperty(ical.ComponentPropertyCategories, s.ProjectID)
		}
	}

	return cal.Serialize(), nil
}

// WriteFile exports the slots to path, creating or truncating it.
func WriteFile(path string, slots []*schedule.ScheduleSlot) error {
	payload, err := Export(slots)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func summaryFor(s *schedule.ScheduleSlot) string {
	note := strings.TrimSpace(s.Note)
	if note == "" {
		return DefaultSummary
	}
	// Notes can be multi-line; the summary takes the first line only.
	if idx := strings.IndexByte(note, '\n'); idx >= 0 {
		note = strings.TrimSpace(note[:idx])
	}
	return note
}
