package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tradetrackr/planboard/internal/schedule"
)

// View renders the board.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderDayRow())
	b.WriteString("\n")

	conflicts := m.board.Conflicts()
	conflictSlots := conflictSlotSet(conflicts)
	selected := m.selectedSlot()

	for _, line := range m.rowLines() {
		if line.isProject {
			b.WriteString(m.renderProjectLine(line))
		} else {
			b.WriteString(m.renderEmployeeLine(line, selected, conflictSlots))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(len(conflicts)))
	return b.String()
}

// renderHeader shows the visible month range and the conflict count.
func (m Model) renderHeader() string {
	tl := m.board.Timeline()
	first := tl.DateOf(m.scroll)
	last := tl.DateOf(m.clampScroll(m.scroll) + m.visibleDays() - 1)

	title := first.Format("Jan 2006")
	if first.Month() != last.Month() || first.Year() != last.Year() {
		title = fmt.Sprintf("%s – %s", first.Format("Jan 2006"), last.Format("Jan 2006"))
	}
	return m.styles.Header.Render("Planboard  " + title)
}

// renderDayRow shows the day-of-month numbers, with today and non-working
// days highlighted.
func (m Model) renderDayRow() string {
	tl := m.board.Timeline()
	today := tl.IndexOf(timeNow())

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelCells))
	for i := 0; i < m.visibleDays(); i++ {
		day := m.scroll + i
		if day >= tl.NumDays {
			break
		}
		date := tl.DateOf(day)
		cell := fmt.Sprintf("%-*d", dayCells, date.Day())
		switch {
		case day == today:
			b.WriteString(m.styles.TodayHeader.Render(cell))
		case m.board.Calendar().IsNonWorkingDay(date):
			b.WriteString(m.styles.NonWorkingDay.Render(cell))
		default:
			b.WriteString(m.styles.DayHeader.Render(cell))
		}
	}
	return b.String()
}

// renderProjectLine shows the project name and a thin bar spanning the
// project's full extent.
func (m Model) renderProjectLine(line rowLine) string {
	label := truncate(projectLabel(line.projectID), labelCells-1)
	var b strings.Builder
	b.WriteString(m.styles.ProjectLabel.Render(fmt.Sprintf("%-*s", labelCells, label)))

	spanStart, spanEnd := projectSpan(line.slots)
	tl := m.board.Timeline()
	startIdx := tl.IndexOf(spanStart)
	endIdx := tl.IndexOf(spanEnd)
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx < 0 {
		endIdx = tl.NumDays - 1
	}

	for i := 0; i < m.visibleDays(); i++ {
		day := m.scroll + i
		if day >= tl.NumDays {
			break
		}
		if day >= startIdx && day <= endIdx {
			b.WriteString(m.styles.DayHeader.Render(strings.Repeat("─", dayCells)))
		} else {
			b.WriteString(strings.Repeat(" ", dayCells))
		}
	}
	return b.String()
}

// renderEmployeeLine shows one assignee's slot bars. Bars are drawn per
// working-day segment so non-working days show as gaps; the selected slot
// renders reversed, conflicted slots carry a badge in the label column.
func (m Model) renderEmployeeLine(line rowLine, selected *schedule.ScheduleSlot, conflicted map[string]bool) string {
	label := "  " + truncate(employeeLabel(line.employeeID), labelCells-4)
	badge := " "
	for _, s := range line.slots {
		if conflicted[s.ID] {
			badge = m.styles.ConflictBadge.Render("!")
			break
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.EmployeeLabel.Render(fmt.Sprintf("%-*s", labelCells-1, label)))
	b.WriteString(badge)

	tl := m.board.Timeline()
	cells := make([]string, m.visibleDays())
	for i := range cells {
		cells[i] = strings.Repeat(" ", dayCells)
	}

	for _, s := range line.slots {
		style := m.styles.BarStyle(s.Color)
		if s.Derived {
			style = m.styles.DerivedBar
		}
		if selected != nil && s.ID == selected.ID {
			style = style.Reverse(true)
		}
		bar := "█"
		if s.Derived {
			bar = "░"
		}

		for _, seg := range m.board.SegmentsFor(s) {
			from := tl.IndexOf(seg.Start)
			to := tl.IndexOf(seg.End)
			if from < 0 {
				from = 0
			}
			if to < 0 {
				to = tl.NumDays - 1
			}
			for day := from; day <= to; day++ {
				i := day - m.scroll
				if i < 0 || i >= len(cells) {
					continue
				}
				cells[i] = style.Render(strings.Repeat(bar, dayCells))
			}
		}
	}

	b.WriteString(strings.Join(cells, ""))
	return b.String()
}

// renderFooter shows the keybinds, conflict count, and transient status.
func (m Model) renderFooter(conflicts int) string {
	if m.mode == ModeConfirmDelete {
		return m.styles.StatusError.Render("Delete selected slot? (y/n)")
	}

	var help strings.Builder
	for i, b := range m.keys.helpEntries() {
		if i > 0 {
			help.WriteString("  ")
		}
		help.WriteString(b.Help().Key + " " + b.Help().Desc)
	}
	parts := []string{m.styles.Footer.Render(help.String())}
	if conflicts > 0 {
		parts = append(parts, m.styles.ConflictBadge.Render(fmt.Sprintf("%d conflicts", conflicts)))
	}
	if m.statusMsg != "" {
		style := m.styles.StatusInfo
		if m.statusIsErr {
			style = m.styles.StatusError
		}
		parts = append(parts, style.Render(m.statusMsg))
	}
	return strings.Join(parts, "  ")
}

// conflictSlotSet collects the IDs of all slots involved in a conflict.
func conflictSlotSet(conflicts []schedule.Conflict) map[string]bool {
	set := make(map[string]bool, len(conflicts)*2)
	for _, c := range conflicts {
		set[c.SlotA] = true
		set[c.SlotB] = true
	}
	return set
}

// projectSpan returns the min start and max end across slots.
func projectSpan(slots []*schedule.ScheduleSlot) (time.Time, time.Time) {
	var start, end time.Time
	for i, s := range slots {
		if i == 0 || s.Start.Before(start) {
			start = s.Start
		}
		if i == 0 || s.End.After(end) {
			end = s.End
		}
	}
	return start, end
}

func projectLabel(id string) string {
	if id == "" {
		return "(no project)"
	}
	return id
}

func employeeLabel(id string) string {
	if id == "" {
		return "(unassigned)"
	}
	return id
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
