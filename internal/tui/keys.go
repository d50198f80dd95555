package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradetrackr/planboard/internal/ics"
	"github.com/tradetrackr/planboard/internal/schedule"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeConfirmDelete {
		return m.handleConfirmDeleteKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollLeft):
		m.scroll = m.clampScroll(m.scroll - 1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollRight):
		m.scroll = m.clampScroll(m.scroll + 1)
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.scroll = 0
		return m, nil

	case key.Matches(msg, m.keys.Today):
		tl := m.board.Timeline()
		if idx := tl.IndexOf(timeNow()); idx >= 0 {
			m.scroll = m.clampScroll(idx - 2)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.selected < len(m.visibleSlots())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveLeft):
		return m.nudgeSelected(-1)

	case key.Matches(msg, m.keys.MoveRight):
		return m.nudgeSelected(1)

	case key.Matches(msg, m.keys.Grow):
		return m.resizeSelected(1)

	case key.Matches(msg, m.keys.Shrink):
		return m.resizeSelected(-1)

	case key.Matches(msg, m.keys.Undo):
		if m.board.Undo() {
			return m.withStatus("Undone", false)
		}
		return m.withStatus("Nothing to undo", false)

	case key.Matches(msg, m.keys.Redo):
		if m.board.Redo() {
			return m.withStatus("Redone", false)
		}
		return m.withStatus("Nothing to redo", false)

	case key.Matches(msg, m.keys.Delete):
		s := m.selectedSlot()
		if s == nil {
			return m, nil
		}
		if s.Derived {
			return m.withStatus("Task slots are read-only", true)
		}
		m.mode = ModeConfirmDelete
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	}

	return m, nil
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	switch msg.String() {
	case "y", "Y", "enter":
		s := m.selectedSlot()
		if s == nil {
			return m, nil
		}
		if err := m.board.Delete(context.Background(), s.ID); err != nil {
			return m.withStatus(fmt.Sprintf("Delete failed: %v", err), true)
		}
		if m.selected >= len(m.visibleSlots()) && m.selected > 0 {
			m.selected--
		}
		return m.withStatus("Slot deleted", false)
	default:
		return m.withStatus("Cancelled", false)
	}
}

// nudgeSelected moves the selected slot by whole days as a single
// drag gesture. Moving left across non-working days keeps probing further
// left, mirroring a pointer that keeps travelling.
func (m Model) nudgeSelected(delta int) (tea.Model, tea.Cmd) {
	s := m.selectedSlot()
	if s == nil {
		return m, nil
	}
	if s.Derived {
		return m.withStatus("Task slots are read-only", true)
	}

	tl := m.board.Timeline()
	startIdx := tl.IndexOf(s.Start)
	if startIdx < 0 {
		return m, nil
	}

	target := startIdx + delta
	if delta < 0 {
		for target >= 0 && m.board.Calendar().IsNonWorkingDay(tl.DateOf(target)) {
			target--
		}
		if target < 0 {
			return m, nil
		}
	}

	if err := m.board.BeginDrag(s.ID, startIdx); err != nil {
		return m.withStatus(fmt.Sprintf("Error: %v", err), true)
	}
	if err := m.board.DragTo(target); err != nil {
		return m.withStatus(fmt.Sprintf("Error: %v", err), true)
	}
	if err := m.board.Release(context.Background()); err != nil {
		return m.withStatus(fmt.Sprintf("Save failed: %v", err), true)
	}
	return m, nil
}

// resizeSelected grows or shrinks the selected slot's end by whole days as
// a single resize gesture.
func (m Model) resizeSelected(delta int) (tea.Model, tea.Cmd) {
	s := m.selectedSlot()
	if s == nil {
		return m, nil
	}
	if s.Derived {
		return m.withStatus("Task slots are read-only", true)
	}

	tl := m.board.Timeline()
	endIdx := tl.IndexOf(s.End)
	if endIdx < 0 {
		return m, nil
	}

	if err := m.board.BeginResize(s.ID); err != nil {
		return m.withStatus(fmt.Sprintf("Error: %v", err), true)
	}
	if err := m.board.ResizeTo(endIdx + delta); err != nil {
		return m.withStatus(fmt.Sprintf("Error: %v", err), true)
	}
	if err := m.board.Release(context.Background()); err != nil {
		return m.withStatus(fmt.Sprintf("Save failed: %v", err), true)
	}
	return m, nil
}

// exportCmd writes the calendar feed in the background.
func (m Model) exportCmd() tea.Cmd {
	path := m.config.Export.Path
	slots := make([]*schedule.ScheduleSlot, 0)
	for _, s := range m.board.Slots() {
		if !s.Derived {
			slots = append(slots, s.Clone())
		}
	}
	return func() tea.Msg {
		if err := ics.WriteFile(path, slots); err != nil {
			return ErrMsg{Err: err}
		}
		return ExportedMsg{Path: path, Count: len(slots)}
	}
}
