package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradetrackr/planboard/internal/board"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ErrMsg:
		m.err = msg.Err
		return m.withStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case StatusMsg:
		return m.withStatus(msg.Msg, false)

	case ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case ExportedMsg:
		return m.withStatus(fmt.Sprintf("Exported %d slots to %s", msg.Count, msg.Path), false)
	}

	return m, nil
}

// withStatus sets a transient footer message with an expiry tick.
func (m Model) withStatus(msg string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusIsErr = isErr
	m.statusTime = time.Now().Add(3 * time.Second)
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll = m.clampScroll(m.scroll - 1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll = m.clampScroll(m.scroll + 1)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		s, day, onEndDay := m.slotAt(msg.X, msg.Y)
		if s == nil {
			return m, nil
		}
		if s.Derived {
			return m.withStatus("Task slots are read-only", true)
		}
		var err error
		if onEndDay {
			err = m.board.BeginResize(s.ID)
		} else {
			err = m.board.BeginDrag(s.ID, day)
		}
		if err != nil {
			return m.withStatus(fmt.Sprintf("Error: %v", err), true)
		}
		m.selectSlot(s.ID)
		return m, nil

	case tea.MouseActionMotion:
		if !m.board.Gesture().Active() {
			return m, nil
		}
		day := m.dayAtX(msg.X)
		if day < 0 {
			return m, nil
		}
		if err := m.moveGestureTo(day); err != nil {
			return m.withStatus(fmt.Sprintf("Error: %v", err), true)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.board.Gesture().Active() {
			return m, nil
		}
		if err := m.board.Release(context.Background()); err != nil {
			return m.withStatus(fmt.Sprintf("Save failed: %v", err), true)
		}
		return m, nil
	}

	return m, nil
}

// moveGestureTo routes a pointer day to the active gesture.
func (m Model) moveGestureTo(day int) error {
	switch m.board.Gesture().Kind {
	case board.GestureDragging:
		return m.board.DragTo(day)
	case board.GestureResizing:
		return m.board.ResizeTo(day)
	default:
		return nil
	}
}

// selectSlot moves the selection to the slot with the given ID.
func (m *Model) selectSlot(id string) {
	for i, s := range m.visibleSlots() {
		if s.ID == id {
			m.selected = i
			return
		}
	}
}

// clampScroll bounds the scroll offset to the timeline.
func (m Model) clampScroll(offset int) int {
	max := m.board.Timeline().NumDays - m.visibleDays()
	if max < 0 {
		max = 0
	}
	if offset > max {
		return max
	}
	if offset < 0 {
		return 0
	}
	return offset
}
