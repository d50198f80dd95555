// Package tui provides the terminal board view: a horizontal timeline with
// one row per project, employee sub-rows, and direct manipulation of slot
// bars by keyboard or mouse.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tradetrackr/planboard/internal/board"
	"github.com/tradetrackr/planboard/internal/config"
	"github.com/tradetrackr/planboard/internal/schedule"
)

// Terminal cell geometry. One day is dayCells wide; the label column shows
// project and employee names.
const (
	dayCells   = 4
	labelCells = 24
	headerRows = 2
)

// timeNow is stubbed in tests.
var timeNow = time.Now

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirmDelete
)

// Model is the main TUI model.
type Model struct {
	board  *board.Board
	config *config.Config
	styles *Styles
	keys   KeyMap

	mode     Mode
	selected int // index into visibleSlots()
	scroll   int // first visible day index

	width  int
	height int

	statusMsg   string
	statusIsErr bool
	statusTime  time.Time

	err error
}

// New creates a new TUI model over a loaded board.
func New(b *board.Board, cfg *config.Config) Model {
	styles := NewStyles(LoadTheme(cfg.UI.Theme))

	m := Model{
		board:  b,
		config: cfg,
		styles: styles,
		keys:   DefaultKeyMap(),
	}
	// Start scrolled so today sits near the left edge of the day area.
	if idx := b.Timeline().IndexOf(timeNow()); idx > 2 {
		m.scroll = idx - 2
	}
	return m
}

// Init initializes the model. The board is loaded before the program
// starts, so there is nothing to do here.
func (m Model) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Run loads the board and starts the TUI.
func Run(b *board.Board, cfg *config.Config) error {
	p := tea.NewProgram(New(b, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// visibleSlots flattens the board rows into selection order: project by
// project, employee by employee.
func (m Model) visibleSlots() []*schedule.ScheduleSlot {
	var out []*schedule.ScheduleSlot
	seen := make(map[string]bool)
	for _, row := range m.board.Rows() {
		for _, emp := range row.Employees {
			for _, s := range emp.Slots {
				if !seen[s.ID] {
					seen[s.ID] = true
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// selectedSlot returns the currently selected slot, or nil.
func (m Model) selectedSlot() *schedule.ScheduleSlot {
	slots := m.visibleSlots()
	if m.selected < 0 || m.selected >= len(slots) {
		return nil
	}
	return slots[m.selected]
}

// visibleDays returns how many day columns fit in the current width.
func (m Model) visibleDays() int {
	if m.width <= labelCells {
		return 1
	}
	n := (m.width - labelCells) / dayCells
	if n < 1 {
		n = 1
	}
	return n
}

// dayAtX converts a terminal column to an absolute day index, or -1 for
// positions inside the label column.
func (m Model) dayAtX(x int) int {
	if x < labelCells {
		return -1
	}
	day := m.scroll + (x-labelCells)/dayCells
	if day >= m.board.Timeline().NumDays {
		return m.board.Timeline().NumDays - 1
	}
	return day
}

// rowLine describes what a terminal line below the header shows.
type rowLine struct {
	projectID  string
	employeeID string
	slots      []*schedule.ScheduleSlot // nil for project lines
	isProject  bool
}

// rowLines flattens the board rows into terminal lines, matching View's
// layout so mouse hits can be resolved without render-time caches.
func (m Model) rowLines() []rowLine {
	var lines []rowLine
	for _, row := range m.board.Rows() {
		lines = append(lines, rowLine{projectID: row.ProjectID, isProject: true, slots: row.Slots})
		for _, emp := range row.Employees {
			lines = append(lines, rowLine{projectID: row.ProjectID, employeeID: emp.EmployeeID, slots: emp.Slots})
		}
	}
	return lines
}

// slotAt resolves a mouse position to a slot and the day under the pointer.
// onEndDay reports whether the pointer is on the slot's last day, which is
// where the resize handle lives.
func (m Model) slotAt(x, y int) (s *schedule.ScheduleSlot, day int, onEndDay bool) {
	day = m.dayAtX(x)
	if day < 0 {
		return nil, day, false
	}
	line := y - headerRows
	lines := m.rowLines()
	if line < 0 || line >= len(lines) || lines[line].isProject {
		return nil, day, false
	}

	tl := m.board.Timeline()
	for _, cand := range lines[line].slots {
		startIdx := tl.IndexOf(cand.Start)
		endIdx := tl.IndexOf(cand.End)
		if startIdx < 0 {
			startIdx = 0
		}
		if endIdx < 0 {
			endIdx = tl.NumDays - 1
		}
		if day >= startIdx && day <= endIdx {
			return cand, day, day == endIdx
		}
	}
	return nil, day, false
}
