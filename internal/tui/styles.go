package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette for a UI theme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Today      lipgloss.Color
	NonWorking lipgloss.Color
	Conflict   lipgloss.Color
	Derived    lipgloss.Color
}

// themes maps config theme names to palettes.
var themes = map[string]Theme{
	"dark": {
		Foreground: lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
		Accent:     lipgloss.Color("#89b4fa"),
		Today:      lipgloss.Color("#f9e2af"),
		NonWorking: lipgloss.Color("#45475a"),
		Conflict:   lipgloss.Color("#f38ba8"),
		Derived:    lipgloss.Color("#9399b2"),
	},
	"light": {
		Foreground: lipgloss.Color("#4c4f69"),
		Muted:      lipgloss.Color("#9ca0b0"),
		Accent:     lipgloss.Color("#1e66f5"),
		Today:      lipgloss.Color("#df8e1d"),
		NonWorking: lipgloss.Color("#ccd0da"),
		Conflict:   lipgloss.Color("#d20f39"),
		Derived:    lipgloss.Color("#7c7f93"),
	},
}

// LoadTheme returns the palette for the given name, falling back to dark.
func LoadTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["dark"]
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Header        lipgloss.Style
	DayHeader     lipgloss.Style
	TodayHeader   lipgloss.Style
	NonWorkingDay lipgloss.Style
	ProjectLabel  lipgloss.Style
	EmployeeLabel lipgloss.Style
	Selected      lipgloss.Style
	DerivedBar    lipgloss.Style
	ConflictBadge lipgloss.Style
	Footer        lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) *Styles {
	return &Styles{
		Header:        lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		DayHeader:     lipgloss.NewStyle().Foreground(t.Muted),
		TodayHeader:   lipgloss.NewStyle().Bold(true).Foreground(t.Today),
		NonWorkingDay: lipgloss.NewStyle().Foreground(t.NonWorking),
		ProjectLabel:  lipgloss.NewStyle().Bold(true).Foreground(t.Foreground),
		EmployeeLabel: lipgloss.NewStyle().Foreground(t.Muted),
		Selected:      lipgloss.NewStyle().Reverse(true),
		DerivedBar:    lipgloss.NewStyle().Foreground(t.Derived),
		ConflictBadge: lipgloss.NewStyle().Bold(true).Foreground(t.Conflict),
		Footer:        lipgloss.NewStyle().Foreground(t.Muted),
		StatusError:   lipgloss.NewStyle().Bold(true).Foreground(t.Conflict),
		StatusInfo:    lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// BarStyle returns a style for a slot bar with the slot's own color.
func (s *Styles) BarStyle(hex string) lipgloss.Style {
	if hex == "" {
		hex = "#058bc0"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
