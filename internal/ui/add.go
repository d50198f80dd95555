package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/schedule"
	"github.com/tradetrackr/planboard/internal/workcal"
)

func (a *App) addCmd() *cobra.Command {
	var (
		projectID string
		assignees string
		startStr  string
		endStr    string
		note      string
		colorHex  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a work slot",
		Long: `Schedule a work slot for one or more employees on a project.

One slot is created per employee. Start and end accept YYYY-MM-DD or
"YYYY-MM-DD HH:MM"; a date-only start begins at 07:00, a date-only end
finishes at the end of that day. A start on a Sunday or public holiday
is moved forward to the next working day.`,
		Example: `  planboard add --project=neubau-meier --assignees=hans,peter --start=2026-03-02 --end=2026-03-06
  planboard add --project=altbau --assignees=hans --start="2026-03-02 09:00" --end="2026-03-02 17:00" --note="Elektrik prüfen"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			start, err := parseWhen(startStr, 7, 0)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			end, err := parseWhen(endStr, 23, 59)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			cal := workcal.New()
			if snapped := cal.SnapToWorkingDay(start); !snapped.Equal(workcal.TruncateToDay(start)) {
				shift := snapped.Sub(workcal.TruncateToDay(start))
				start = start.Add(shift)
				end = end.Add(shift)
				fmt.Println(colorMuted.Sprintf("Start moved to next working day: %s", start.Format("2006-01-02")))
			}

			ids := splitList(assignees)
			if colorHex == "" {
				colorHex = a.config.Board.DefaultColor
			}

			for _, emp := range ids {
				s, err := schedule.New(a.config.Concern.ID, projectID, []string{emp}, start, end)
				if err != nil {
					return err
				}
				s.Note = note
				s.Color = colorHex
				id, err := a.store.Create(cmdContext(), s)
				if err != nil {
					return fmt.Errorf("creating slot for %s: %w", emp, err)
				}
				fmt.Printf("%s %s → %s (%s)\n", colorOK.Sprint("Scheduled"), emp, projectName(projectID), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project the slot belongs to (required)")
	cmd.Flags().StringVar(&assignees, "assignees", "", "Comma-separated employee IDs (required)")
	cmd.Flags().StringVar(&startStr, "start", "", "Start date or datetime (required)")
	cmd.Flags().StringVar(&endStr, "end", "", "End date or datetime (required)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note shown on the slot")
	cmd.Flags().StringVar(&colorHex, "color", "", "Slot color as #rrggbb (defaults to config)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("assignees")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// parseWhen parses a date or datetime, filling in the given default
// hour/minute for date-only input.
func parseWhen(v string, defHour, defMin int) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.ParseInLocation("2006-01-02 15:04", v, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if defHour == 23 && defMin == 59 {
		return workcal.TruncateToDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return t.Add(time.Duration(defHour)*time.Hour + time.Duration(defMin)*time.Minute), nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
