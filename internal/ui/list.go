package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/schedule"
)

func (a *App) listCmd() *cobra.Command {
	var (
		projectID  string
		assigneeID string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled slots",
		Long: `List all scheduled slots, grouped by project and ordered by start.

The list can be narrowed by project, employee and status.`,
		Example: `  planboard list
  planboard list --project=neubau-meier
  planboard list --assignee=hans --status=confirmed`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if status != "" && !schedule.Status(status).Valid() {
				return fmt.Errorf("invalid status %q (planned, confirmed, completed)", status)
			}

			slots, err := a.store.List(cmdContext(), projectID)
			if err != nil {
				return fmt.Errorf("listing slots: %w", err)
			}
			slots = schedule.Filter(slots, schedule.FilterOpts{
				AssigneeID: assigneeID,
				Status:     schedule.Status(status),
			})

			if len(slots) == 0 {
				fmt.Println("No slots scheduled.")
				return nil
			}

			var currentProject string
			first := true
			for _, s := range slots {
				if s.ProjectID != currentProject || first {
					if !first {
						fmt.Println()
					}
					fmt.Println(colorProject.Sprintf("=== %s ===", projectName(s.ProjectID)))
					currentProject = s.ProjectID
					first = false
				}
				printSlot(s)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Only show slots of this project")
	cmd.Flags().StringVar(&assigneeID, "assignee", "", "Only show slots of this employee")
	cmd.Flags().StringVar(&status, "status", "", "Only show slots with this status")

	return cmd
}

func printSlot(s *schedule.ScheduleSlot) {
	line := fmt.Sprintf("  %s  %s – %s  %s",
		statusSymbol(s.Status),
		s.Start.Format("2006-01-02 15:04"),
		s.End.Format("2006-01-02 15:04"),
		joinNames(s.AssigneeIDs),
	)
	fmt.Println(line)
	if s.Note != "" {
		note := s.Note
		if max := termWidth() - 6; len(note) > max && max > 0 {
			note = note[:max]
		}
		fmt.Println(colorMuted.Sprintf("      %s", note))
	}
}

func statusSymbol(s schedule.Status) string {
	switch s {
	case schedule.StatusPlanned:
		return "○"
	case schedule.StatusConfirmed:
		return "●"
	case schedule.StatusCompleted:
		return "✓"
	default:
		return "?"
	}
}

func projectName(id string) string {
	if id == "" {
		return "(no project)"
	}
	return id
}

func joinNames(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += id
	}
	return out
}
