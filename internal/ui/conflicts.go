package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/schedule"
)

func (a *App) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "Show double-booked employees",
		Long: `Show every pair of slots that book the same employee for
overlapping time ranges. Conflicts are advisory: they are flagged, not
prevented.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			slots, err := a.store.List(cmdContext(), "")
			if err != nil {
				return fmt.Errorf("listing slots: %w", err)
			}

			conflicts := schedule.FindConflicts(slots)
			if len(conflicts) == 0 {
				fmt.Println(colorOK.Sprint("No conflicts."))
				return nil
			}

			byID := make(map[string]*schedule.ScheduleSlot, len(slots))
			for _, s := range slots {
				byID[s.ID] = s
			}

			fmt.Println(colorConflict.Sprintf("%d conflicts:", len(conflicts)))
			for _, c := range conflicts {
				a1, b1 := byID[c.SlotA], byID[c.SlotB]
				fmt.Printf("  %s is double-booked:\n", c.AssigneeID)
				if a1 != nil {
					fmt.Printf("    %s  %s – %s\n", projectName(a1.ProjectID),
						a1.Start.Format("2006-01-02 15:04"), a1.End.Format("2006-01-02 15:04"))
				}
				if b1 != nil {
					fmt.Printf("    %s  %s – %s\n", projectName(b1.ProjectID),
						b1.Start.Format("2006-01-02 15:04"), b1.End.Format("2006-01-02 15:04"))
				}
			}
			return nil
		},
	}
}
