package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/ics"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		path      string
		projectID string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as an iCalendar file",
		Long: `Export the schedule as an iCalendar (.ics) file that phone and
desktop calendars can import or subscribe to. Slots derived from tasks
are not exported.`,
		Example: `  planboard export
  planboard export --out=crew.ics --project=neubau-meier`,
		RunE: func(_ *cobra.Command, _ []string) error {
			slots, err := a.store.List(cmdContext(), projectID)
			if err != nil {
				return fmt.Errorf("listing slots: %w", err)
			}

			if path == "" {
				path = a.config.Export.Path
			}
			if err := ics.WriteFile(path, slots); err != nil {
				return err
			}
			fmt.Printf("%s %d slots to %s\n", colorOK.Sprint("Exported"), len(slots), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "out", "", "Output file (defaults to config export path)")
	cmd.Flags().StringVar(&projectID, "project", "", "Only export slots of this project")

	return cmd
}
