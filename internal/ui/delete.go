package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/schedule"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slot-id>",
		Short: "Delete a scheduled slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			err := a.store.Delete(cmdContext(), args[0])
			if errors.Is(err, schedule.ErrSlotNotFound) {
				return fmt.Errorf("no slot with ID %s", args[0])
			}
			if err != nil {
				return fmt.Errorf("deleting slot: %w", err)
			}
			fmt.Println(colorOK.Sprint("Deleted."))
			return nil
		},
	}
}
