package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil {
				fmt.Println(colorHeader.Sprint("Config file:"), path)
			} else {
				fmt.Println(colorHeader.Sprint("Config file:"), colorMuted.Sprintf("%s (not present, using defaults)", path))
			}

			c := a.config
			fmt.Println(colorHeader.Sprint("Concern:"), c.Concern.ID)
			fmt.Println(colorHeader.Sprint("Database:"), c.Storage.DBPath)
			fmt.Println(colorHeader.Sprint("Export path:"), c.Export.Path)
			fmt.Printf("%s %d days past, %d days future\n", colorHeader.Sprint("Board range:"), c.Board.DaysPast, c.Board.DaysFuture)
			fmt.Println(colorHeader.Sprint("Theme:"), c.UI.Theme)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.config.Save(); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", colorOK.Sprint("Wrote"), config.DefaultConfigPath())
			return nil
		},
	})

	return cmd
}
