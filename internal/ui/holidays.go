package ui

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/workcal"
)

func (a *App) holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays [year]",
		Short: "List the public holidays the board skips",
		Long: `List the nationwide German public holidays for a year. Slots never
start on these days; together with Sundays they split multi-day slots
into separate bars on the board.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			year := time.Now().Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year: %s", args[0])
				}
				year = y
			}

			days := workcal.New().Holidays(year)
			sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

			fmt.Println(colorHeader.Sprintf("Public holidays %d:", year))
			for _, d := range days {
				fmt.Printf("  %s (%s)\n", d.Format("2006-01-02"), d.Format("Monday"))
			}
			return nil
		},
	}
}
