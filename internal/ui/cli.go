// Package ui implements the command line interface.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradetrackr/planboard/internal/board"
	"github.com/tradetrackr/planboard/internal/config"
	"github.com/tradetrackr/planboard/internal/schedule"
	"github.com/tradetrackr/planboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  schedule.Store
	tasks  board.TaskSource
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application. tasks may be nil.
func NewApp(store schedule.Store, tasks board.TaskSource, cfg *config.Config) *App {
	a := &App{store: store, tasks: tasks, config: cfg}

	a.root = &cobra.Command{
		Use:   "planboard",
		Short: "A resource scheduling board for trades businesses",
		Long: `Planboard shows who works on which project when, on a horizontal
day timeline. Slots snap to working days (Sundays and German public
holidays are skipped), double-bookings are flagged, and the schedule
can be exported as an iCalendar feed.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			return tui.Run(b, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.conflictsCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.holidaysCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("planboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}

// loadBoard builds the interactive board over the default timeline.
func (a *App) loadBoard() (*board.Board, error) {
	start := time.Now().AddDate(0, 0, -a.config.Board.DaysPast)
	tl := board.NewTimeline(start,
		a.config.Board.DaysPast+a.config.Board.DaysFuture+1,
		a.config.Board.DayWidth, a.config.Board.LabelWidth)

	b := board.New(a.store, a.tasks, a.config.Concern.ID, tl)
	if err := b.Load(cmdContext()); err != nil {
		return nil, err
	}
	return b, nil
}
