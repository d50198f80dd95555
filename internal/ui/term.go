package ui

import (
	"context"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	colorHeader   = color.New(color.Bold)
	colorProject  = color.New(color.FgCyan, color.Bold)
	colorMuted    = color.New(color.FgWhite, color.Faint)
	colorConflict = color.New(color.FgRed, color.Bold)
	colorOK       = color.New(color.FgGreen)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func cmdContext() context.Context {
	return context.Background()
}
