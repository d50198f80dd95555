package main

import (
	"fmt"
	"os"

	"github.com/tradetrackr/planboard/internal/config"
	"github.com/tradetrackr/planboard/internal/db"
	"github.com/tradetrackr/planboard/internal/logger"
	"github.com/tradetrackr/planboard/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, LogDir: cfg.Log.Dir}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	store, err := db.New(cfg.Storage.DBPath, cfg.Concern.ID, cfg.Concern.ActorUID)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	app := ui.NewApp(store, store, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
