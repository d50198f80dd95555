// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Concern Concern `toml:"concern"`
	Board   Board   `toml:"board"`
	Storage Storage `toml:"storage"`
	Export  Export  `toml:"export"`
	UI      UI      `toml:"ui"`
	Log     Log     `toml:"log"`
}

// Concern identifies the business account all slots are scoped to.
type Concern struct {
	ID       string `toml:"id"`
	ActorUID string `toml:"actor_uid"` // recorded as created_by on new slots
}

// Board holds the visible range and column geometry.
type Board struct {
	DaysPast     int    `toml:"days_past"`
	DaysFuture   int    `toml:"days_future"`
	DayWidth     int    `toml:"day_width"`
	LabelWidth   int    `toml:"label_width"`
	DefaultColor string `toml:"default_color"` // hex, used by quick-create
}

// Storage holds database settings.
type Storage struct {
	DBPath string `toml:"db_path"`
}

// Export holds iCalendar export settings.
type Export struct {
	Path string `toml:"path"`
}

// UI holds TUI settings.
type UI struct {
	Theme string `toml:"theme"` // "dark" or "light"
}

// Log holds logging settings.
type Log struct {
	Dir   string `toml:"dir"`
	Debug bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Concern: Concern{
			ID:       "default",
			ActorUID: "local",
		},
		Board: Board{
			DaysPast:     30,
			DaysFuture:   180,
			DayWidth:     100,
			LabelWidth:   250,
			DefaultColor: "#058bc0",
		},
		Storage: Storage{
			DBPath: defaultDBPath(),
		},
		Export: Export{
			Path: "planboard.ics",
		},
		UI: UI{
			Theme: "dark",
		},
		Log: Log{
			Dir: defaultLogDir(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "planboard.db"
	}
	return filepath.Join(home, ".local", "share", "planboard", "planboard.db")
}

// defaultLogDir returns the default log directory.
func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "planboard")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "planboard", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLANBOARD_CONCERN_ID"); v != "" {
		cfg.Concern.ID = v
	}
	if v := os.Getenv("PLANBOARD_ACTOR_UID"); v != "" {
		cfg.Concern.ActorUID = v
	}
	if v := os.Getenv("PLANBOARD_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("PLANBOARD_EXPORT_PATH"); v != "" {
		cfg.Export.Path = v
	}
	if v := os.Getenv("PLANBOARD_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("PLANBOARD_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("PLANBOARD_DEBUG"); v != "" {
		cfg.Log.Debug = v == "1" || strings.EqualFold(v, "true")
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Concern.ID == "" {
		return errors.New("concern id must be set")
	}
	if c.Board.DaysPast < 0 {
		return errors.New("days_past must not be negative")
	}
	if c.Board.DaysFuture < 1 {
		return errors.New("days_future must be at least 1")
	}
	if c.Board.DayWidth < 1 {
		return errors.New("day_width must be positive")
	}
	if c.Board.LabelWidth < 0 {
		return errors.New("label_width must not be negative")
	}
	if c.Board.DefaultColor != "" && !hexColorRe.MatchString(c.Board.DefaultColor) {
		return fmt.Errorf("default_color must be a #rrggbb hex color, got %q", c.Board.DefaultColor)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
