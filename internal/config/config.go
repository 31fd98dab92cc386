package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all runtime configuration for the planner.
type Config struct {
	// DBPath is the SQLite database file, or ":memory:".
	DBPath string
	// Listen is the HTTP listen address of the serve command.
	Listen string
	// BaseURL is the origin used by client commands and for the feed link.
	BaseURL string
	// Timezone is the IANA zone used for the planning week and feed display.
	Timezone string
	// SlotMinutes is the planning slot granularity.
	SlotMinutes int
	// CalendarURLs are the ICS sources consulted for busy times.
	CalendarURLs []string
	// RefreshCron drives the serve-time schedule refresh.
	RefreshCron string
	// FetchTimeoutMs bounds each ICS source download.
	FetchTimeoutMs int
}

// DefaultConfig returns a Config with sensible defaults. The database path is
// left empty; Load resolves it against the home directory.
func DefaultConfig() Config {
	return Config{
		Listen:         "127.0.0.1:8487",
		BaseURL:        "http://127.0.0.1:8487",
		Timezone:       "Europe/Paris",
		SlotMinutes:    30,
		RefreshCron:    "*/15 * * * *",
		FetchTimeoutMs: 10000,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values. Calendar URL slots follow the original
// three-source layout; empty entries are filtered out.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("SEMAINIER_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".semainier", "semainier.db")
	}

	if v := os.Getenv("SEMAINIER_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("SEMAINIER_API"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SEMAINIER_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("SEMAINIER_SLOT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SlotMinutes = n
		}
	}
	if v := os.Getenv("SEMAINIER_REFRESH_CRON"); v != "" {
		cfg.RefreshCron = v
	}
	if v := os.Getenv("SEMAINIER_FETCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutMs = n
		}
	}

	for _, name := range []string{"SEMAINIER_CALENDAR_URL_1", "SEMAINIER_CALENDAR_URL_2", "SEMAINIER_CALENDAR_URL_3"} {
		if url := os.Getenv(name); url != "" {
			cfg.CalendarURLs = append(cfg.CalendarURLs, url)
		}
	}

	return cfg, nil
}
