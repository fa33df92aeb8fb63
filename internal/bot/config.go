package bot

import (
	"os"
	"strconv"
	"time"
)

// Config represents the configuration for the bot shell
type Config struct {
	// Poll interval for watched judge pages
	WatchInterval time.Duration
	// Upper bound for a single page download
	FetchTimeout time.Duration
	// Maximum number of problems rendered per list command
	MaxListItems int
}

// DefaultConfig returns the default bot configuration. WATCH_POLL_SECONDS
// overrides the poll interval.
func DefaultConfig() *Config {
	cfg := &Config{
		WatchInterval: 15 * time.Second,
		FetchTimeout:  20 * time.Second,
		MaxListItems:  10,
	}
	if v := os.Getenv("WATCH_POLL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 3 {
			cfg.WatchInterval = time.Duration(secs) * time.Second
		}
	}
	return cfg
}
