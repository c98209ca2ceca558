// Package config loads the termdrive demo configuration from a TOML
// file. A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo's options.
type Config struct {
	// Term overrides $TERM for driver selection.
	Term string `toml:"term"`

	// AltScreen switches to the alternate screen while running.
	AltScreen bool `toml:"alt_screen"`

	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse"`

	// Title is set as the window title when non-empty.
	Title string `toml:"title"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		AltScreen: true,
		Title:     "termdrive",
	}
}

// Load reads configuration from path. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
