// Package config resolves runtime options from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultHintDelay is how long the swipe hint stays hidden after startup.
const DefaultHintDelay = time.Second

// Config carries the options shared by the CLI and the TUI. Command-line
// flags override whatever the environment provides.
type Config struct {
	DeckPath    string        `env:"SWEETNOTE_DECK"`
	NoAltScreen bool          `env:"SWEETNOTE_NO_ALT_SCREEN"`
	NoMouse     bool          `env:"SWEETNOTE_NO_MOUSE"`
	LogFile     string        `env:"SWEETNOTE_LOG_FILE"`
	Verbose     bool          `env:"SWEETNOTE_VERBOSE"`
	HintDelay   time.Duration `env:"SWEETNOTE_HINT_DELAY" envDefault:"1s"`
}

// FromEnv loads Config from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HintDelay < 0 {
		return Config{}, fmt.Errorf("parse env: SWEETNOTE_HINT_DELAY must not be negative, got %s", cfg.HintDelay)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
