package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

var (
	ErrNoCheeses      = errors.New("TOAH_CHEESES must be positive")
	ErrNoStools       = errors.New("TOAH_STOOLS must be positive")
	ErrNegativeDelay  = errors.New("TOAH_DELAY must not be negative")
	ErrTooManyCheeses = fmt.Errorf("TOAH_CHEESES must be at most %d", MaxCheeses)
)

// MaxCheeses is the tallest tower a game may start with
const MaxCheeses = 64

// Config holds the settings shared by every command
type Config struct {
	Cheeses  int           `env:"TOAH_CHEESES,default=5"`
	Stools   int           `env:"TOAH_STOOLS,default=4"`
	Delay    time.Duration `env:"TOAH_DELAY,default=500ms"`
	Animate  bool          `env:"TOAH_ANIMATE,default=false"`
	LogLevel string        `env:"TOAH_LOG_LEVEL,default=info"`
}

// Default returns the settings used when the environment sets nothing
func Default() Config {
	return Config{
		Cheeses:  5,
		Stools:   4,
		Delay:    500 * time.Millisecond,
		LogLevel: "info",
	}
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	cfg := Default()
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Cheeses <= 0 {
		return ErrNoCheeses
	}
	if c.Cheeses > MaxCheeses {
		return ErrTooManyCheeses
	}
	if c.Stools <= 0 {
		return ErrNoStools
	}
	if c.Delay < 0 {
		return ErrNegativeDelay
	}
	return nil
}
