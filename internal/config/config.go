// Package config loads meowsum settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Bench contains settings for the throughput harness.
type Bench struct {
	MinTries int   `toml:"min_tries"`
	BudgetMS int   `toml:"budget_ms"`
	MaxSize  int64 `toml:"max_size"`
}

// Budget returns BudgetMS as a duration.
func (b Bench) Budget() time.Duration {
	return time.Duration(b.BudgetMS) * time.Millisecond
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config holds every meowsum setting.
//
// Seed is parsed with strconv base prefixes, so "42", "0x2a" and "0b101010"
// are all accepted. Width is "auto", "128", "256" or "512".
type Config struct {
	Seed    string  `toml:"seed"`
	Width   string  `toml:"width"`
	Bench   Bench   `toml:"bench"`
	Logging Logging `toml:"logging"`
}

// Default returns the built in configuration.
func Default() Config {
	return Config{
		Seed:  "0",
		Width: "auto",
		Bench: Bench{
			MinTries: 10,
			BudgetMS: 200,
			MaxSize:  64 << 20,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the location used when no path is given.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "meowsum", "config.toml"), nil
}

// Load reads path, or the default location when path is empty, on top of
// Default and validates the result. A missing file is not an error; exists
// reports whether one was read.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	c := Default()

	resolved = path
	if resolved == "" {
		if resolved, err = DefaultConfigPath(); err != nil {
			return nil, "", false, err
		}
	}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, "", false, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		exists = true

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&c); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, "", false, err
	}
	return &c, resolved, exists, nil
}

func (c *Config) normalize() {
	c.Seed = strings.TrimSpace(c.Seed)
	c.Width = strings.ToLower(strings.TrimSpace(c.Width))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.SeedValue(); err != nil {
		return err
	}
	switch c.Width {
	case "auto", "128", "256", "512":
	default:
		return fmt.Errorf("width must be auto, 128, 256 or 512, got %q", c.Width)
	}
	if c.Bench.MinTries < 1 {
		return errors.New("bench.min_tries must be positive")
	}
	if c.Bench.BudgetMS < 0 {
		return errors.New("bench.budget_ms must not be negative")
	}
	if c.Bench.MaxSize < 1 {
		return errors.New("bench.max_size must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// SeedValue parses Seed.
func (c *Config) SeedValue() (uint64, error) {
	v, err := strconv.ParseUint(c.Seed, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return v, nil
}

// Encode writes c as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
