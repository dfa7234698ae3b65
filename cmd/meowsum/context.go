package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zeebo/meow"
	"github.com/zeebo/meow/internal/config"
	"github.com/zeebo/meow/internal/logging"
)

type flags struct {
	config    string
	seed      string
	width     string
	logLevel  string
	logFormat string
}

// commandContext resolves configuration lazily so every subcommand sees the
// same values: flags first, then the config file, then defaults.
type commandContext struct {
	flags flags

	cfg  *config.Config
	log  *slog.Logger
	impl meow.Impl
	seed meow.Seed
}

func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, _, _, err := config.Load(c.flags.config)
	if err != nil {
		return err
	}

	set := cmd.Flags().Changed
	if set("seed") {
		cfg.Seed = c.flags.seed
	}
	if set("width") {
		cfg.Width = c.flags.width
	}
	if set("log-level") {
		cfg.Logging.Level = c.flags.logLevel
	}
	if set("log-format") {
		cfg.Logging.Format = c.flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}

	seed, err := cfg.SeedValue()
	if err != nil {
		return err
	}

	impl, err := resolveImpl(cfg.Width, log)
	if err != nil {
		return err
	}

	c.cfg, c.log, c.impl, c.seed = cfg, log, impl, meow.Seed64(seed)
	return nil
}

func resolveImpl(width string, log *slog.Logger) (meow.Impl, error) {
	if width == "auto" {
		return meow.Select(meow.WithLogger(log)), nil
	}
	w, err := meow.ParseWidth(width)
	if err != nil {
		return meow.Impl{}, fmt.Errorf("width: %w", err)
	}
	return meow.New(w)
}
