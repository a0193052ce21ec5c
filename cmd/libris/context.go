package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"libris/internal/config"
	"libris/internal/engine"
	"libris/internal/isbndb"
	"libris/internal/library"
	"libris/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withEngine opens the library store, wires the metadata client, and hands a
// ready engine to fn. The store is closed (and its lock released) when fn
// returns.
func (c *commandContext) withEngine(logger *slog.Logger, fn func(*engine.Engine) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := library.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	source := isbndb.New(cfg, logging.NewComponentLogger(logger, "isbndb"))
	eng := engine.New(store, source, logger)
	return fn(eng)
}

// quietLogger keeps one-shot command output clean: warnings and errors only,
// on stderr.
func quietLogger() (*slog.Logger, error) {
	return logging.New(logging.Options{Level: "warn", Format: "console"})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
