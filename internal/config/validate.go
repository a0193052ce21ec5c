package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateISBNdb(); err != nil {
		return err
	}
	if err := c.validateScanner(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DatabaseFile) == "" {
		return errors.New("paths.database_file must be set")
	}
	if strings.TrimSpace(c.Paths.CatalogFile) == "" {
		return errors.New("paths.catalog_file must be set")
	}
	return nil
}

func (c *Config) validateISBNdb() error {
	if strings.TrimSpace(c.ISBNdb.APIKey) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/libris/config.toml"
		}
		return fmt.Errorf("isbndb.api_key is required. Set ISBNDB_API_KEY env var or edit %s (create with 'libris config init')", defaultPath)
	}
	if strings.TrimSpace(c.ISBNdb.BaseURL) == "" {
		return errors.New("isbndb.base_url must be set")
	}
	if c.ISBNdb.APIVersion != "v2" {
		return fmt.Errorf("isbndb.api_version: unsupported value %q", c.ISBNdb.APIVersion)
	}
	return nil
}

func (c *Config) validateScanner() error {
	// An empty serial port is allowed: keyboard input alone drives the loop.
	if c.Scanner.SerialPort == "" {
		return nil
	}
	if c.Scanner.SerialSpeed <= 0 {
		return errors.New("scanner.serial_speed must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
