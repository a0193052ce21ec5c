// Package testsupport provides shared helpers for package tests: temp
// configs seeded with unique directories and pre-opened library stores.
package testsupport

import (
	"path/filepath"
	"testing"

	"libris/internal/config"
)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.ISBNdb.APIKey = "test"
	cfg.Paths.DatabaseFile = filepath.Join(base, "library.db")
	cfg.Paths.CatalogFile = filepath.Join(base, "catalog.html")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Scanner.SerialPort = ""
	return &cfg
}
