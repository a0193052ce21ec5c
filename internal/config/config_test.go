package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"libris/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ISBNDB_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.ISBNdb.APIKey != "env-key" {
		t.Fatalf("expected env fallback for API key, got %q", cfg.ISBNdb.APIKey)
	}
	if cfg.Scanner.SerialSpeed != 9600 {
		t.Fatalf("unexpected default serial speed %d", cfg.Scanner.SerialSpeed)
	}
	if cfg.Loop.PollIntervalMillis != 5 {
		t.Fatalf("unexpected default poll interval %d", cfg.Loop.PollIntervalMillis)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	t.Setenv("ISBNDB_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
database_file = "` + filepath.Join(dir, "library.db") + `"
catalog_file = "` + filepath.Join(dir, "catalog.html") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[isbndb]
api_key = "file-key"
base_url = "https://isbndb.example/api/"

[scanner]
serial_port = ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.ISBNdb.APIKey != "file-key" {
		t.Fatalf("api key = %q", cfg.ISBNdb.APIKey)
	}
	if strings.HasSuffix(cfg.ISBNdb.BaseURL, "/") {
		t.Fatalf("base url not trimmed: %q", cfg.ISBNdb.BaseURL)
	}
	if cfg.Scanner.SerialPort != "" {
		t.Fatalf("expected empty serial port, got %q", cfg.Scanner.SerialPort)
	}
}

func TestValidateRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("ISBNDB_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error without API key")
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := config.Default()
	cfg.ISBNdb.APIKey = "key"
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[isbndb]") {
		t.Fatal("sample config missing isbndb section")
	}
}
