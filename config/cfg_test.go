package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Output.Format != "css" {
		t.Errorf("Default output format = %q, want %q", cfg.Output.Format, "css")
	}
	if cfg.Output.Indent != 2 {
		t.Errorf("Default output indent = %d, want 2", cfg.Output.Indent)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console log level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "normal")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
output:
  format: list
  indent: 4
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Format != "list" {
		t.Errorf("Output format = %q, want %q", cfg.Output.Format, "list")
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("Output indent = %d, want 4", cfg.Output.Indent)
	}
	// values absent from the file keep template defaults
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console log level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "normal")
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
no_such_section:
  value: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("LoadConfiguration() expected error for unknown field")
	}
}

func TestLoadConfiguration_BadFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
output:
  format: xml
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("unable to write test config: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("LoadConfiguration() expected validation error for bad format")
	}
}

func TestDump_RoundTrip(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: css") {
		t.Errorf("Dump() output does not contain output format:\n%s", data)
	}
}
