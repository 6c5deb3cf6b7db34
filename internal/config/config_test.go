package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("POMOTASK_DB", "")
	t.Setenv("POMOTASK_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(cfg.DBPath, "pomotask.db") {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ExportDir == "" {
		t.Fatal("ExportDir should default to the home directory")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("POMOTASK_DB", "/tmp/x.db")
	t.Setenv("POMOTASK_LOG_LEVEL", "debug")
	t.Setenv("POMOTASK_EXPORT_DIR", "/tmp/out")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.LogLevel != "debug" || cfg.ExportDir != "/tmp/out" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestValidateRejectsBadLevel(t *testing.T) {
	c := &Config{DBPath: "a.db", LogFile: "a.log", LogLevel: "verbose"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}
