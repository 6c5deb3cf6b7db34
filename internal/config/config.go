package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "pomotask"

// Config is the process-level configuration, read from the environment.
// User-facing preferences live in the settings package.
type Config struct {
	DBPath    string
	LogFile   string
	LogLevel  string
	ExportDir string
}

// Load reads POMOTASK_* variables, filling gaps with defaults under the user
// config directory.
func Load() (*Config, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locate home dir: %w", err)
	}

	dbPath, err := DefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}

	cfg := &Config{
		DBPath:    getEnv("POMOTASK_DB", dbPath),
		LogFile:   getEnv("POMOTASK_LOG_FILE", filepath.Join(base, appDir, "pomotask.log")),
		LogLevel:  getEnv("POMOTASK_LOG_LEVEL", "info"),
		ExportDir: getEnv("POMOTASK_EXPORT_DIR", home),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("POMOTASK_DB must not be empty")
	}
	if c.LogFile == "" {
		return errors.New("POMOTASK_LOG_FILE must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("POMOTASK_LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	return nil
}

// DefaultDBPath returns ~/.config/pomotask/pomotask.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, appDir, "pomotask.db"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
