package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"budget/internal/log"
)

type Config struct {
	// Storage
	StoreBackend string
	StoreDir     string
	SQLiteDBPath string

	// Logging
	LogLevel  string
	LogFormat string

	// Host container the CLI mounts the widget into
	MountSelector string
}

var validBackends = []string{"memory", "file", "sqlite"}

func Load() *Config {
	cfg := &Config{
		StoreBackend: getEnv("STORE_BACKEND", "file"),
		StoreDir:     getEnv("STORE_DIR", "./data"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/budget.db"),

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		MountSelector: getEnv("MOUNT_SELECTOR", ".budget-tracker"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate store backend
	isValidBackend := false
	for _, backend := range validBackends {
		if c.StoreBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid store backend '%s': must be one of %v", c.StoreBackend, validBackends))
	}

	if c.StoreBackend == "file" && strings.TrimSpace(c.StoreDir) == "" {
		errors = append(errors, "store directory cannot be empty when using file backend")
	}

	// Validate SQLite configuration if backend is sqlite
	if c.StoreBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate logging
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if strings.TrimSpace(c.MountSelector) == "" {
		errors = append(errors, "mount selector cannot be empty")
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Logger builds the application logger described by the configuration.
func (c *Config) Logger() *log.Logger {
	level, _ := log.ParseLevel(c.LogLevel)
	cfg := log.DefaultConfig()
	cfg.Level = level
	cfg.Format = c.LogFormat
	return log.New(cfg)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
