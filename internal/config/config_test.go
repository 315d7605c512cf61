package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid file backend config",
			config: Config{
				StoreBackend:  "file",
				StoreDir:      "./data",
				LogLevel:      "warn",
				LogFormat:     "text",
				MountSelector: ".budget-tracker",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				StoreBackend:  "memory",
				LogLevel:      "debug",
				LogFormat:     "json",
				MountSelector: "#app",
			},
			wantErr: false,
		},
		{
			name: "invalid store backend",
			config: Config{
				StoreBackend:  "redis",
				LogLevel:      "info",
				LogFormat:     "text",
				MountSelector: "#app",
			},
			wantErr:     true,
			errorString: "invalid store backend 'redis': must be one of [memory file sqlite]",
		},
		{
			name: "file backend missing directory",
			config: Config{
				StoreBackend:  "file",
				StoreDir:      " ",
				LogLevel:      "info",
				LogFormat:     "text",
				MountSelector: "#app",
			},
			wantErr:     true,
			errorString: "store directory cannot be empty when using file backend",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				StoreBackend:  "sqlite",
				LogLevel:      "info",
				LogFormat:     "text",
				MountSelector: "#app",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "invalid log level",
			config: Config{
				StoreBackend:  "memory",
				LogLevel:      "loud",
				LogFormat:     "text",
				MountSelector: "#app",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name: "invalid log format",
			config: Config{
				StoreBackend:  "memory",
				LogLevel:      "info",
				LogFormat:     "xml",
				MountSelector: "#app",
			},
			wantErr:     true,
			errorString: "invalid log format 'xml': must be 'text' or 'json'",
		},
		{
			name: "empty mount selector",
			config: Config{
				StoreBackend: "memory",
				LogLevel:     "info",
				LogFormat:    "text",
			},
			wantErr:     true,
			errorString: "mount selector cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	c := Config{StoreBackend: "nope", LogLevel: "nope", LogFormat: "nope"}
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if n := strings.Count(err.Error(), "\n- "); n != 4 {
		t.Fatalf("expected 4 problems, got %d: %v", n, err)
	}
}

func TestConfig_ValidateCreatesSQLiteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	c := Config{
		StoreBackend:  "sqlite",
		SQLiteDBPath:  filepath.Join(dir, "budget.db"),
		LogLevel:      "info",
		LogFormat:     "text",
		MountSelector: "#app",
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected directory to be created: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"STORE_BACKEND", "STORE_DIR", "SQLITE_DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "MOUNT_SELECTOR"} {
			t.Setenv(key, "")
		}
		cfg := Load()
		if cfg.StoreBackend != "file" || cfg.StoreDir != "./data" || cfg.SQLiteDBPath != "./data/budget.db" {
			t.Fatalf("unexpected storage defaults: %+v", cfg)
		}
		if cfg.LogLevel != "warn" || cfg.LogFormat != "text" || cfg.MountSelector != ".budget-tracker" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "sqlite")
		t.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("MOUNT_SELECTOR", "#budget")
		cfg := Load()
		if cfg.StoreBackend != "sqlite" || cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Fatalf("unexpected storage config: %+v", cfg)
		}
		if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.MountSelector != "#budget" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})
}
