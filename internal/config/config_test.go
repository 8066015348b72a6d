package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daylist-app/daylist/internal/snapshot"
)

// writeConfigFile writes a YAML config into a temp dir and points
// DAYLIST_CONFIG at it, so tests never touch the real user config.
func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYLIST_CONFIG", path)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DAYLIST_BACKEND",
		"DAYLIST_DATA_FILE",
		"DAYLIST_REDIS_URL",
		"DAYLIST_REDIS_KEY",
		"DAYLIST_DATABASE_URL",
		"DAYLIST_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != snapshot.BackendFile {
		t.Errorf("Backend = %v, want file", cfg.Backend)
	}
	if cfg.DataFile == "" {
		t.Error("DataFile default missing")
	}
	if cfg.RedisKey != "daylist:tasks" {
		t.Errorf("RedisKey = %q", cfg.RedisKey)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "backend: redis\nredis_url: redis://localhost:6379/1\ndebug: true\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != snapshot.BackendRedis {
		t.Errorf("Backend = %v, want redis", cfg.Backend)
	}
	if cfg.RedisURL != "redis://localhost:6379/1" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if !cfg.Debug {
		t.Error("Debug should be true from file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "backend: file\ndata_file: /from/file.json\n")
	t.Setenv("DAYLIST_DATA_FILE", "/from/env.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "/from/env.json" {
		t.Errorf("DataFile = %q, env must win over file", cfg.DataFile)
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "")
	t.Setenv("DAYLIST_BACKEND", "carrier-pigeon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoad_BackendURLRequirements(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr string
	}{
		{"redis without url", "redis", "DAYLIST_REDIS_URL"},
		{"postgres without url", "postgres", "DAYLIST_DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			writeConfigFile(t, "")
			t.Setenv("DAYLIST_BACKEND", tt.backend)

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "backend: [not\nvalid yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoad_ExplicitMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DAYLIST_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DAYLIST_CONFIG points at a missing file")
	}
}
