package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/daylist-app/daylist/internal/snapshot"
	"github.com/daylist-app/daylist/internal/validation"
)

// Config holds application configuration
type Config struct {
	Backend     snapshot.Backend `yaml:"backend" validate:"required,snapshot_backend"`
	DataFile    string           `yaml:"data_file" validate:"required"`
	RedisURL    string           `yaml:"redis_url"`
	RedisKey    string           `yaml:"redis_key"`
	DatabaseURL string           `yaml:"database_url"`
	Debug       bool             `yaml:"debug"`
}

// Load builds configuration from defaults, an optional YAML config file,
// and environment variables, in increasing precedence.
//
// The config file is $DAYLIST_CONFIG if set, else
// ~/.config/daylist/config.yaml; a missing file is fine.
func Load() (*Config, error) {
	cfg := &Config{
		Backend:  snapshot.BackendFile,
		DataFile: defaultDataFile(),
		RedisKey: "daylist:tasks",
	}

	path := os.Getenv("DAYLIST_CONFIG")
	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "daylist", "config.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case explicit || !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.Backend = snapshot.Backend(getEnv("DAYLIST_BACKEND", string(cfg.Backend)))
	cfg.DataFile = getEnv("DAYLIST_DATA_FILE", cfg.DataFile)
	cfg.RedisURL = getEnv("DAYLIST_REDIS_URL", cfg.RedisURL)
	cfg.RedisKey = getEnv("DAYLIST_REDIS_KEY", cfg.RedisKey)
	cfg.DatabaseURL = getEnv("DAYLIST_DATABASE_URL", cfg.DatabaseURL)
	cfg.Debug = getEnvBool("DAYLIST_DEBUG", cfg.Debug)

	if err := validation.Validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Backend == snapshot.BackendRedis && cfg.RedisURL == "" {
		return nil, fmt.Errorf("DAYLIST_REDIS_URL is required for the redis backend")
	}
	if cfg.Backend == snapshot.BackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DAYLIST_DATABASE_URL is required for the postgres backend")
	}

	return cfg, nil
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "daylist.json"
	}
	return filepath.Join(home, ".local", "share", "daylist", "tasks.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
