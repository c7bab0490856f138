// ABOUTME: Wellness configuration management with backend selection.
// ABOUTME: Handles settings, env overrides, and the storage backend factory.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/wellness/internal/charm"
	"github.com/harperreed/wellness/internal/report"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Backend names accepted by OpenStore.
const (
	BackendCharm  = "charm"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Keys accepted by Set.
var Keys = []string{"backend", "data_dir", "model", "base_url", "log_level", "log_file"}

// Config stores wellness tool configuration.
type Config struct {
	// Backend selects the storage backend: "charm" (default), "badger" or "memory".
	Backend string `json:"backend,omitempty" env:"WELLNESS_BACKEND"`

	// DataDir is the root directory for local data (badger database, logs, exports).
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/wellness.
	DataDir string `json:"data_dir,omitempty" env:"WELLNESS_DATA_DIR"`

	// Model and BaseURL select the text-generation endpoint.
	Model   string `json:"model,omitempty" env:"WELLNESS_MODEL"`
	BaseURL string `json:"base_url,omitempty" env:"WELLNESS_BASE_URL"`

	LogLevel string `json:"log_level,omitempty" env:"WELLNESS_LOG_LEVEL"`
	LogFile  string `json:"log_file,omitempty" env:"WELLNESS_LOG_FILE"`

	// APIKey is read from the environment only and never written to disk.
	APIKey string `json:"-" env:"WELLNESS_API_KEY"`
}

// GetBackend returns the configured backend, defaulting to "charm".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendCharm
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogFile returns the log file path, defaulting to wellness.log in the data dir.
func (c *Config) GetLogFile() string {
	if c.LogFile == "" {
		return filepath.Join(c.GetDataDir(), "wellness.log")
	}
	return ExpandPath(c.LogFile)
}

// GetModel returns the configured model, defaulting to report.DefaultModel.
func (c *Config) GetModel() string {
	if c.Model == "" {
		return report.DefaultModel
	}
	return c.Model
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates the KV store for the configured backend.
func (c *Config) OpenStore() (storage.KV, error) {
	switch backend := c.GetBackend(); backend {
	case BackendCharm:
		client, err := charm.InitClient()
		if err != nil {
			return nil, err
		}
		return client, nil
	case BackendBadger:
		store, err := storage.OpenBadger(filepath.Join(c.GetDataDir(), "kv"))
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// NewGenerator creates the report generator for the configured endpoint.
// It returns report.ErrMissingAPIKey when no credential is set.
func (c *Config) NewGenerator() (report.Generator, error) {
	return report.NewOpenAIGenerator(report.OpenAIConfig{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Model:   c.GetModel(),
	})
}

// Set updates a single setting by its JSON name.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "backend":
		switch value {
		case BackendCharm, BackendBadger, BackendMemory:
		default:
			return fmt.Errorf("unknown backend: %q (want charm, badger or memory)", value)
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "model":
		c.Model = value
	case "base_url":
		c.BaseURL = value
	case "log_level":
		if _, err := logrus.ParseLevel(value); err != nil {
			return err
		}
		c.LogLevel = strings.ToLower(value)
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown config key: %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "wellness", "config.json")
}

// LoadFile reads config from disk without applying environment overrides.
func LoadFile() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Load reads config from disk, then applies .env files and WELLNESS_*
// environment variables on top.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads .env from the working directory and the config
// directory. Variables already set in the environment win.
func loadDotEnv() error {
	paths := []string{".env", filepath.Join(filepath.Dir(GetConfigPath()), ".env")}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
