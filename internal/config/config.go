// Package config handles XDG configuration directory and file paths.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// DatabaseFile is the default SQLite database filename.
	DatabaseFile = "tasklist.db"
)

// Storage drivers accepted in storage.driver.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// StorageConfig selects where tasks are persisted.
type StorageConfig struct {
	// Driver is sqlite, mysql or memory.
	Driver string `yaml:"driver"`

	// DSN is the SQLite file path or MySQL data source name.
	DSN string `yaml:"dsn"`

	// Key is the storage key holding the task list.
	Key string `yaml:"key"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	Storage StorageConfig `yaml:"storage"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasklist or $HOME/.config/tasklist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir: dir,
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Key:    "tasks",
		},
	}, nil
}

// Load creates a Config for configDir, then applies config.yaml (if present)
// and TASKLIST_* environment overrides.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.FilePath())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", ConfigFile, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	cfg.Storage.Driver = envStr("TASKLIST_STORAGE_DRIVER", cfg.Storage.Driver)
	cfg.Storage.DSN = envStr("TASKLIST_STORAGE_DSN", cfg.Storage.DSN)
	cfg.Storage.Key = envStr("TASKLIST_STORAGE_KEY", cfg.Storage.Key)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverMemory:
	case DriverMySQL:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("storage.key must not be empty")
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// DSN returns the storage data source, defaulting SQLite to a file in Dir.
func (c *Config) DSN() string {
	if c.Storage.DSN == "" && c.Storage.Driver == DriverSQLite {
		return filepath.Join(c.Dir, DatabaseFile)
	}
	return c.Storage.DSN
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
