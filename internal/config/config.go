// Package config loads boardly's settings from YAML or TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database" toml:"database"`
	Redis    RedisConfig    `yaml:"redis" toml:"redis"`
	Limits   LimitsConfig   `yaml:"limits" toml:"limits"`
	Reorder  ReorderConfig  `yaml:"reorder" toml:"reorder"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Theme    Theme          `yaml:"theme" toml:"theme"`
}

// DatabaseConfig selects the store.
type DatabaseConfig struct {
	Driver string `yaml:"driver" toml:"driver"` // "sqlite" or "pgx"
	DSN    string `yaml:"dsn" toml:"dsn"`
}

// RedisConfig enables shared locks and event publishing when URL is set.
type RedisConfig struct {
	URL string `yaml:"url" toml:"url"`
}

// LimitsConfig bounds board contents and text fields.
type LimitsConfig struct {
	MaxListsPerBoard          int `yaml:"max_lists_per_board" toml:"max_lists_per_board"`
	MaxCardsPerList           int `yaml:"max_cards_per_list" toml:"max_cards_per_list"`
	MaxBoardTitleLength       int `yaml:"max_board_title_length" toml:"max_board_title_length"`
	MaxBoardDescriptionLength int `yaml:"max_board_description_length" toml:"max_board_description_length"`
	MaxListTitleLength        int `yaml:"max_list_title_length" toml:"max_list_title_length"`
	MaxCardTitleLength        int `yaml:"max_card_title_length" toml:"max_card_title_length"`
	MaxDescriptionLength      int `yaml:"max_description_length" toml:"max_description_length"`
	MaxLabelNameLength        int `yaml:"max_label_name_length" toml:"max_label_name_length"`
}

// ReorderConfig tunes how mutations are serialized and retried.
type ReorderConfig struct {
	// MaxRetries bounds how often a mutation re-reads its snapshot after a
	// stale write. Zero disables retries.
	MaxRetries  int           `yaml:"max_retries" toml:"max_retries"`
	LockTTL     time.Duration `yaml:"lock_ttl" toml:"lock_ttl"`
	LockTimeout time.Duration `yaml:"lock_timeout" toml:"lock_timeout"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
	Path  string `yaml:"path" toml:"path"`
}

// DefaultMaxRetries is reorder.max_retries when the config does not set it.
const DefaultMaxRetries = 3

// Default returns a config with every field set to its default.
func Default() *Config {
	c := newConfig()
	c.applyDefaults()
	return &c
}

// newConfig presets the fields whose zero value is a valid setting, so a
// file that sets them to zero is not overridden by applyDefaults.
func newConfig() Config {
	return Config{Reorder: ReorderConfig{MaxRetries: DefaultMaxRetries}}
}

// Load loads config from BOARDLY_CONFIG, or from the user's config directory.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath := os.Getenv("BOARDLY_CONFIG")
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			// Return default config if we can't determine config path
			c := Default()
			c.applyEnv()
			return c, nil
		}
		configPath = p
	}
	return LoadFile(configPath)
}

// LoadFile reads the config at path. Files ending in .toml are parsed as
// TOML, everything else as YAML. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	c := newConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	case isTOML(path):
		if _, err := toml.Decode(string(data), &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	c.applyEnv()

	// Fill in any missing values with defaults
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Path returns where Load reads the config from: BOARDLY_CONFIG if set,
// otherwise config.yaml in the user's config directory.
func Path() (string, error) {
	if p := os.Getenv("BOARDLY_CONFIG"); p != "" {
		return p, nil
	}
	return getConfigPath()
}

// Save writes the config to Path.
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config to path in the format its extension implies.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if isTOML(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(f).Encode(c); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("database.driver must be sqlite or pgx, got %q", c.Database.Driver)
	}
	if c.Database.Driver == "pgx" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the pgx driver")
	}
	if c.Reorder.MaxRetries < 0 {
		return fmt.Errorf("reorder.max_retries must not be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "boardly", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "boardly", "config.yaml"), nil
}

// dataDir is where the default database and log file live.
func dataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".boardly")
	}
	return ".boardly"
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// applyEnv lets deployments override connection settings without a file.
func (c *Config) applyEnv() {
	if v := os.Getenv("BOARDLY_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("BOARDLY_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("BOARDLY_REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = filepath.Join(dataDir(), "boardly.db")
	}

	setDefault(&c.Limits.MaxListsPerBoard, 20)
	setDefault(&c.Limits.MaxCardsPerList, 100)
	setDefault(&c.Limits.MaxBoardTitleLength, 50)
	setDefault(&c.Limits.MaxBoardDescriptionLength, 500)
	setDefault(&c.Limits.MaxListTitleLength, 100)
	setDefault(&c.Limits.MaxCardTitleLength, 200)
	setDefault(&c.Limits.MaxDescriptionLength, 2000)
	setDefault(&c.Limits.MaxLabelNameLength, 30)

	if c.Reorder.LockTTL == 0 {
		c.Reorder.LockTTL = 5 * time.Second
	}
	if c.Reorder.LockTimeout == 0 {
		c.Reorder.LockTimeout = 10 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if c.Logging.Path == "" {
		c.Logging.Path = filepath.Join(dataDir(), "logs", "boardly.log")
	}

	c.Theme.ApplyDefaults()
}

func setDefault(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}
