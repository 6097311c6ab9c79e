// Package config loads runtime settings from a JSON file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"

	"natbtree/diagram"
)

const (
	defaultConfigPath = "./natbtree.json"

	EnvConfigPath = "NATBTREE_CFG"
	EnvLogLevel   = "NATBTREE_LOG_LEVEL"
	EnvLogFile    = "NATBTREE_LOG_FILE"
	EnvAddress    = "NATBTREE_ADDR"
	EnvDirection  = "NATBTREE_DIR"
)

// KeyMode selects how console input becomes tree keys.
type KeyMode string

const (
	KeyModeInt  KeyMode = "int"  // integers only
	KeyModeText KeyMode = "text" // natural-sort strings
	KeyModeAuto KeyMode = "auto" // integers until the first non-integer, then text
)

var (
	ErrInvalidKeyMode   = errors.New("invalid key mode")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

type Config struct {
	LogLevel      string  `mapstructure:"log_level"`
	LogFormat     string  `mapstructure:"log_format"` // console, json or "" to pick by terminal
	LogFile       string  `mapstructure:"log_file"`
	LogMaxSizeMB  int     `mapstructure:"log_max_size_mb"`
	LogMaxBackups int     `mapstructure:"log_max_backups"`
	LogMaxAgeDays int     `mapstructure:"log_max_age_days"`
	Color         bool    `mapstructure:"color"`
	Direction     string  `mapstructure:"direction"`
	Mirror        bool    `mapstructure:"mirror"`
	KeyMode       KeyMode `mapstructure:"key_mode"`
	HTTPAddress   string  `mapstructure:"http_address"`
	SeedRecords   int     `mapstructure:"seed_records"`
}

var defaultConfig = Config{
	LogLevel:      "info",
	LogMaxSizeMB:  10,
	LogMaxBackups: 5,
	LogMaxAgeDays: 7,
	Color:         true,
	Direction:     "auto",
	KeyMode:       KeyModeAuto,
	HTTPAddress:   "localhost:8080",
	SeedRecords:   20,
}

// Default returns a copy of the built-in settings.
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}

/*
Load reads the JSON file at path on top of the defaults, then applies environment
overrides. An empty path falls back to $NATBTREE_CFG and then ./natbtree.json.
A missing file is not an error.
*/
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	default:
		var raw map[string]interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
		}
		if err := decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config from %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(raw map[string]interface{}, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvAddress); v != "" {
		cfg.HTTPAddress = v
	}
	if v := os.Getenv(EnvDirection); v != "" {
		cfg.Direction = v
	}
}

// applyDefaults fills missing values from defaultConfig
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultConfig.LogLevel
	}
	if cfg.LogMaxSizeMB <= 0 {
		cfg.LogMaxSizeMB = defaultConfig.LogMaxSizeMB
	}
	if cfg.LogMaxBackups <= 0 {
		cfg.LogMaxBackups = defaultConfig.LogMaxBackups
	}
	if cfg.LogMaxAgeDays <= 0 {
		cfg.LogMaxAgeDays = defaultConfig.LogMaxAgeDays
	}
	if cfg.KeyMode == "" {
		cfg.KeyMode = defaultConfig.KeyMode
	}
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = defaultConfig.HTTPAddress
	}
	if cfg.SeedRecords <= 0 {
		cfg.SeedRecords = defaultConfig.SeedRecords
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := c.ParsedDirection(); err != nil {
		return err
	}
	if _, err := ParseKeyMode(string(c.KeyMode)); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

func (c *Config) ParsedDirection() (diagram.Direction, error) {
	return diagram.ParseDirection(c.Direction)
}

func ParseKeyMode(s string) (KeyMode, error) {
	switch m := KeyMode(strings.ToLower(strings.TrimSpace(s))); m {
	case KeyModeInt, KeyModeText, KeyModeAuto:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKeyMode, s)
}
