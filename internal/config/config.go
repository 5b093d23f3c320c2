// Package config loads operator settings for the walletwire CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btclog"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultLogLevel = "info"
	DefaultFormat   = "json"
)

// Environment overrides.
const (
	EnvLogLevel = "WALLETWIRE_LOG_LEVEL"
	EnvFormat   = "WALLETWIRE_FORMAT"
)

// Formats lists the wire format names understood by the CLI.
var Formats = []string{"json", "yaml", "msgpack", "bson"}

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel string
	Format   string
}

// FileConfig is the on-disk layout:
//
//	log:
//	  level: debug
//	format: yaml
type FileConfig struct {
	Log    FileLogConfig `yaml:"log"`
	Format string        `yaml:"format"`
}

type FileLogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{LogLevel: DefaultLogLevel, Format: DefaultFormat}
}

// defaultPaths are tried in order when no path is given.
var defaultPaths = []string{
	"walletwire.yaml",
	"configs/walletwire.yaml",
}

// LoadFromPath resolves the configuration: defaults, then the YAML file,
// then environment overrides. An explicit path must exist and parse; the
// default locations are skipped when missing.
func LoadFromPath(configPath string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		parsed, err := readFile(configPath)
		if err != nil {
			return Config{}, err
		}
		Merge(&cfg, parsed)
	} else {
		for _, path := range defaultPaths {
			parsed, err := readFile(path)
			if err != nil {
				continue
			}
			Merge(&cfg, parsed)
			break
		}
	}

	ApplyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}
	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return parsed, nil
}

// Merge copies the fields set in src onto dst.
func Merge(dst *Config, src FileConfig) {
	if src.Log.Level != "" {
		dst.LogLevel = src.Log.Level
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}

// ApplyEnvOverrides applies WALLETWIRE_* variables on top of cfg.
func ApplyEnvOverrides(cfg *Config) {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = level
	}
	if format := strings.TrimSpace(os.Getenv(EnvFormat)); format != "" {
		cfg.Format = format
	}
}

// Validate checks the log level and format names.
func (c Config) Validate() error {
	if _, ok := btclog.LevelFromString(c.LogLevel); !ok {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q, expected one of: %s", c.Format, strings.Join(Formats, ", "))
}

// Level returns the btclog level for LogLevel. Unknown names map to info.
func (c Config) Level() btclog.Level {
	level, ok := btclog.LevelFromString(c.LogLevel)
	if !ok {
		return btclog.LevelInfo
	}
	return level
}
