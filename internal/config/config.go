// Package config holds the phfile command configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"phfile/internal/textio"
)

// EnvPrefix prefixes environment overrides, e.g. PHFILE_LOG_LEVEL=debug.
const EnvPrefix = "PHFILE"

// Config is the root configuration.
type Config struct {
	Version string    `mapstructure:"version" yaml:"version"`
	Log     LogConfig `mapstructure:"log" yaml:"log"`
	// Encoding is the character set of files read and written.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
	// OutputDir receives files written under their default name.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Format: console or json
	Format      string `mapstructure:"format" yaml:"format"`
	Development bool   `mapstructure:"development" yaml:"development"`
	// File, when set, receives the log instead of stderr.
	File     string         `mapstructure:"file" yaml:"file,omitempty"`
	Rotation RotationConfig `mapstructure:"rotation" yaml:"rotation"`
}

// RotationConfig controls rotation of the log file.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool `mapstructure:"compress" yaml:"compress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
			Rotation: RotationConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
		Encoding:  textio.DefaultEncoding,
		OutputDir: ".",
	}
}

// Load reads the configuration from path. With an empty path it uses
// $PHFILE_CONFIG, then looks for phfile.yaml in the working directory and
// in ~/.phfile; a missing file there is not an error. Environment variables
// override file values.
func Load(path string) (*Config, error) {
	v := newViper()

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("phfile")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".phfile"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return decode(v)
}

// Parse parses YAML configuration data; environment overrides apply.
func Parse(data []byte) (*Config, error) {
	v := newViper()

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	def := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", def.Version)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.development", def.Log.Development)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.rotation.max_size_mb", def.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", def.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", def.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", def.Log.Rotation.Compress)
	v.SetDefault("encoding", def.Encoding)
	v.SetDefault("output_dir", def.OutputDir)

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills values that were set but left empty.
func applyDefaults(c *Config) {
	def := Default()

	if strings.TrimSpace(c.Version) == "" {
		c.Version = def.Version
	}

	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}

	if c.Encoding == "" {
		c.Encoding = def.Encoding
	}

	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Version != "1" {
		return fmt.Errorf("unsupported config version %q", c.Version)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format: %q", c.Log.Format)
	}

	if _, err := textio.Lookup(c.Encoding); err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}

	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
