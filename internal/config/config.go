// Package config handles configuration loading for the multibagger server.
// It supports YAML config files, a local .env file and environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MULTIBAGGER_API_PORT.
const EnvPrefix = "MULTIBAGGER"

// Config represents the complete application configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"      yaml:"api"      json:"api"`
	Web      WebConfig      `mapstructure:"web"      yaml:"web"      json:"web"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" json:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"  json:"logging"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"-" json:"-"`
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	Host            string   `mapstructure:"host"              yaml:"host"              json:"host"`
	Port            int      `mapstructure:"port"              yaml:"port"              json:"port"`
	CORSOrigins     []string `mapstructure:"cors_origins"      yaml:"cors_origins"      json:"cors_origins"`
	ReadTimeoutSec  int      `mapstructure:"read_timeout_sec"  yaml:"read_timeout_sec"  json:"read_timeout_sec"`
	WriteTimeoutSec int      `mapstructure:"write_timeout_sec" yaml:"write_timeout_sec" json:"write_timeout_sec"`
}

// Addr returns the host:port listen address.
func (a APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// ReadTimeout returns the read timeout as a duration.
func (a APIConfig) ReadTimeout() time.Duration {
	return time.Duration(a.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (a APIConfig) WriteTimeout() time.Duration {
	return time.Duration(a.WriteTimeoutSec) * time.Second
}

// WebConfig holds settings for the embedded page.
type WebConfig struct {
	ServeUI bool `mapstructure:"serve_ui" yaml:"serve_ui" json:"serve_ui"`
}

// AnalysisConfig holds generator settings.
type AnalysisConfig struct {
	Seed uint64 `mapstructure:"seed" yaml:"seed" json:"seed"` // 0 = unseeded
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.multibagger/config.yaml (home directory)
//  3. /etc/multibagger/config.yaml (system)
//
// A .env file in the working directory is loaded into the environment
// first. Environment variables override config file values.
// Format: MULTIBAGGER_<SECTION>_<KEY>, e.g., MULTIBAGGER_LOGGING_LEVEL
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".multibagger"))
	v.AddConfigPath("/etc/multibagger")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("invalid api.port %d", c.API.Port)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (want text or json)", c.Logging.Format)
	}
	return nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})
	v.SetDefault("api.read_timeout_sec", 30)
	v.SetDefault("api.write_timeout_sec", 30)

	// Web defaults
	v.SetDefault("web.serve_ui", true)

	// Analysis defaults
	v.SetDefault("analysis.seed", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// loadDotEnv loads KEY=VALUE pairs from path without overriding variables
// already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
