// Package config loads process configuration from an optional YAML file and
// PAYDATE_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process level configuration.
type Config struct {
	Env      string   `yaml:"env" env:"PAYDATE_ENV" env-default:"production"`
	HTTP     HTTP     `yaml:"http"`
	DB       DB       `yaml:"db"`
	Holidays Holidays `yaml:"holidays"`
	Paydates Paydates `yaml:"paydates"`
}

// HTTP configures the API server.
type HTTP struct {
	Port            int           `yaml:"port" env:"PAYDATE_HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"PAYDATE_HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"PAYDATE_HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"PAYDATE_HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"PAYDATE_HTTP_SHUTDOWN_TIMEOUT" env-default:"30s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"PAYDATE_HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:8080"`
}

// DB configures the holiday calendar store.
type DB struct {
	Path string `yaml:"path" env:"PAYDATE_DB_PATH" env-default:"paydate.db"`
}

// Holidays selects the calendar seeded into an empty store.
type Holidays struct {
	// File is a YAML holiday list. Empty means the built-in calendar.
	File string `yaml:"file" env:"PAYDATE_HOLIDAYS_FILE"`
}

// Paydates holds engine defaults.
type Paydates struct {
	DefaultCount int `yaml:"default_count" env:"PAYDATE_DEFAULT_COUNT" env-default:"10"`
	MaxCount     int `yaml:"max_count" env:"PAYDATE_MAX_COUNT" env-default:"520"`
	AdjustLimit  int `yaml:"adjust_limit" env:"PAYDATE_ADJUST_LIMIT" env-default:"366"`
}

// Load reads path if it is set, then applies environment overrides. With an
// empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return &cfg, cfg.validate()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port %d out of range", c.HTTP.Port)
	}
	if c.Paydates.DefaultCount < 0 {
		return fmt.Errorf("default_count must not be negative")
	}
	if c.Paydates.MaxCount < c.Paydates.DefaultCount {
		return fmt.Errorf("max_count %d below default_count %d", c.Paydates.MaxCount, c.Paydates.DefaultCount)
	}
	return nil
}

// Development reports whether verbose local settings apply.
func (c *Config) Development() bool {
	return c.Env == "development"
}
