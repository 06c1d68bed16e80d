// Package config loads the settings of the adventkit command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adventkit/adventkit/logging"
)

const (
	DefaultFile             = "adventkit.yaml"
	DefaultResourceDir      = "resources/aoc"
	DefaultTimeout          = 60 * time.Second
	DefaultExpensiveTimeout = 3600 * time.Second
	DefaultFetchBaseURL     = "https://adventofcode.com"
	DefaultUserAgent        = "github.com/adventkit/adventkit"
	DefaultLogLevel         = "info"

	EnvResources     = "ADVENTKIT_RESOURCES"
	EnvSession       = "ADVENTKIT_SESSION"
	EnvSkipExpensive = "ADVENTKIT_SKIP_EXPENSIVE"
)

// Config holds the adventkit settings.
type Config struct {
	ResourceDir      string         `yaml:"resourceDir"`
	DefaultTimeout   time.Duration  `yaml:"defaultTimeout"`
	ExpensiveTimeout time.Duration  `yaml:"expensiveTimeout"`
	SkipExpensive    bool           `yaml:"skipExpensive"`
	Fetch            Fetch          `yaml:"fetch"`
	Log              logging.Config `yaml:"log"`
}

// Fetch holds the settings for downloading puzzle inputs.
type Fetch struct {
	BaseURL   string `yaml:"baseURL"`
	Session   string `yaml:"session"`
	UserAgent string `yaml:"userAgent"`
}

// Load reads the config file at path, applies environment overrides and fills in defaults. An
// empty path means DefaultFile in the working directory, which need not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	optional := path == ""
	if optional {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file failed: %w", err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config file failed: %w", err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Default returns the configuration used when there is no config file or environment override.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvResources); ok && value != "" {
		cfg.ResourceDir = value
	}
	if value, ok := lookup(EnvSession); ok && value != "" {
		cfg.Fetch.Session = value
	}
	if value, ok := lookup(EnvSkipExpensive); ok && value != "" {
		skip, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSkipExpensive, err)
		}
		cfg.SkipExpensive = skip
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ResourceDir == "" {
		cfg.ResourceDir = DefaultResourceDir
	}
	if cfg.DefaultTimeout == 0 {
		cfg.DefaultTimeout = DefaultTimeout
	}
	if cfg.ExpensiveTimeout == 0 {
		cfg.ExpensiveTimeout = DefaultExpensiveTimeout
	}
	if cfg.Fetch.BaseURL == "" {
		cfg.Fetch.BaseURL = DefaultFetchBaseURL
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = DefaultUserAgent
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = logging.FormatConsole
	}
}
