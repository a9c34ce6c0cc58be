package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-polaris/pkg/model"
)

// Config holds optional defaults loaded from ~/.config/polaris-models/config.yaml.
type Config struct {
	UnknownPolicy string `yaml:"unknown_policy"`
	Output        string `yaml:"output"`
	LogLevel      string `yaml:"log_level"`
}

// Settings is the effective configuration after flags are merged in.
type Settings struct {
	Unknown  model.UnknownPolicy
	Output   string
	LogLevel string
}

// DefaultPath returns the per-user config location, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "polaris-models", "config.yaml")
}

// Load reads the config file at path, or DefaultPath when path is empty.
// Returns a zero-value Config if the default file doesn't exist; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config
// defaults; empty flags fall back to the file, then to built-in defaults.
func (c *Config) Merge(unknown, output, logLevel string) (Settings, error) {
	pick := func(flag, file, fallback string) string {
		switch {
		case flag != "":
			return flag
		case file != "":
			return file
		default:
			return fallback
		}
	}

	policy, err := model.ParseUnknownPolicy(pick(unknown, c.UnknownPolicy, model.DefaultUnknownPolicy.String()))
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	out := pick(output, c.Output, "json")
	if out != "json" && out != "yaml" {
		return Settings{}, fmt.Errorf("config: output %q (want json or yaml)", out)
	}
	return Settings{
		Unknown:  policy,
		Output:   out,
		LogLevel: pick(logLevel, c.LogLevel, ""),
	}, nil
}
