// SPDX-License-Identifier: MIT

// Package config loads the leaven command-line configuration from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs besides per-run flags.
type Config struct {
	// ChartPath points to an alternative chart file; empty uses the built-in chart.
	ChartPath string `yaml:"chart_path"`

	// Method is "interpolated" or "proportional".
	Method string `yaml:"method"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Defaults are used for any value not given on the command line.
	Defaults Defaults `yaml:"defaults"`

	// Limits are the sensible input ranges; values outside only warn.
	Limits Limits `yaml:"limits"`
}

// Defaults are the query values used when a flag is omitted.
type Defaults struct {
	TemperatureC float64 `yaml:"temperature_c"`
	TargetHours  float64 `yaml:"target_hours"`
	FlourGrams   float64 `yaml:"flour_grams"`
	YeastType    string  `yaml:"yeast_type"`
}

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Limits bound each query input.
type Limits struct {
	TemperatureC Range `yaml:"temperature_c"`
	TargetHours  Range `yaml:"target_hours"`
	FlourGrams   Range `yaml:"flour_grams"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Method:   "interpolated",
		LogLevel: "warn",
		Defaults: Defaults{
			TemperatureC: 18.3,
			TargetHours:  24,
			FlourGrams:   1000,
			YeastType:    "IDY",
		},
		Limits: Limits{
			TemperatureC: Range{Min: 17, Max: 30},
			TargetHours:  Range{Min: 2, Max: 168},
			FlourGrams:   Range{Min: 100, Max: 5000},
		},
	}
}

// Load reads config from a YAML file on top of Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
