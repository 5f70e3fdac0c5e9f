// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the configuration of the dilo command.
//
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvLogLevel  = "DILO_LOG_LEVEL"
	EnvMaxPasses = "DILO_MAX_PASSES"
)

// Config is the root configuration.
//
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// LoggingConfig configures the logger.
//
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	Output string `yaml:"output"` // stdout or stderr
}

// SimulationConfig configures circuits built by the command.
//
type SimulationConfig struct {
	MaxPasses int `yaml:"max_passes"`
}

// Default returns the default configuration.
//
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
		Simulation: SimulationConfig{
			MaxPasses: 10,
		},
	}
}

// Load reads the YAML file at path over the default configuration, then
// applies environment overrides. An empty path skips the file.
//
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvMaxPasses); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvMaxPasses)
		}
		c.Simulation.MaxPasses = n
	}
	return nil
}

// Validate checks the configuration values.
//
func (c Config) Validate() error {
	if c.Simulation.MaxPasses < 1 {
		return errors.Errorf("simulation.max_passes must be at least 1, got %d", c.Simulation.MaxPasses)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr":
	default:
		return errors.Errorf("unknown log output %q", c.Logging.Output)
	}
	return nil
}
