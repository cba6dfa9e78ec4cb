// Package config loads binding-core configuration: the default behaviours
// for each policy slot, design mode, logging, and metrics.
//
// Configuration comes from a TOML file, JSON, or ACTIONBIND_* environment
// variables, applied in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/actionbind/internal/action/policy"
)

// Config holds binding-core settings.
type Config struct {
	// CommandNullTarget is the default behaviour for command bindings
	// with a null target.
	CommandNullTarget policy.Behaviour

	// CommandNotFound is the default behaviour for command bindings whose
	// method is missing.
	CommandNotFound policy.Behaviour

	// EventNullTarget is the default behaviour for event bindings with a
	// null target.
	EventNullTarget policy.Behaviour

	// EventNotFound is the default behaviour for event bindings whose
	// method is missing.
	EventNotFound policy.Behaviour

	// DesignMode relaxes command enablement for previews.
	DesignMode bool

	// LogLevel is the minimum log level ("debug", "info", "warn",
	// "error").
	LogLevel string

	// EnableMetrics enables binding counters.
	EnableMetrics bool
}

// Default returns the default configuration: all behaviours Default,
// info-level logging.
func Default() Config {
	return Config{
		LogLevel: "info",
	}
}

// fileConfig is the TOML wire form.
type fileConfig struct {
	Behaviours struct {
		CommandNullTarget string `toml:"commandNullTarget"`
		CommandNotFound   string `toml:"commandNotFound"`
		EventNullTarget   string `toml:"eventNullTarget"`
		EventNotFound     string `toml:"eventNotFound"`
	} `toml:"behaviours"`
	DesignMode    bool   `toml:"designMode"`
	LogLevel      string `toml:"logLevel"`
	EnableMetrics bool   `toml:"enableMetrics"`
}

// LoadTOML reads configuration from a TOML file, over the defaults.
func LoadTOML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseTOML(data)
}

// ParseTOML parses TOML configuration bytes.
func ParseTOML(data []byte) (Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Default(), fmt.Errorf("config: parse toml: %w", err)
	}

	cfg := Default()
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	cfg.DesignMode = fc.DesignMode
	cfg.EnableMetrics = fc.EnableMetrics

	var err error
	if cfg.CommandNullTarget, err = policy.ParseBehaviour(fc.Behaviours.CommandNullTarget); err != nil {
		return cfg, err
	}
	if cfg.CommandNotFound, err = policy.ParseBehaviour(fc.Behaviours.CommandNotFound); err != nil {
		return cfg, err
	}
	if cfg.EventNullTarget, err = policy.ParseBehaviour(fc.Behaviours.EventNullTarget); err != nil {
		return cfg, err
	}
	if cfg.EventNotFound, err = policy.ParseBehaviour(fc.Behaviours.EventNotFound); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overlays ACTIONBIND_* environment variables on a configuration.
// Recognized: ACTIONBIND_LOG_LEVEL, ACTIONBIND_DESIGN_MODE,
// ACTIONBIND_ENABLE_METRICS.
func ApplyEnv(cfg Config) Config {
	if v, ok := os.LookupEnv("ACTIONBIND_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("ACTIONBIND_DESIGN_MODE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DesignMode = b
		}
	}
	if v, ok := os.LookupEnv("ACTIONBIND_ENABLE_METRICS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableMetrics = b
		}
	}
	return cfg
}

// Behaviour returns the configured default behaviour for a policy context.
func (c Config) Behaviour(ctx policy.Context) policy.Behaviour {
	switch ctx {
	case policy.CommandNullTarget:
		return c.CommandNullTarget
	case policy.CommandActionNotFound:
		return c.CommandNotFound
	case policy.EventNullTarget:
		return c.EventNullTarget
	case policy.EventActionNotFound:
		return c.EventNotFound
	default:
		return policy.Default
	}
}
