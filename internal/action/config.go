package action

import (
	"github.com/dshills/actionbind/internal/action/resolve"
	"github.com/dshills/actionbind/internal/fault"
	"github.com/dshills/actionbind/internal/log"
)

// Config holds the collaborators shared by every binding a factory builds.
type Config struct {
	// Registry resolves method names to invokers.
	Registry *resolve.Registry

	// Logger receives resolution and invocation events.
	Logger *log.Logger

	// Sink receives failures from asynchronous invocations. Nil uses the
	// process-wide sink.
	Sink *fault.Sink

	// DesignMode relaxes the default command/null-target behaviour so
	// previews stay interactive.
	DesignMode bool

	// EnableMetrics enables resolution and invocation counters.
	EnableMetrics bool
}

// DefaultConfig returns a configuration with a fresh registry and the
// default logger.
func DefaultConfig() Config {
	return Config{
		Registry: resolve.NewRegistry(),
		Logger:   log.New(log.DefaultConfig()),
	}
}

// WithRegistry returns a copy of the config using the given registry.
func (c Config) WithRegistry(r *resolve.Registry) Config {
	c.Registry = r
	return c
}

// WithLogger returns a copy of the config using the given logger.
func (c Config) WithLogger(l *log.Logger) Config {
	c.Logger = l
	return c
}

// WithDesignMode returns a copy of the config with design mode set.
func (c Config) WithDesignMode(on bool) Config {
	c.DesignMode = on
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}
