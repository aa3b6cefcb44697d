package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups all configuration related to telemetry and
// runtime visibility: structured logging settings and the New Relic
// agent settings.
//
// It is intended to live under Config.Observability and is optional at
// the root level (pointer in Config). If omitted, defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// Hardcoded per service to avoid people "configuring" it into chaos.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment is a label used to split telemetry by environment
	// (production, staging, development, etc.).
	Environment string `koanf:"environment" validate:"required"`

	// Logging config controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging" validate:"required"`

	// NewRelic config controls APM and tracing features.
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Any logs below this level are ignored.
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format for logs ("json" or "console").
	// JSON is the default so log pipelines don't cry.
	Format string `koanf:"format" validate:"required"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey means "not configured": every New Relic touch
// point in the codebase degrades into a no-op in that case.
type NewRelicConfig struct {
	// LicenseKey is the New Relic ingest key. Empty means disabled.
	LicenseKey string `koanf:"license_key"`

	// AppLogForwardingEnabled enables forwarding of application logs
	// to New Relic through the zerolog writer integration.
	AppLogForwardingEnabled bool `koanf:"app_log_forwarding_enabled"`

	// DistributedTracingEnabled enables distributed tracing so requests
	// can be traced across service boundaries.
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`

	// DebugLogging enables debug output for the agent.
	// Usually off to avoid noisy, mixed-format logs.
	DebugLogging bool `koanf:"debug_logging"`
}

// DefaultRateLimitPerSecond is used when server.rate_limit_per_second
// is not configured.
const DefaultRateLimitPerSecond = 20.0

// DefaultObservabilityConfig provides a safe set of defaults.
//
// Used when Config.Observability is nil (not provided via env/config).
// Defaults aim to be sensible for local dev without breaking production.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		// Service/environment get overwritten in New() from primary config.
		ServiceName: "person-api",
		Environment: "development",

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},

		NewRelic: NewRelicConfig{
			LicenseKey:                "",
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false,
		},
	}
}

// Validate applies custom validation rules that go beyond struct tags.
//
// Useful for validating enums and cross-field constraints that
// go-playground tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	// Enforce a strict set of allowed log levels. A map gives O(1)
	// membership checks and prevents typos like "inf" silently
	// degrading into nonsense.
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// It supports defaulting by environment:
//   - production defaults to "info" if no level is set
//   - development defaults to "debug" if no level is set
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development":
		if c.Logging.Level == "" {
			return "debug"
		}
	}

	return c.Logging.Level
}

// IsProduction reports whether the application runs in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// ShutdownTimeout is how long graceful shutdown waits for inflight
// requests before giving up.
const ShutdownTimeout = 10 * time.Second
