package config

import (
	"fmt"
	"time"
)

// ServiceName tags every log line and APM transaction.
const ServiceName = "registry"

// ObservabilityConfig groups logging, APM and health check settings.
//
// It is validated by Validate rather than struct tags because several
// fields are filled in after unmarshalling.
type ObservabilityConfig struct {
	ServiceName  string             `koanf:"service_name"`
	Environment  string             `koanf:"environment"`
	Logging      LoggingConfig      `koanf:"logging"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// SlowQueryThreshold marks traced queries slower than this as warnings.
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`

	// File, when set, additionally writes logs to a rotating file.
	File LogFileConfig `koanf:"file"`
}

// LogFileConfig configures the rotating log file.
type LogFileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey disables the agent entirely.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls the /status dependency checks.
type HealthChecksConfig struct {
	// Enabled is a pointer so an unset value defaults to true.
	Enabled *bool         `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`
	Checks  []string      `koanf:"checks"`
}

// IsEnabled reports whether /status pings its dependencies.
func (h HealthChecksConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// DefaultObservabilityConfig is used when no observability block is configured.
func DefaultObservabilityConfig() *ObservabilityConfig {
	enabled := true
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:              "info",
			Format:             "json",
			SlowQueryThreshold: 100 * time.Millisecond,
			File: LogFileConfig{
				MaxSizeMB:  50,
				MaxBackups: 5,
				MaxAgeDays: 30,
				Compress:   true,
			},
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // mixes agent output into the JSON log stream
		},
		HealthChecks: HealthChecksConfig{
			Enabled: &enabled,
			Timeout: 5 * time.Second,
			Checks:  []string{"database"},
		},
	}
}

// applyDefaults fills zero values of a partially configured block.
func (c *ObservabilityConfig) applyDefaults() {
	def := DefaultObservabilityConfig()

	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	if c.Logging.SlowQueryThreshold == 0 {
		c.Logging.SlowQueryThreshold = def.Logging.SlowQueryThreshold
	}
	if c.Logging.File.MaxSizeMB == 0 {
		c.Logging.File.MaxSizeMB = def.Logging.File.MaxSizeMB
	}
	if c.Logging.File.MaxBackups == 0 {
		c.Logging.File.MaxBackups = def.Logging.File.MaxBackups
	}
	if c.Logging.File.MaxAgeDays == 0 {
		c.Logging.File.MaxAgeDays = def.Logging.File.MaxAgeDays
	}
	if c.HealthChecks.Enabled == nil {
		c.HealthChecks.Enabled = def.HealthChecks.Enabled
	}
	if c.HealthChecks.Timeout == 0 {
		c.HealthChecks.Timeout = def.HealthChecks.Timeout
	}
	if len(c.HealthChecks.Checks) == 0 {
		c.HealthChecks.Checks = def.HealthChecks.Checks
	}
}

// Validate applies the rules struct tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	// An empty level falls back to GetLogLevel's environment default.
	validLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Logging.Format)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	if c.HealthChecks.IsEnabled() && c.HealthChecks.Timeout < time.Millisecond {
		return fmt.Errorf("health_checks timeout must be at least 1ms")
	}

	return nil
}

// GetLogLevel returns the effective log level, defaulting by environment
// when none is configured.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development", "local":
		if c.Logging.Level == "" {
			return "debug"
		}
	}

	if c.Logging.Level == "" {
		return "info"
	}
	return c.Logging.Level
}

// IsProduction reports whether the registry runs in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
