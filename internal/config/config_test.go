package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"REGISTRY_PRIMARY__ENV":                 "local",
		"REGISTRY_SERVER__PORT":                 "8080",
		"REGISTRY_SERVER__READ_TIMEOUT":         "30",
		"REGISTRY_SERVER__WRITE_TIMEOUT":        "30",
		"REGISTRY_SERVER__IDLE_TIMEOUT":         "60",
		"REGISTRY_SERVER__CORS_ALLOWED_ORIGINS": "http://localhost:3000, https://registry.example.com",
		"REGISTRY_DATABASE__HOST":               "localhost",
		"REGISTRY_DATABASE__PORT":               "5432",
		"REGISTRY_DATABASE__USER":               "registry",
		"REGISTRY_DATABASE__PASSWORD":           "secret",
		"REGISTRY_DATABASE__NAME":               "registry",
		"REGISTRY_DATABASE__SSL_MODE":           "disable",
		"REGISTRY_DATABASE__MAX_OPEN_CONNS":     "10",
		"REGISTRY_DATABASE__MAX_IDLE_CONNS":     "0",
		"REGISTRY_DATABASE__CONN_MAX_LIFETIME":  "300",
		"REGISTRY_DATABASE__CONN_MAX_IDLE_TIME": "60",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"REGISTRY_DATABASE__SSL_MODE", "database.ssl_mode"},
		{"REGISTRY_PRIMARY__ENV", "primary.env"},
		{"REGISTRY_OBSERVABILITY__LOGGING__LEVEL", "observability.logging.level"},
	}

	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Primary.Env != "local" {
		t.Errorf("Primary.Env = %q, want local", cfg.Primary.Env)
	}
	if cfg.Database.SSLMode != "disable" || cfg.Database.Port != 5432 || cfg.Database.MaxIdleConns != 0 {
		t.Errorf("unexpected database config %+v", cfg.Database)
	}

	origins := cfg.Server.AllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://localhost:3000" || origins[1] != "https://registry.example.com" {
		t.Errorf("AllowedOrigins() = %v", origins)
	}

	if cfg.Observability == nil {
		t.Fatal("Observability defaults were not applied")
	}
	if cfg.Observability.ServiceName != ServiceName || cfg.Observability.Environment != "local" {
		t.Errorf("observability identity = %q/%q", cfg.Observability.ServiceName, cfg.Observability.Environment)
	}
	if !cfg.Observability.HealthChecks.IsEnabled() {
		t.Error("health checks should default to enabled")
	}
}

func TestLoadConfig_PartialObservabilityKeepsDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	obs := cfg.Observability
	if obs.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", obs.Logging.Level)
	}
	if obs.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json default", obs.Logging.Format)
	}
	if obs.HealthChecks.Timeout != 5*time.Second || !obs.HealthChecks.IsEnabled() {
		t.Errorf("unexpected health checks %+v", obs.HealthChecks)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing host", "REGISTRY_DATABASE__HOST", "", "validation failed"},
		{"bad ssl mode", "REGISTRY_DATABASE__SSL_MODE", "sometimes", "validation failed"},
		{"bad log level", "REGISTRY_OBSERVABILITY__LOGGING__LEVEL", "loud", "invalid logging level"},
		{"bad log format", "REGISTRY_OBSERVABILITY__LOGGING__FORMAT", "xml", "invalid logging format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			if err == nil {
				t.Fatal("LoadConfig() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("LoadConfig() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		env   string
		level string
		want  string
	}{
		{"production", "", "info"},
		{"local", "", "debug"},
		{"development", "", "debug"},
		{"staging", "", "info"},
		{"production", "error", "error"},
	}

	for _, tt := range tests {
		cfg := &ObservabilityConfig{Environment: tt.env, Logging: LoggingConfig{Level: tt.level}}
		if got := cfg.GetLogLevel(); got != tt.want {
			t.Errorf("GetLogLevel(env=%q, level=%q) = %q, want %q", tt.env, tt.level, got, tt.want)
		}
	}
}
