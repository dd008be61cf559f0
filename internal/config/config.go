// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them
// into structured Go types and validates that required values are
// present so the registry fails fast on bad or missing config.
//
// Responsibilities:
//   - Load environment variables prefixed with REGISTRY_.
//   - Map env vars into nested config structs.
//   - Validate required values.
//   - Provide defaults for the optional observability block.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before
	// anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every variable koanf reads.
const EnvPrefix = "REGISTRY_"

/*
	Nested keys are separated by a double underscore so single underscores
	can stay inside field names:

	  REGISTRY_DATABASE__SSL_MODE -> database.ssl_mode -> Config.Database.SSLMode
	  REGISTRY_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// Config is the root configuration object for the registry.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability" validate:"-"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP API.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string  `koanf:"port" validate:"required"`
	ReadTimeout        int     `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int     `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int     `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins string  `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          float64 `koanf:"rate_limit" validate:"min=0"`
}

// AllowedOrigins splits the comma separated CORS origin list.
func (s ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(s.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are whole seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// envKey turns REGISTRY_DATABASE__SSL_MODE into database.ssl_mode.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config, validates it, applies observability defaults and returns the result.
//
// Every failure is returned; the CLI decides whether to exit.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	} else {
		mainConfig.Observability.applyDefaults()
	}

	// Service name and environment always follow the primary block so
	// logs and traces are tagged consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
