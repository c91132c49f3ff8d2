// Package config manages environment variables.
//
// It reads variables from the process environment (and from a `.env`
// file when present), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for every optional block.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the ACERVO_ prefix. After the prefix is
	removed the key is lowercased and every "__" becomes a "." so koanf
	can map it onto nested structs:

	  ACERVO_SERVER__PORT                    -> server.port
	  ACERVO_OBSERVABILITY__LOGGING__LEVEL   -> observability.logging.level

	URL_BD is also accepted as the database connection string, since
	that is the name existing deployments already export.
*/

const (
	// EnvPrefix is the prefix every application variable carries.
	EnvPrefix = "ACERVO_"

	// LegacyDatabaseURLEnv is the bare connection-string variable.
	LegacyDatabaseURLEnv = "URL_BD"

	// ServiceName tags logs, traces and the APM application.
	ServiceName = "acervo-api"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	API           APIConfig            `koanf:"api" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig holds the PostgreSQL connection string and optional pool tuning.
//
// Zero values for the pool settings leave pgxpool's own defaults untouched.
// Lifetimes are expressed in seconds.
type DatabaseConfig struct {
	URL             string `koanf:"url" validate:"required"`
	MaxConns        int32  `koanf:"max_conns" validate:"min=0"`
	MinConns        int32  `koanf:"min_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=0"`
}

// APIConfig is the descriptive payload served by the root endpoint.
type APIConfig struct {
	Description string `koanf:"description" validate:"required"`
	Author      string `koanf:"author" validate:"required"`
}

// Default returns a Config with every optional value filled in.
// Only Database.URL is left empty.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		API: APIConfig{
			Description: "API de Questões e Achados e Perdidos",
			Author:      "Equipe Acervo",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// listKeys are config keys whose env value is a comma-separated list.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":         true,
	"observability.health_checks.checks": true,
}

// envKey converts a raw env var name into a koanf key path.
//
//	ACERVO_SERVER__READ_TIMEOUT -> server.read_timeout
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// envValue maps an env var onto its key and splits list values.
func envValue(s, v string) (string, any) {
	key := envKey(s)
	if !listKeys[key] {
		return key, v
	}

	items := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// Load reads configuration from the environment, unmarshals it on top of
// Default(), validates it and returns the result.
//
// Load order matters: URL_BD is loaded first so an explicit
// ACERVO_DATABASE__URL overrides it.
func Load() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	err := k.Load(env.Provider(LegacyDatabaseURLEnv, ".", func(s string) string {
		// The prefix also matches URL_BD_SOMETHING; only the exact name counts.
		if s == LegacyDatabaseURLEnv {
			return "database.url"
		}
		return ""
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", LegacyDatabaseURLEnv, err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal only overwrites keys koanf actually holds, so the defaults
	// survive for everything the environment leaves out.
	mainConfig := Default()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// An explicit empty value can still leave the block nil.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed and the environment label always follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
