// Package config manages environment variables.
//
// It reads variables from the `.env` file, loads them into structured
// Go types, and validates that required values are present so they can
// be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it gets loaded into
	// the process env before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from,
// using "." as the nesting delimiter:
//
//	PERSONAPI_SERVER.PORT -> server.port -> Config.Server.Port
//
// The `validate:"required"` tags are enforced with go-playground/validator.
//
// Integration and Observability are pointers because they are optional;
// missing blocks get defaults injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Integration   *IntegrationConfig   `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as plain ints and interpreted as seconds when the
// http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimitPerSecond caps requests per client on the form endpoints.
	// Zero means "use the built-in default".
	RateLimitPerSecond float64 `koanf:"rate_limit_per_second"`
}

// IntegrationConfig stores credentials for third-party services.
//
// The contact inbox notification is optional: when ResendAPIKey or
// ContactInbox is empty, the email client stays disabled and the
// /contact endpoint has no side effects at all.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	ContactInbox string `koanf:"contact_inbox"`
}

// New loads configuration from environment variables, unmarshals it
// into Config structs, validates it, applies defaults, and returns the
// resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix PERSONAPI_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Sets default integration/observability blocks if missing
//
// It logs fatally on load/validation errors, so the process exits
// immediately on a broken environment rather than limping along.
func New() (*Config, error) {
	// Config loading happens before the application logger exists, so
	// use a throwaway console logger for failures here.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	// Only env vars carrying the PERSONAPI_ prefix are read; the prefix
	// is stripped and the remainder lowercased to form the koanf key.
	//
	// Example: PERSONAPI_SERVER.PORT -> "server.port"
	err := k.Load(env.Provider("PERSONAPI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PERSONAPI_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	// Unmarshal everything from the root of the flat key-value store.
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	// Enforce the validate:"required" tags across the whole tree.
	validate := validator.New()
	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	// Integration is a pointer field, so nil means "missing". An empty
	// block keeps the rest of the code free of nil checks.
	if mainConfig.Integration == nil {
		mainConfig.Integration = &IntegrationConfig{}
	}

	// Same for observability: inject defaults when not provided.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment values regardless of what the
	// user set, so tracing/logging sees consistent service naming.
	mainConfig.Observability.ServiceName = "person-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	// Observability has its own validation logic beyond struct tags.
	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
