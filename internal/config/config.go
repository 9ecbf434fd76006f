// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-session-keeper/models"
)

// Storage backends accepted by [Storage.Backend].
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StructuredConfig is the top-level configuration container for the session
// keeper. It is populated by merging command-line flags, environment
// variables and an optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: version, logging and interactivity.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the refresh token storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the optional status HTTP and gRPC health listeners.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the connection to the remote service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session tunes per-account session behaviour.
	Session Session `envPrefix:"SESSION_"`

	// Accounts is the ordered list of accounts to keep alive. Accounts from
	// every source are concatenated.
	Accounts []models.AccountConfig `env:"-"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// Env: CONFIG_PATH, flags: -c / -config.
	FilePath string `env:"CONFIG_PATH"`

	// Warnings collects non-fatal problems found while loading, such as
	// unparsable game ids. They are logged at startup.
	Warnings []string `env:"-"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed by the status API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Interactive enables the terminal prompt for guard codes.
	// Env: APP_INTERACTIVE
	Interactive bool `env:"INTERACTIVE"`

	// LogLevel is a zerolog level name. Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFormat is "json" or "console". Env: APP_LOG_FORMAT
	LogFormat string `env:"LOG_FORMAT"`
}

// Storage configures where refresh tokens are kept.
type Storage struct {
	// Backend is one of file, sqlite, postgres or redis.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// TokenDir is the directory of the file backend. Relative paths are
	// resolved against the executable directory.
	// Env: STORAGE_TOKEN_DIR (legacy: TOKEN_STORAGE_DIRECTORY)
	TokenDir string `env:"TOKEN_DIR"`

	// DSN is the sqlite file path or the PostgreSQL connection string.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Redis configures the redis backend.
	Redis Redis `envPrefix:"REDIS_"`

	// EncryptionKey enables at-rest encryption of stored tokens when set.
	// Env: STORAGE_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`
}

// Redis holds connection settings for the redis token backend.
type Redis struct {
	Address   string `env:"ADDRESS"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB"`
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Server holds the optional status listeners. Empty addresses disable them.
type Server struct {
	// HTTPAddress serves the status API. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress serves grpc.health.v1. Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single status request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter configures the transport and the authenticator.
type Adapter struct {
	// TransportAddress is the host:port of the remote gateway.
	// Env: ADAPTER_TRANSPORT_ADDRESS
	TransportAddress string `env:"TRANSPORT_ADDRESS"`

	// TransportTLS wraps the gateway connection in TLS.
	// Env: ADAPTER_TRANSPORT_TLS
	TransportTLS bool `env:"TRANSPORT_TLS"`

	// TLSInsecureSkipVerify disables certificate verification.
	// Env: ADAPTER_TLS_INSECURE_SKIP_VERIFY
	TLSInsecureSkipVerify bool `env:"TLS_INSECURE_SKIP_VERIFY"`

	// DialTimeout bounds connection establishment.
	// Env: ADAPTER_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`

	// AuthURL is the base URL of the authentication service.
	// Env: ADAPTER_AUTH_URL
	AuthURL string `env:"AUTH_URL"`

	// RequestTimeout bounds a single authentication request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PollInterval is used when the service does not suggest one.
	// Env: ADAPTER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Session tunes per-account sessions.
type Session struct {
	// LoginTimeout bounds the wait for a logon result.
	// Env: SESSION_LOGIN_TIMEOUT
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// args (without the program name), the environment and the config file.
//
// Sources are merged in this order and earlier sources win for non-zero
// fields: flags, environment, file, defaults. Accounts from all sources are
// concatenated.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
