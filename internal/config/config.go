// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Defaults applied to fields left empty by every source.
const (
	defaultHTTPAddress         = "localhost:8080"
	defaultGRPCAddress         = "localhost:9090"
	defaultRequestTimeout      = 15 * time.Second
	defaultTokenIssuer         = "focus-on-it"
	defaultTokenDuration       = 24 * time.Hour
	defaultRealtimeBuffer      = 64
	defaultWriteTimeout        = 10 * time.Second
	defaultResubscribeInterval = 5 * time.Second
)

// StructuredConfig is the merged configuration of the FocusOnIt server and
// client. It is populated from environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token and version settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings of the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and limits of the server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client side transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// on top of env and flags.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and versioning settings.
type App struct {
	// TokenSignKey signs and verifies bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by the server.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Token is the bearer token the client presents to the server.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is reported by /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN is the connection string, a PostgreSQL URL or an SQLite file name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver selects the backend: "postgres" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Server holds the inbound transport settings.
type Server struct {
	// HTTPAddress is the host:port of the HTTP server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single REST request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RealtimeBuffer is the per-subscriber queue length of the change hub.
	// Env: SERVER_REALTIME_BUFFER
	RealtimeBuffer int `env:"REALTIME_BUFFER"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the server address the client talks to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reads and the change feed handshake.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WriteTimeout bounds a single speculative write.
	// Env: ADAPTER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
}

// Workers holds client background worker settings.
type Workers struct {
	// ResubscribeInterval is how often a dropped change feed is retried.
	// Env: WORKERS_RESUBSCRIBE_INTERVAL
	ResubscribeInterval time.Duration `env:"RESUBSCRIBE_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file. Empty means next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// defaults returns the configuration used for fields no source sets.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{DB: DB{Driver: DriverPostgres}},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
			RealtimeBuffer: defaultRealtimeBuffer,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			WriteTimeout:   defaultWriteTimeout,
		},
		Workers: Workers{ResubscribeInterval: defaultResubscribeInterval},
	}
}

// GetStructuredConfig loads the server configuration. Sources are merged in
// this order, later non-zero fields winning:
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path taken from sources 2 and 3)
//
// The result is validated for the server.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
